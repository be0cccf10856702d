// Copyright 2026 The tokdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tokdiff

import (
	"tokdiff.io/tokdiff/internal/order"
	"tokdiff.io/tokdiff/internal/twoway"
)

// sharedOracle assigns a stable rank to every distinct token value seen by
// [Diff] and [Search], manufacturing the total order the two-way search
// needs. It is process wide: ranks only have to be consistent within a
// single search, so sharing across calls and across token types is safe.
var sharedOracle = order.New()

// Search returns the smallest index i >= start such that needle occurs in
// haystack starting at i, or -1 if there is no such occurrence. It runs in
// time linear in len(haystack) and constant extra space, independent of the
// structure of the needle.
//
// Tokens are compared for equality only; the internal order imposed on them
// is an implementation detail and does not affect which index is returned.
// A negative start is treated as zero. Search panics if needle is empty.
func Search[T comparable](haystack, needle []T, start int) int {
	sharedOracle.ResetIfLarge()
	return twoway.Search(haystack, needle, start, func(a, b T) int {
		if a == b {
			return 0
		}
		return sharedOracle.Compare(a, b)
	})
}

// SearchFunc is like [Search] but uses a caller-supplied three-way
// comparator instead of the built-in token order, lifting the comparable
// constraint. cmp must return 0 if and only if two tokens are considered
// equal and must otherwise behave as a consistent total order.
func SearchFunc[T any](haystack, needle []T, start int, cmp func(a, b T) int) int {
	return twoway.Search(haystack, needle, start, cmp)
}

// ResetTokenOrderCache discards all token ranks accumulated by [Diff] and
// [Search]. The cache resets itself periodically; calling this is only
// useful to release references to large token values immediately.
func ResetTokenOrderCache() {
	sharedOracle.Reset()
}
