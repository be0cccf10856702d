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

package engine

import "slices"

// PrefixLen returns the length of the common prefix of a and b.
//
// After a constant-time reject on the first token, a binary search over
// candidate lengths narrows in on the answer. Each probe compares the slice
// between the last known-equal length and the candidate, so the total work
// stays linear in the prefix while long equal stretches are compared with
// [slices.Equal] rather than token by token.
func PrefixLen[T comparable](a, b []T) int {
	if len(a) == 0 || len(b) == 0 || a[0] != b[0] {
		return 0
	}
	lo, hi := 0, min(len(a), len(b))
	mid := hi
	start := 0
	for lo < mid {
		if slices.Equal(a[start:mid], b[start:mid]) {
			lo = mid
			start = lo
		} else {
			hi = mid
		}
		mid = (hi-lo)/2 + lo
	}
	return mid
}

// SuffixLen returns the length of the common suffix of a and b. It mirrors
// [PrefixLen] with all probes anchored at the tails of the slices.
func SuffixLen[T comparable](a, b []T) int {
	if len(a) == 0 || len(b) == 0 || a[len(a)-1] != b[len(b)-1] {
		return 0
	}
	lo, hi := 0, min(len(a), len(b))
	mid := hi
	end := 0
	for lo < mid {
		if slices.Equal(a[len(a)-mid:len(a)-end], b[len(b)-mid:len(b)-end]) {
			lo = mid
			end = lo
		} else {
			hi = mid
		}
		mid = (hi-lo)/2 + lo
	}
	return mid
}
