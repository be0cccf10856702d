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

// Package order manufactures a strict total order over opaque tokens.
//
// The two-way substring search preprocesses its needle by computing maximal
// suffixes, which requires ordered comparisons over the alphabet. Tokens have
// no natural order (a word is not less than another word in any way the
// algorithm cares about), but any consistent total order makes the
// factorization correct. An [Oracle] therefore assigns each distinct token an
// integer in first-seen order and compares tokens by that rank.
//
// Ranks only need to stay consistent for the duration of a single
// preprocessing-plus-search call, never across independent calls, so the
// backing store can be discarded between searches to bound memory.
package order

// resetThreshold is the number of distinct tokens above which ResetIfLarge
// discards all assignments.
const resetThreshold = 100

// Oracle assigns stable integer ranks to tokens in first-seen order.
//
// An Oracle is a single-writer resource: sharing one across concurrently
// running searches requires external synchronization, since interleaved rank
// assignment can produce comparisons that are inconsistent within one search.
type Oracle struct {
	ranks map[any]int
}

// New returns an empty oracle.
func New() *Oracle {
	return &Oracle{ranks: make(map[any]int)}
}

// Rank returns the rank of tok, assigning the next free rank (starting at 1)
// if tok has not been seen before.
func (o *Oracle) Rank(tok any) int {
	r, ok := o.ranks[tok]
	if !ok {
		r = len(o.ranks) + 1
		o.ranks[tok] = r
	}
	return r
}

// Compare returns the sign of Rank(a) - Rank(b), or 0 iff a == b. Equal
// tokens never get distinct ranks, so the result is a valid three-way
// comparison for any pair of tokens.
func (o *Oracle) Compare(a, b any) int {
	if a == b {
		return 0
	}
	ra, rb := o.Rank(a), o.Rank(b)
	if ra < rb {
		return -1
	}
	return 1
}

// Len reports the number of distinct tokens currently ranked.
func (o *Oracle) Len() int {
	return len(o.ranks)
}

// Reset discards all rank assignments.
func (o *Oracle) Reset() {
	clear(o.ranks)
}

// ResetIfLarge discards all rank assignments once more than 100 distinct
// tokens have been ranked. Callers invoke this at the start of a top-level
// search; resetting in the middle of one would break comparison consistency.
func (o *Oracle) ResetIfLarge() {
	if len(o.ranks) > resetThreshold {
		clear(o.ranks)
	}
}
