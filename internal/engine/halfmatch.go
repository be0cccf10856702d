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

// halfMatch describes a split of two sequences around a shared middle run
// that covers at least half of the longer sequence.
type halfMatch[T comparable] struct {
	prefix1, suffix1 []T // text1 split around the common run
	prefix2, suffix2 []T // text2 split around the common run
	common           []T
}

// halfMatch checks whether the two texts share a run of at least half the
// length of the longer text. Splitting around such a run turns one expensive
// bisection into two much smaller subproblems; the price is that the result
// is no longer guaranteed to be minimal.
func (d *differ[T]) halfMatch(text1, text2 []T) (halfMatch[T], bool) {
	long, short := text1, text2
	if len(text1) <= len(text2) {
		long, short = text2, text1
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return halfMatch[T]{}, false
	}

	// First check if the second quarter is the seed for a half-match, then
	// check again based on the third quarter.
	hm1, ok1 := d.halfMatchAt(long, short, (len(long)+3)/4)
	hm2, ok2 := d.halfMatchAt(long, short, (len(long)+1)/2)

	var hm halfMatch[T]
	switch {
	case !ok1 && !ok2:
		return halfMatch[T]{}, false
	case !ok2:
		hm = hm1
	case !ok1:
		hm = hm2
	case len(hm1.common) > len(hm2.common):
		hm = hm1
	default:
		hm = hm2
	}

	if len(text1) <= len(text2) {
		hm.prefix1, hm.prefix2 = hm.prefix2, hm.prefix1
		hm.suffix1, hm.suffix2 = hm.suffix2, hm.suffix1
	}
	return hm, true
}

// halfMatchAt checks whether a quarter-length seed taken from long at i0
// grows into a common run of at least half of long. Every occurrence of the
// seed in short is tried and the widest extension wins.
func (d *differ[T]) halfMatchAt(long, short []T, i0 int) (halfMatch[T], bool) {
	seed := long[i0 : i0+len(long)/4]
	var best halfMatch[T]
	for j := d.search(short, seed, 0); j != -1; j = d.search(short, seed, j+1) {
		p := PrefixLen(long[i0:], short[j:])
		s := SuffixLen(long[:i0], short[:j])
		if len(best.common) < s+p {
			best = halfMatch[T]{
				prefix1: long[:i0-s],
				suffix1: long[i0+p:],
				prefix2: short[:j-s],
				suffix2: short[j+p:],
				common:  short[j-s : j+p],
			}
		}
	}
	if 2*len(best.common) >= len(long) {
		return best, true
	}
	return halfMatch[T]{}, false
}
