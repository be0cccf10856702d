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

import "tokdiff.io/tokdiff/internal/edits"

// bisect finds the "middle snake" of a diff, splits the problem in two and
// appends the diff of both halves to the script.
//
// This runs Myers' O(ND) algorithm from both ends at once and stops at the
// first overlap of the forward and reverse paths, following Myers (1986)
// section 4b. Only the split point is recovered, not the full path, so the
// space stays linear in the input.
func (d *differ[T]) bisect(text1, text2 []T) {
	n1, n2 := len(text1), len(text2)
	maxD := (n1 + n2 + 1) / 2
	vOff := maxD
	vLen := 2 * maxD
	if cap(d.v) < 2*vLen {
		d.v = make([]int, 2*vLen)
	}
	v1 := d.v[:vLen]
	v2 := d.v[vLen : 2*vLen]
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOff+1] = 0
	v2[vOff+1] = 0
	delta := n1 - n2

	// If the total number of tokens is odd, then the front path will collide
	// with the reverse path.
	front := delta%2 != 0

	// Offsets for start and end of k loops. Prevents mapping of space beyond
	// the grid.
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0
	for D := 0; D < maxD; D++ {
		// Walk the front path one step.
		for k1 := -D + k1start; k1 <= D-k1end; k1 += 2 {
			k1off := vOff + k1
			var x1 int
			if k1 == -D || (k1 != D && v1[k1off-1] < v1[k1off+1]) {
				x1 = v1[k1off+1]
			} else {
				x1 = v1[k1off-1] + 1
			}
			y1 := x1 - k1
			for x1 < n1 && y1 < n2 && text1[x1] == text2[y1] {
				x1++
				y1++
			}
			v1[k1off] = x1
			switch {
			case x1 > n1:
				// Ran off the right of the graph.
				k1end += 2
			case y1 > n2:
				// Ran off the bottom of the graph.
				k1start += 2
			case front:
				k2off := vOff + delta - k1
				if k2off >= 0 && k2off < vLen && v2[k2off] != -1 {
					// Mirror x2 onto top-left coordinate system.
					x2 := n1 - v2[k2off]
					if x1 >= x2 {
						// Overlap detected.
						d.bisectSplit(text1, text2, x1, y1)
						return
					}
				}
			}
		}

		// Walk the reverse path one step.
		for k2 := -D + k2start; k2 <= D-k2end; k2 += 2 {
			k2off := vOff + k2
			var x2 int
			if k2 == -D || (k2 != D && v2[k2off-1] < v2[k2off+1]) {
				x2 = v2[k2off+1]
			} else {
				x2 = v2[k2off-1] + 1
			}
			y2 := x2 - k2
			for x2 < n1 && y2 < n2 && text1[n1-x2-1] == text2[n2-y2-1] {
				x2++
				y2++
			}
			v2[k2off] = x2
			switch {
			case x2 > n1:
				// Ran off the left of the graph.
				k2end += 2
			case y2 > n2:
				// Ran off the top of the graph.
				k2start += 2
			case !front:
				k1off := vOff + delta - k2
				if k1off >= 0 && k1off < vLen && v1[k1off] != -1 {
					x1 := v1[k1off]
					y1 := vOff + x1 - k1off
					// Mirror x2 onto top-left coordinate system.
					x2 = n1 - x2
					if x1 >= x2 {
						// Overlap detected.
						d.bisectSplit(text1, text2, x1, y1)
						return
					}
				}
			}
		}
	}
	// The number of edits equals the number of tokens, so there is no
	// commonality at all; reachable only through the rounding of maxD.
	d.add(edits.Delete, text1)
	d.add(edits.Insert, text2)
}

// bisectSplit diffs the two halves on either side of the overlap point
// (x, y) and appends the results in order.
func (d *differ[T]) bisectSplit(text1, text2 []T, x, y int) {
	d.main(text1[:x], text2[:y])
	d.main(text1[x:], text2[y:])
}
