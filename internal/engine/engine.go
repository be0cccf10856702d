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

// Package engine contains the recursive diff core.
//
// The engine is a divide-and-conquer diff in the diff-match-patch family: it
// tries a ladder of shortcuts before paying for the general algorithm. In
// order: element-wise equality, a direct answer for tiny inputs, the
// cursor-hint splice, common prefix/suffix trimming, containment of the
// shorter sequence in the longer (via two-way search), the half-match
// heuristic, and finally Myers bisection, which splits the problem at a
// middle diagonal overlap and recurses. Assembled scripts are normalized by
// [edits.CleanupMerge] before they are returned.
//
// Several of the shortcuts trade minimality for bounded running time; the
// result is always a valid edit script but not necessarily the shortest one.
package engine

import (
	"slices"

	"tokdiff.io/tokdiff/internal/config"
	"tokdiff.io/tokdiff/internal/edits"
	"tokdiff.io/tokdiff/internal/order"
	"tokdiff.io/tokdiff/internal/twoway"
)

// smallInput is the input length below which the engine skips every
// heuristic: a delete plus an insert, cleaned up by the normalizer, is
// already within a factor of two of minimal at this size.
const smallInput = 6

type differ[T comparable] struct {
	script []edits.Edit[T]
	oracle *order.Oracle

	// Scratch space for the forward and reverse v-arrays of bisect, reused
	// across recursive calls.
	v []int
}

func (d *differ[T]) add(op edits.Op, tokens []T) {
	if len(tokens) == 0 {
		return
	}
	d.script = append(d.script, edits.Edit[T]{Op: op, Tokens: tokens})
}

// compare is the three-way comparator handed to the two-way search. Distinct
// tokens are ordered by their oracle rank.
func (d *differ[T]) compare(a, b T) int {
	if a == b {
		return 0
	}
	return d.oracle.Compare(a, b)
}

func (d *differ[T]) search(haystack, needle []T, start int) int {
	return twoway.Search(haystack, needle, start, d.compare)
}

// Diff computes the edit script that transforms old into new. The returned
// script is normalized: no empty runs, no two adjacent runs of the same kind.
func Diff[T comparable](old, new []T, cfg config.Config, oracle *order.Oracle) []edits.Edit[T] {
	oracle.ResetIfLarge()

	if slices.Equal(old, new) {
		if len(old) == 0 {
			return nil
		}
		return []edits.Edit[T]{{Op: edits.Equal, Tokens: old}}
	}

	d := &differ[T]{oracle: oracle}

	if len(old) < smallInput || len(new) < smallInput {
		d.add(edits.Delete, old)
		d.add(edits.Insert, new)
		return edits.CleanupMerge(d.script)
	}

	if cfg.OldRange != nil {
		if script, ok := splice(old, new, cfg); ok {
			return script
		}
	}

	d.main(old, new)
	return edits.CleanupMerge(d.script)
}

// main appends the diff of text1 and text2 to the script. It simplifies the
// problem by stripping any common prefix or suffix off the texts before
// diffing the middle.
func (d *differ[T]) main(text1, text2 []T) {
	if slices.Equal(text1, text2) {
		d.add(edits.Equal, text1)
		return
	}

	n := PrefixLen(text1, text2)
	prefix := text1[:n]
	text1, text2 = text1[n:], text2[n:]

	n = SuffixLen(text1, text2)
	suffix := text1[len(text1)-n:]
	text1, text2 = text1[:len(text1)-n], text2[:len(text2)-n]

	d.add(edits.Equal, prefix)
	d.compute(text1, text2)
	d.add(edits.Equal, suffix)
}

// compute appends the diff of text1 and text2, which are assumed to share
// neither a prefix nor a suffix.
func (d *differ[T]) compute(text1, text2 []T) {
	if len(text1) == 0 {
		d.add(edits.Insert, text2)
		return
	}
	if len(text2) == 0 {
		d.add(edits.Delete, text1)
		return
	}

	long, short, op := text1, text2, edits.Delete
	if len(text1) <= len(text2) {
		long, short, op = text2, text1, edits.Insert
	}
	if i := d.search(long, short, 0); i != -1 {
		// The shorter sequence is contained in the longer one.
		d.add(op, long[:i])
		d.add(edits.Equal, short)
		d.add(op, long[i+len(short):])
		return
	}

	if len(short) == 1 {
		// After the containment check a single token can't be an equality.
		d.add(edits.Delete, text1)
		d.add(edits.Insert, text2)
		return
	}

	// Check to see if the problem can be split in two around a long common
	// run.
	if hm, ok := d.halfMatch(text1, text2); ok {
		d.main(hm.prefix1, hm.prefix2)
		d.add(edits.Equal, hm.common)
		d.main(hm.suffix1, hm.suffix2)
		return
	}

	d.bisect(text1, text2)
}
