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

// Package edits contains the edit-script representation shared by the diff
// engine and the user facing API, together with the normalization pass that
// every script goes through before it is returned.
package edits

import "slices"

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // A run of tokens present in both sequences
	Delete           // A run of tokens only present in the old sequence
	Insert           // A run of tokens only present in the new sequence
)

// noop marks an edit for removal during normalization. It never appears in
// input or output scripts and is deliberately untyped so stringer skips it.
const noop = -1

// Edit describes a single edit of a diff: a contiguous run of tokens tagged
// with the operation that produces it.
//
//   - For Equal, Tokens is a run common to the old and new sequence.
//   - For Delete, Tokens is a run of the old sequence absent from the new.
//   - For Insert, Tokens is a run of the new sequence absent from the old.
type Edit[T comparable] struct {
	Op     Op
	Tokens []T
}

// Old reconstructs the old sequence from a script by concatenating the
// Equal and Delete runs in order.
func Old[T comparable](script []Edit[T]) []T {
	var out []T
	for _, e := range script {
		if e.Op != Insert {
			out = append(out, e.Tokens...)
		}
	}
	return out
}

// New reconstructs the new sequence from a script by concatenating the
// Equal and Insert runs in order.
func New[T comparable](script []Edit[T]) []T {
	var out []T
	for _, e := range script {
		if e.Op != Delete {
			out = append(out, e.Tokens...)
		}
	}
	return out
}

// concat joins two runs without ever appending in place: runs usually alias
// the caller's input slices, so growing one through append could clobber
// tokens the caller still owns.
func concat[T comparable](a, b []T) []T {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func hasPrefix[T comparable](s, prefix []T) bool {
	return len(prefix) <= len(s) && slices.Equal(s[:len(prefix)], prefix)
}

func hasSuffix[T comparable](s, suffix []T) bool {
	return len(suffix) <= len(s) && slices.Equal(s[len(s)-len(suffix):], suffix)
}

// CleanupMerge reorders and merges like edit sections and merges equalities.
// Any edit section can move as long as it doesn't cross an equality. The
// result has no two adjacent edits of the same kind and no empty runs.
//
// Scanning left to right, runs of deletions and insertions between two
// equalities are accumulated. At each equality boundary the accumulated
// delete and insert runs are compared; a mutual prefix is factored out into
// the preceding equality (or a new leading one) and a mutual suffix into the
// following equality, then the remainder is emitted as a single Delete
// followed by a single Insert. A second sweep shifts single edits that are
// flanked by equalities sideways when doing so eliminates an equality; any
// shift re-runs the whole pass, to a fixpoint.
func CleanupMerge[T comparable](script []Edit[T]) []Edit[T] {
	if len(script) == 0 {
		return nil
	}
	// Flushing a group can emit more edits than it consumed (factoring a
	// mutual prefix out of a leading delete/insert pair adds a head
	// equality), so the merged script is built in a fresh slice rather
	// than compacted in place.
	var del, ins []T
	out := make([]Edit[T], 0, len(script))
	prevEqual := func() *Edit[T] {
		if len(out) == 0 {
			return nil
		}
		if p := &out[len(out)-1]; p.Op == Equal {
			return p
		}
		return nil
	}

	for i := 0; i <= len(script); i++ {
		e := Edit[T]{Op: Equal} // sentinel boundary flushes the last group
		if i < len(script) {
			e = script[i]
		}
		switch e.Op {
		case noop:
		case Insert:
			ins = concat(ins, e.Tokens)
		case Delete:
			del = concat(del, e.Tokens)
		case Equal:
			if len(e.Tokens) == 0 && i != len(script) {
				// An empty equality separates nothing, the edits around it
				// belong to the same group. The sentinel still flushes.
				continue
			}
			if len(del) > 0 && len(ins) > 0 {
				// Factor out a mutual prefix.
				if n := prefixLen(del, ins); n > 0 {
					if prev := prevEqual(); prev != nil {
						prev.Tokens = concat(prev.Tokens, del[:n])
					} else {
						out = append(out, Edit[T]{Equal, del[:n]})
					}
					del, ins = del[n:], ins[n:]
				}
				// Factor out a mutual suffix.
				if n := suffixLen(del, ins); n > 0 {
					e.Tokens = concat(del[len(del)-n:], e.Tokens)
					del, ins = del[:len(del)-n], ins[:len(ins)-n]
				}
			}
			if len(del) > 0 {
				out = append(out, Edit[T]{Delete, del})
			}
			if len(ins) > 0 {
				out = append(out, Edit[T]{Insert, ins})
			}
			if prev := prevEqual(); prev != nil {
				prev.Tokens = concat(prev.Tokens, e.Tokens)
			} else {
				out = append(out, Edit[T]{Equal, e.Tokens})
			}
			del, ins = nil, nil
		}
	}
	script = out
	if last := len(script) - 1; last >= 0 && len(script[last].Tokens) == 0 {
		script = script[:last]
	}

	// Second pass: look for single edits surrounded on both sides by
	// equalities which can be shifted sideways to eliminate an equality,
	// e.g. =<a> +<ba> =<c> becomes +<ab> =<ac>.
	changed := false
	for i := 1; i < len(script)-1; i++ {
		prev, next := &script[i-1], &script[i+1]
		if prev.Op != Equal || next.Op != Equal {
			continue
		}
		e := &script[i]
		if hasSuffix(e.Tokens, prev.Tokens) {
			// Shift the edit over the previous equality.
			e.Tokens = concat(prev.Tokens, e.Tokens[:len(e.Tokens)-len(prev.Tokens)])
			next.Tokens = concat(prev.Tokens, next.Tokens)
			prev.Op = noop
			changed = true
		} else if hasPrefix(e.Tokens, next.Tokens) {
			// Shift the edit over the next equality.
			prev.Tokens = concat(prev.Tokens, next.Tokens)
			e.Tokens = concat(e.Tokens[len(next.Tokens):], next.Tokens)
			next.Op = noop
			changed = true
		}
	}

	// A shift may expose further merges, so normalize again until the
	// script settles.
	if changed {
		return CleanupMerge(script)
	}
	return script
}

// prefixLen returns the length of the common prefix of a and b by direct
// scan. The binary-search probes the engine uses on raw inputs are not
// worthwhile on already-extracted edit runs.
func prefixLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// suffixLen returns the length of the common suffix of a and b.
func suffixLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 1; i <= n; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return i - 1
		}
	}
	return n
}
