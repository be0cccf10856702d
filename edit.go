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

import "tokdiff.io/tokdiff/internal/edits"

// Op describes the operation of an edit.
type Op = edits.Op

const (
	Equal  = edits.Equal  // A run of tokens present in both sequences
	Delete = edits.Delete // A run of tokens only present in the old sequence
	Insert = edits.Insert // A run of tokens only present in the new sequence
)

// Edit describes a single edit of a diff: a contiguous run of tokens tagged
// with the operation that produces it.
type Edit[T comparable] = edits.Edit[T]

// Old reconstructs the old sequence from an edit script by concatenating the
// Equal and Delete runs in order.
func Old[T comparable](script []Edit[T]) []T {
	return edits.Old(script)
}

// New reconstructs the new sequence from an edit script by concatenating the
// Equal and Insert runs in order.
func New[T comparable](script []Edit[T]) []T {
	return edits.New(script)
}

// Levenshtein returns the Levenshtein distance encoded in a script: the
// number of inserted, deleted or substituted tokens, where a deletion paired
// with an insertion between the same equalities counts as a substitution.
func Levenshtein[T comparable](script []Edit[T]) int {
	lev, ins, del := 0, 0, 0
	for _, e := range script {
		switch e.Op {
		case Insert:
			ins += len(e.Tokens)
		case Delete:
			del += len(e.Tokens)
		case Equal:
			// A deletion and an insertion is one substitution.
			lev += max(ins, del)
			ins, del = 0, 0
		}
	}
	return lev + max(ins, del)
}

// TranslateIndex maps loc, a token offset into the old sequence, to the
// corresponding offset in the new sequence. Offsets inside a deleted run map
// to the position where the run used to be.
func TranslateIndex[T comparable](script []Edit[T], loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var overshot Edit[T]
	for _, e := range script {
		if e.Op != Insert {
			chars1 += len(e.Tokens)
		}
		if e.Op != Delete {
			chars2 += len(e.Tokens)
		}
		if chars1 > loc {
			overshot = e
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}
	if overshot.Op == Delete {
		// The offset was deleted.
		return lastChars2
	}
	return lastChars2 + (loc - lastChars1)
}
