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

// Package tokdiff compares two sequences of tokens and returns the
// differences as an edit script.
//
// Tokens are values of any comparable type: words, runes, lines, AST nodes,
// record IDs. The package never inspects token contents, it only compares
// tokens for equality, so the granularity of the diff is entirely decided by
// how the caller tokenizes.
//
// # Computing Diffs
//
// [Diff] compares two slices and describes the changes as a series of edits:
//
//	old := strings.Fields("the quick brown fox")
//	new := strings.Fields("the quick red fox")
//	for _, e := range tokdiff.Diff(old, new) {
//	    fmt.Println(e.Op, e.Tokens)
//	}
//
// The result is always a valid edit script (applying it to the old sequence
// yields the new one, see [Old] and [New]) and always normalized: no empty
// runs, no two adjacent runs of the same kind, and single insertions or
// deletions between matching contexts are shifted as far left as possible.
// The script is not guaranteed to be minimal; the engine trades minimality
// for speed on large inputs.
//
// # Cursor Hints
//
// When diffing successive states of an edited document, the position of the
// editing cursor pinpoints the change. [Cursor] and [CursorRanges] pass that
// hint along:
//
//	tokdiff.Diff(old, new, tokdiff.Cursor(12))
//
// If the change is consistent with a single edit at the hinted position, the
// answer is produced in linear time without running the general algorithm.
// Hints that don't match the actual change are ignored.
//
// # Searching
//
// The substring search underlying the engine is exported as [Search] and
// [SearchFunc]: a Crochemore–Perrin two-way search that finds a needle
// sequence inside a haystack in linear time and constant space.
package tokdiff
