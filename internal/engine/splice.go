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

import (
	"slices"

	"tokdiff.io/tokdiff/internal/config"
	"tokdiff.io/tokdiff/internal/edits"
)

// splice tries to explain the change from old to new as a single edit at the
// hinted cursor position. Text editors produce exactly this shape of change
// on every keystroke: an insertion or deletion at the caret, or a replacement
// of the selection. When the shape is verified against both sequences the
// four-part script is returned directly, skipping the general algorithm.
//
// Verification is exact, so a successful splice is always a valid script; it
// is just not necessarily the minimal one.
func splice[T comparable](old, new []T, cfg config.Config) ([]edits.Edit[T], bool) {
	oldRange, newRange := cfg.OldRange, cfg.NewRange

	if oldRange.Length == 0 && (newRange == nil || newRange.Length == 0) {
		cursor := oldRange.Index
		if cursor > len(old) {
			return nil, false
		}
		oldBefore, oldAfter := old[:cursor], old[cursor:]

		// A single edit just before the caret: everything after the caret is
		// untouched and the caret lands at the end of the edit.
		if newCursor := cursor + len(new) - len(old); newCursor >= 0 && newCursor <= len(new) &&
			(newRange == nil || newRange.Index == newCursor) {
			newBefore, newAfter := new[:newCursor], new[newCursor:]
			if slices.Equal(newAfter, oldAfter) {
				n := min(cursor, newCursor)
				if slices.Equal(oldBefore[:n], newBefore[:n]) {
					return makeSplice(oldBefore[:n], oldBefore[n:], newBefore[n:], oldAfter), true
				}
			}
		}

		// A single edit just after the caret: everything before the caret is
		// untouched and the caret stays put.
		if cursor <= len(new) && (newRange == nil || newRange.Index == cursor) {
			newBefore, newAfter := new[:cursor], new[cursor:]
			if slices.Equal(newBefore, oldBefore) {
				n := min(len(oldAfter), len(newAfter))
				if slices.Equal(oldAfter[len(oldAfter)-n:], newAfter[len(newAfter)-n:]) {
					return makeSplice(oldBefore, oldAfter[:len(oldAfter)-n],
						newAfter[:len(newAfter)-n], oldAfter[len(oldAfter)-n:]), true
				}
			}
		}
		return nil, false
	}

	if oldRange.Length > 0 && newRange != nil && newRange.Length == 0 {
		// The old selection was replaced, collapsing to a caret in new.
		// Everything outside the selection must be untouched.
		if oldRange.Index+oldRange.Length > len(old) {
			return nil, false
		}
		prefix := old[:oldRange.Index]
		suffix := old[oldRange.Index+oldRange.Length:]
		if len(new) < len(prefix)+len(suffix) {
			return nil, false
		}
		if !slices.Equal(prefix, new[:len(prefix)]) ||
			!slices.Equal(suffix, new[len(new)-len(suffix):]) {
			return nil, false
		}
		return makeSplice(prefix,
			old[len(prefix):len(old)-len(suffix)],
			new[len(prefix):len(new)-len(suffix)],
			suffix), true
	}

	return nil, false
}

// makeSplice assembles the four-part Equal/Delete/Insert/Equal script,
// dropping empty runs.
func makeSplice[T comparable](before, oldMiddle, newMiddle, after []T) []edits.Edit[T] {
	script := make([]edits.Edit[T], 0, 4)
	if len(before) > 0 {
		script = append(script, edits.Edit[T]{Op: edits.Equal, Tokens: before})
	}
	if len(oldMiddle) > 0 {
		script = append(script, edits.Edit[T]{Op: edits.Delete, Tokens: oldMiddle})
	}
	if len(newMiddle) > 0 {
		script = append(script, edits.Edit[T]{Op: edits.Insert, Tokens: newMiddle})
	}
	if len(after) > 0 {
		script = append(script, edits.Edit[T]{Op: edits.Equal, Tokens: after})
	}
	return script
}
