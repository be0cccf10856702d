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

import "tokdiff.io/tokdiff/internal/config"

// Option is an option that can be passed to [Diff].
type Option = config.Option

// CursorRange describes a caret (Length == 0) or a selection (Length > 0)
// within a token sequence. Index and Length are token offsets.
type CursorRange = config.Range

// Cursor hints [Diff] with the position of the editing cursor in the old
// sequence, measured in tokens. If the change from old to new is consistent
// with a single insertion or deletion at that position the diff is computed
// in linear time; otherwise the hint is ignored.
//
// A negative pos makes [Diff] panic. A pos beyond the end of the old
// sequence is a hint that can never match and is ignored.
func Cursor(pos int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.OldRange = &config.Range{Index: pos}
		return config.CursorHint
	}
}

// CursorRanges hints [Diff] with the cursor state in both sequences: old is
// the caret or selection before the change, new the caret after it. A
// selection in old paired with a caret in new additionally matches the
// replacement of the selected run.
//
// Ranges with a negative index or length make [Diff] panic. A selection in
// the new sequence matches no edit shape and is ignored.
func CursorRanges(old, new CursorRange) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.OldRange = &old
		cfg.NewRange = &new
		return config.CursorHint
	}
}
