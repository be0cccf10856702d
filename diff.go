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

import (
	"tokdiff.io/tokdiff/internal/config"
	"tokdiff.io/tokdiff/internal/engine"
)

// Diff computes the differences between the token sequences old and new and
// returns them as an edit script.
//
// The runs in the returned script alias the input slices, no tokens are
// copied. Concatenating the Equal and Delete runs reproduces old,
// concatenating the Equal and Insert runs reproduces new. The script is
// normalized but not guaranteed to be minimal.
//
// Diff is deterministic: the same inputs always produce the same script.
// Identical inputs return a single Equal edit, two empty inputs return nil.
//
// Diff panics if an option is malformed (e.g. a cursor hint with a negative
// index); see [Cursor] and [CursorRanges].
func Diff[T comparable](old, new []T, opts ...Option) []Edit[T] {
	cfg := config.FromOptions(opts, config.CursorHint)
	return engine.Diff(old, new, cfg, sharedOracle)
}
