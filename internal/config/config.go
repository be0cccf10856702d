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

// Package config provides shared configuration mechanisms for the packages of
// this module.
//
// This package is an implementation detail, the configuration surface for
// users is provided via tokdiff.Option.
package config

// Range describes a caret (Length == 0) or a selection (Length > 0) within a
// token sequence. Index and Length are token offsets, not byte or character
// offsets.
type Range struct {
	Index  int
	Length int
}

// Config collects all configurable parameters for comparison functions in
// this module.
type Config struct {
	// OldRange is a known caret or selection in the old sequence, or nil if
	// the caller supplied no cursor hint.
	OldRange *Range

	// NewRange is the corresponding caret or selection in the new sequence.
	// It may be nil when the hint was a bare caret position; a caret then
	// carries no claim about where the cursor ends up in the new sequence.
	NewRange *Range
}

// Default is the default configuration.
var Default = Config{}

// Flag describes a single config entry. This is used to detect options that
// are applied in a context that does not support them.
type Flag int

const (
	CursorHint Flag = 1 << iota
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
//
// FromOptions validates the structural integrity of cursor hints: ranges must
// have non-negative index and length, and a new-sequence range cannot be
// resolved without an old-sequence range. Violations panic, they are caller
// bugs rather than data-dependent conditions.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.NewRange != nil && cfg.OldRange == nil {
		panic("tokdiff: invalid cursor hint: new-sequence range without old-sequence range")
	}
	if cfg.OldRange != nil && cfg.OldRange.Length > 0 && cfg.NewRange == nil {
		panic("tokdiff: invalid cursor hint: selection without new-sequence range")
	}
	for _, r := range []*Range{cfg.OldRange, cfg.NewRange} {
		if r != nil && (r.Index < 0 || r.Length < 0) {
			panic("tokdiff: invalid cursor hint: negative index or length")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case CursorHint:
		return "tokdiff.Cursor"
	default:
		panic("never reached")
	}
}
