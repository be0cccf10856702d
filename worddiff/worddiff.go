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

// Package worddiff provides word-level diffs of strings.
//
// This is a thin convenience wrapper around [tokdiff.Diff]: inputs are split
// into words on whitespace and each edit run is projected back to a string by
// joining its words with single spaces. Whitespace is therefore not
// preserved, which is the expected trade-off for word-level output.
package worddiff

import (
	"encoding/json"
	"fmt"
	"strings"

	"tokdiff.io/tokdiff"
	"tokdiff.io/tokdiff/internal/config"
	"tokdiff.io/tokdiff/worddiff/color"
)

// Edit describes a single run of a word diff as display text.
type Edit struct {
	Op   tokdiff.Op
	Text string
}

// MarshalJSON encodes the edit as a single-key object: {"text": ...} for
// matching words, {"remove": ...} for deleted words and {"add": ...} for
// inserted words. This shape is part of the public contract and is consumed
// by downstream tooling, don't change it.
func (e Edit) MarshalJSON() ([]byte, error) {
	var key string
	switch e.Op {
	case tokdiff.Equal:
		key = "text"
	case tokdiff.Delete:
		key = "remove"
	case tokdiff.Insert:
		key = "add"
	default:
		return nil, fmt.Errorf("worddiff: cannot marshal edit with op %v", e.Op)
	}
	return json.Marshal(map[string]string{key: e.Text})
}

// UnmarshalJSON decodes the single-key object produced by [Edit.MarshalJSON].
func (e *Edit) UnmarshalJSON(data []byte) error {
	var obj map[string]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if len(obj) != 1 {
		return fmt.Errorf("worddiff: cannot unmarshal edit with %d keys", len(obj))
	}
	for key, text := range obj {
		switch key {
		case "text":
			e.Op = tokdiff.Equal
		case "remove":
			e.Op = tokdiff.Delete
		case "add":
			e.Op = tokdiff.Insert
		default:
			return fmt.Errorf("worddiff: unknown edit key %q", key)
		}
		e.Text = text
	}
	return nil
}

// Diff compares old and new word by word. Words are maximal runs of
// non-whitespace as defined by [strings.Fields]; all options of
// [tokdiff.Diff] apply, with cursor positions measured in words.
func Diff(old, new string, opts ...tokdiff.Option) []Edit {
	script := tokdiff.Diff(strings.Fields(old), strings.Fields(new), opts...)
	out := make([]Edit, len(script))
	for i, e := range script {
		out[i] = Edit{Op: e.Op, Text: strings.Join(e.Tokens, " ")}
	}
	return out
}

// Old reconstructs the old input from a word diff, normalized to single
// spaces between words.
func Old(script []Edit) string {
	return join(script, tokdiff.Insert)
}

// New reconstructs the new input from a word diff, normalized to single
// spaces between words.
func New(script []Edit) string {
	return join(script, tokdiff.Delete)
}

func join(script []Edit, skip tokdiff.Op) string {
	var sb strings.Builder
	for _, e := range script {
		if e.Op == skip {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Text)
	}
	return sb.String()
}

// Format renders a word diff in the git word-diff plain style: deleted runs
// are wrapped in [-...-] and inserted runs in {+...+}.
func Format(script []Edit) string {
	var sb strings.Builder
	for i, e := range script {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e.Op {
		case tokdiff.Delete:
			sb.WriteString("[-")
			sb.WriteString(e.Text)
			sb.WriteString("-]")
		case tokdiff.Insert:
			sb.WriteString("{+")
			sb.WriteString(e.Text)
			sb.WriteString("+}")
		default:
			sb.WriteString(e.Text)
		}
	}
	return sb.String()
}

// Terminal renders a word diff for a color terminal using ANSI escape
// sequences. By default matching words are uncolored, deleted words red and
// inserted words green; the colors can be customized using the options in
// [tokdiff.io/tokdiff/worddiff/color].
func Terminal(script []Edit, opts ...color.Option) string {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	var sb strings.Builder
	for i, e := range script {
		if i > 0 {
			sb.WriteByte(' ')
		}
		var code string
		switch e.Op {
		case tokdiff.Delete:
			code = cc.Delete
		case tokdiff.Insert:
			code = cc.Insert
		default:
			code = cc.Match
		}
		if code == "" {
			sb.WriteString(e.Text)
			continue
		}
		sb.WriteString(code)
		sb.WriteString(e.Text)
		sb.WriteString("\033[m")
	}
	return sb.String()
}
