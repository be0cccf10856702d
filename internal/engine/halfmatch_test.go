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
	"strings"
	"testing"

	"tokdiff.io/tokdiff/internal/order"
)

func newTestDiffer() *differ[string] {
	return &differ[string]{oracle: order.New()}
}

func TestHalfMatch(t *testing.T) {
	tests := []struct {
		name         string
		text1, text2 string
		want         []string // prefix1, suffix1, prefix2, suffix2, common; nil for no half-match
	}{
		{
			name:  "no-match",
			text1: "1234567890",
			text2: "abcdef",
			want:  nil,
		},
		{
			name:  "short-under-half",
			text1: "12345",
			text2: "23",
			want:  nil,
		},
		{
			name:  "single-match",
			text1: "1234567890",
			text2: "a345678z",
			want:  []string{"12", "90", "a", "z", "345678"},
		},
		{
			name:  "single-match-swapped",
			text1: "a345678z",
			text2: "1234567890",
			want:  []string{"a", "z", "12", "90", "345678"},
		},
		{
			name:  "match-at-end",
			text1: "abc56789z",
			text2: "1234567890",
			want:  []string{"abc", "z", "1234", "0", "56789"},
		},
		{
			name:  "match-at-start",
			text1: "a23456xyz",
			text2: "1234567890",
			want:  []string{"a", "xyz", "1", "7890", "23456"},
		},
		{
			name:  "multiple-matches",
			text1: "121231234123451234123121",
			text2: "a1234123451234z",
			want:  []string{"12123", "123121", "a", "z", "1234123451234"},
		},
		{
			name:  "non-optimal",
			text1: "qHilloHelloHew",
			text2: "xHelloHeHulloy",
			want:  []string{"qHillo", "w", "x", "Hulloy", "HelloHe"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDiffer()
			hm, ok := d.halfMatch(tok(tt.text1), tok(tt.text2))
			if tt.want == nil {
				if ok {
					t.Fatalf("halfMatch(%q, %q) found %v, want none", tt.text1, tt.text2, hm)
				}
				return
			}
			if !ok {
				t.Fatalf("halfMatch(%q, %q) found nothing, want %v", tt.text1, tt.text2, tt.want)
			}
			got := []string{
				strings.Join(hm.prefix1, ""),
				strings.Join(hm.suffix1, ""),
				strings.Join(hm.prefix2, ""),
				strings.Join(hm.suffix2, ""),
				strings.Join(hm.common, ""),
			}
			for i, part := range got {
				if part != tt.want[i] {
					t.Errorf("halfMatch(%q, %q) = %v, want %v", tt.text1, tt.text2, got, tt.want)
					break
				}
			}
		})
	}
}

func TestHalfMatchSplitConsistency(t *testing.T) {
	// The split parts must reassemble into the original texts.
	d := newTestDiffer()
	text1, text2 := tok("a345678z"), tok("1234567890")
	hm, ok := d.halfMatch(text1, text2)
	if !ok {
		t.Fatal("halfMatch found nothing")
	}
	got1 := strings.Join(hm.prefix1, "") + strings.Join(hm.common, "") + strings.Join(hm.suffix1, "")
	if got1 != "a345678z" {
		t.Errorf("prefix1 + common + suffix1 = %q, want %q", got1, "a345678z")
	}
	got2 := strings.Join(hm.prefix2, "") + strings.Join(hm.common, "") + strings.Join(hm.suffix2, "")
	if got2 != "1234567890" {
		t.Errorf("prefix2 + common + suffix2 = %q, want %q", got2, "1234567890")
	}
}
