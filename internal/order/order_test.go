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

package order

import "testing"

func TestRank(t *testing.T) {
	o := New()
	if got := o.Rank("a"); got != 1 {
		t.Errorf("Rank(a) = %v, want 1", got)
	}
	if got := o.Rank("b"); got != 2 {
		t.Errorf("Rank(b) = %v, want 2", got)
	}
	if got := o.Rank("a"); got != 1 {
		t.Errorf("Rank(a) on second lookup = %v, want 1", got)
	}
	if got := o.Len(); got != 2 {
		t.Errorf("Len() = %v, want 2", got)
	}
}

func TestCompare(t *testing.T) {
	o := New()
	if got := o.Compare("x", "x"); got != 0 {
		t.Errorf("Compare(x, x) = %v, want 0", got)
	}
	if got := o.Compare("x", "y"); got >= 0 {
		t.Errorf("Compare(x, y) = %v, want < 0 (x was seen first)", got)
	}
	if got := o.Compare("y", "x"); got <= 0 {
		t.Errorf("Compare(y, x) = %v, want > 0", got)
	}

	// Mixed types are fine, the order only depends on first sight.
	if got := o.Compare(42, "x"); got <= 0 {
		t.Errorf("Compare(42, x) = %v, want > 0", got)
	}
}

func TestCompareConsistency(t *testing.T) {
	// The order must be strict and total: antisymmetric, transitive and
	// stable across repeated calls.
	o := New()
	toks := []any{"a", "b", 1, 2, 'r', "c"}
	for _, a := range toks {
		for _, b := range toks {
			ab, ba := o.Compare(a, b), o.Compare(b, a)
			if ab != -ba {
				t.Errorf("Compare(%v, %v) = %v, but Compare(%v, %v) = %v", a, b, ab, b, a, ba)
			}
			if (ab == 0) != (a == b) {
				t.Errorf("Compare(%v, %v) = %v, want 0 iff equal", a, b, ab)
			}
		}
	}
	for _, a := range toks {
		for _, b := range toks {
			for _, c := range toks {
				if o.Compare(a, b) < 0 && o.Compare(b, c) < 0 && o.Compare(a, c) >= 0 {
					t.Errorf("order is not transitive over (%v, %v, %v)", a, b, c)
				}
			}
		}
	}
}

func TestResetIfLarge(t *testing.T) {
	o := New()
	for i := range resetThreshold {
		o.Rank(i)
	}
	o.ResetIfLarge()
	if got := o.Len(); got != resetThreshold {
		t.Errorf("Len() after ResetIfLarge at threshold = %v, want %v", got, resetThreshold)
	}

	o.Rank("one over")
	o.ResetIfLarge()
	if got := o.Len(); got != 0 {
		t.Errorf("Len() after ResetIfLarge above threshold = %v, want 0", got)
	}

	// Ranks restart after a reset.
	if got := o.Rank("fresh"); got != 1 {
		t.Errorf("Rank after reset = %v, want 1", got)
	}
}
