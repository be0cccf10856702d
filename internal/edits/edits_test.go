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

package edits

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// tok splits a string into single-character tokens to keep test tables
// compact.
func tok(s string) []string {
	return strings.Split(s, "")
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Equal, "Equal"},
		{Delete, "Delete"},
		{Insert, "Insert"},
		{Op(7), "Op(7)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestOldNew(t *testing.T) {
	script := []Edit[string]{
		{Equal, tok("ab")},
		{Delete, tok("c")},
		{Insert, tok("xy")},
		{Equal, tok("d")},
	}
	if got, want := Old(script), tok("abcd"); !cmp.Equal(want, got) {
		t.Errorf("Old() = %v, want %v", got, want)
	}
	if got, want := New(script), tok("abxyd"); !cmp.Equal(want, got) {
		t.Errorf("New() = %v, want %v", got, want)
	}
}

func TestCleanupMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Edit[string]
		want []Edit[string]
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "no-change",
			in: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("b")}, {Insert, tok("c")},
			},
			want: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("b")}, {Insert, tok("c")},
			},
		},
		{
			name: "merge-equalities",
			in: []Edit[string]{
				{Equal, tok("a")}, {Equal, tok("b")}, {Equal, tok("c")},
			},
			want: []Edit[string]{
				{Equal, tok("abc")},
			},
		},
		{
			name: "merge-deletions",
			in: []Edit[string]{
				{Delete, tok("a")}, {Delete, tok("b")}, {Delete, tok("c")},
			},
			want: []Edit[string]{
				{Delete, tok("abc")},
			},
		},
		{
			name: "merge-insertions",
			in: []Edit[string]{
				{Insert, tok("a")}, {Insert, tok("b")}, {Insert, tok("c")},
			},
			want: []Edit[string]{
				{Insert, tok("abc")},
			},
		},
		{
			name: "merge-interweave",
			in: []Edit[string]{
				{Delete, tok("a")}, {Insert, tok("b")}, {Delete, tok("c")},
				{Insert, tok("d")}, {Equal, tok("e")}, {Equal, tok("f")},
			},
			want: []Edit[string]{
				{Delete, tok("ac")}, {Insert, tok("bd")}, {Equal, tok("ef")},
			},
		},
		{
			name: "prefix-suffix-detection",
			in: []Edit[string]{
				{Delete, tok("a")}, {Insert, tok("abc")}, {Delete, tok("dc")},
			},
			want: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("d")}, {Insert, tok("b")}, {Equal, tok("c")},
			},
		},
		{
			name: "prefix-suffix-detection-with-equalities",
			in: []Edit[string]{
				{Equal, tok("x")}, {Delete, tok("a")}, {Insert, tok("abc")},
				{Delete, tok("dc")}, {Equal, tok("y")},
			},
			want: []Edit[string]{
				{Equal, tok("xa")}, {Delete, tok("d")}, {Insert, tok("b")}, {Equal, tok("cy")},
			},
		},
		{
			// A bare replace with a mutual prefix and suffix flushes four
			// edits out of a two-edit group; the merge pass must not run
			// out of room.
			name: "prefix-suffix-detection-without-equalities",
			in: []Edit[string]{
				{Delete, tok("acb")}, {Insert, tok("adb")},
			},
			want: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("c")}, {Insert, tok("d")}, {Equal, tok("b")},
			},
		},
		{
			// The factored head equality must not displace the trailing
			// equality that hasn't been consumed yet.
			name: "prefix-detection-before-trailing-equality",
			in: []Edit[string]{
				{Delete, tok("ab")}, {Insert, tok("ac")}, {Equal, tok("z")},
			},
			want: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("b")}, {Insert, tok("c")}, {Equal, tok("z")},
			},
		},
		{
			name: "drop-empty-runs",
			in: []Edit[string]{
				{Equal, nil}, {Delete, tok("a")}, {Insert, nil}, {Equal, nil},
			},
			want: []Edit[string]{
				{Delete, tok("a")},
			},
		},
		{
			name: "empty-equality-between-edits",
			in: []Edit[string]{
				{Delete, tok("a")}, {Equal, nil}, {Insert, tok("b")},
			},
			want: []Edit[string]{
				{Delete, tok("a")}, {Insert, tok("b")},
			},
		},
		{
			name: "slide-edit-left",
			in: []Edit[string]{
				{Equal, tok("a")}, {Insert, tok("ba")}, {Equal, tok("c")},
			},
			want: []Edit[string]{
				{Insert, tok("ab")}, {Equal, tok("ac")},
			},
		},
		{
			name: "slide-edit-right",
			in: []Edit[string]{
				{Equal, tok("c")}, {Insert, tok("ab")}, {Equal, tok("a")},
			},
			want: []Edit[string]{
				{Equal, tok("ca")}, {Insert, tok("ba")},
			},
		},
		{
			name: "slide-edit-left-recursive",
			in: []Edit[string]{
				{Equal, tok("a")}, {Delete, tok("b")}, {Equal, tok("c")},
				{Delete, tok("ac")}, {Equal, tok("x")},
			},
			want: []Edit[string]{
				{Delete, tok("abc")}, {Equal, tok("acx")},
			},
		},
		{
			name: "slide-edit-right-recursive",
			in: []Edit[string]{
				{Equal, tok("x")}, {Delete, tok("ca")}, {Equal, tok("c")},
				{Delete, tok("b")}, {Equal, tok("a")},
			},
			want: []Edit[string]{
				{Equal, tok("xca")}, {Delete, tok("cba")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The input slices double as the expected reconstruction sources.
			wantOld, wantNew := Old(tt.in), New(tt.in)

			got := CleanupMerge(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CleanupMerge result is different (-want, +got):\n%s", diff)
			}

			if diff := cmp.Diff(wantOld, Old(got)); diff != "" {
				t.Errorf("CleanupMerge changed the old sequence (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantNew, New(got)); diff != "" {
				t.Errorf("CleanupMerge changed the new sequence (-want, +got):\n%s", diff)
			}

			for i, e := range got {
				if len(e.Tokens) == 0 {
					t.Errorf("CleanupMerge left an empty run at %d: %v", i, got)
				}
				if i > 0 && got[i-1].Op == e.Op {
					t.Errorf("CleanupMerge left adjacent %v runs at %d: %v", e.Op, i, got)
				}
			}
		})
	}
}

func TestCleanupMergeDoesNotClobberInputs(t *testing.T) {
	// Edit runs usually alias the diffed input slices; normalization must
	// never write through them.
	// A naive append on the first Insert run would write through to
	// backing[2].
	backing := tok("abcabc")
	in := []Edit[string]{
		{Equal, backing[0:1]},
		{Insert, backing[1:2]},
		{Insert, backing[3:4]},
		{Equal, backing[4:6]},
	}
	CleanupMerge(in)
	if got, want := strings.Join(backing, ""), "abcabc"; got != want {
		t.Errorf("CleanupMerge clobbered the backing slice: got %q, want %q", got, want)
	}
}
