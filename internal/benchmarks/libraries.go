// Package benchmarks compares this module's word diff against other Go diff
// libraries.
//
// Most of the libraries here diff lines, not words. To keep the comparison
// meaningful every input is re-tokenized so that each word sits on its own
// line before it is handed to a line-based differ, and all outputs are
// rendered in the same [-...-]/{+...+} marker format. The renderings are
// close enough to compare running time and edit counts, not byte-for-byte
// output.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"tokdiff.io/tokdiff/worddiff"
)

type Impl struct {
	Name string
	Diff func(x, y string) string
}

// wordsPerLine puts every word on its own line for line-based differs.
func wordsPerLine(s string) string {
	return strings.Join(strings.Fields(s), "\n") + "\n"
}

var Impls = []Impl{
	{
		Name: "tokdiff",
		Diff: func(x, y string) string {
			return worddiff.Format(worddiff.Diff(x, y))
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(wordsPerLine(x)), "y", []byte(wordsPerLine(y))))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			dmp := diffmatchpatch.New()
			c1, c2, lines := dmp.DiffLinesToChars(wordsPerLine(x), wordsPerLine(y))
			diffs := dmp.DiffMain(c1, c2, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for i, diff := range diffs {
				if i > 0 {
					sb.WriteByte(' ')
				}
				text := strings.Join(strings.Fields(diff.Text), " ")
				switch diff.Type {
				case diffmatchpatch.DiffDelete:
					sb.WriteString("[-" + text + "-]")
				case diffmatchpatch.DiffInsert:
					sb.WriteString("{+" + text + "+}")
				default:
					sb.WriteString(text)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			// This is not exactly the marker format, but it's close enough to
			// be comparable.
			return godebug.Diff(wordsPerLine(x), wordsPerLine(y))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			d := mb0words{
				x: strings.Fields(x),
				y: strings.Fields(y),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var parts []string
			a, b := 0, 0
			for _, ch := range changes {
				for a < ch.A {
					parts = append(parts, d.x[a])
					a++
					b++
				}
				if ch.Del > 0 {
					parts = append(parts, "[-"+strings.Join(d.x[ch.A:ch.A+ch.Del], " ")+"-]")
					a += ch.Del
				}
				if ch.Ins > 0 {
					parts = append(parts, "{+"+strings.Join(d.y[ch.B:ch.B+ch.Ins], " ")+"+}")
					b += ch.Ins
				}
			}
			for a < len(d.x) {
				parts = append(parts, d.x[a])
				a++
			}
			return strings.Join(parts, " ")
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			// This is not exactly the marker format, but it's close enough to
			// be comparable.
			return udiff.Unified("x", "y", wordsPerLine(x), wordsPerLine(y))
		},
	},
}

type mb0words struct {
	x []string
	y []string
}

func (d mb0words) Equal(i, j int) bool { return d.x[i] == d.y[j] }

// CountEdits counts the changed words in a rendered diff, independent of
// which library produced it.
func CountEdits(out string) int {
	if strings.Contains(out, "\n") {
		// Line-based rendering: one changed word per +/- line.
		n := 0
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
				n++
			}
		}
		return n
	}

	// Marker rendering: count the words inside [-...-] and {+...+} groups.
	n := 0
	inEdit := false
	for _, tok := range strings.Fields(out) {
		if strings.HasPrefix(tok, "[-") || strings.HasPrefix(tok, "{+") {
			inEdit = true
		}
		if inEdit {
			n++
		}
		if strings.HasSuffix(tok, "-]") || strings.HasSuffix(tok, "+}") {
			inEdit = false
		}
	}
	return n
}
