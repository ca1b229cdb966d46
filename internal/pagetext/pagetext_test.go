package pagetext

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// glyphRun lays out one extractor run per character of s, starting at x
// on the given baseline, with a 7-unit advance and 12-unit font — the
// shape Page.Content reports for a monospace face. Spaces become space
// glyphs like any other character.
func glyphRun(x, y float64, s string) []pdflib.Text {
	out := make([]pdflib.Text, 0, len(s))
	for i, r := range s {
		out = append(out, pdflib.Text{
			Font:     "Courier",
			FontSize: 12,
			X:        x + float64(i)*7,
			Y:        y,
			W:        7,
			S:        string(r),
		})
	}
	return out
}

func merge(runs ...[]pdflib.Text) []pdflib.Text {
	var out []pdflib.Text
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}

func TestBuildLines_SplitsWordsAtSpaceGlyphs(t *testing.T) {
	lines := BuildLines(glyphRun(72, 700, "see Q3 highlights"))

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lines[0]
	if got := line.Text(); got != "see Q3 highlights" {
		t.Errorf("expected %q, got %q", "see Q3 highlights", got)
	}
	if len(line.Words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(line.Words))
	}
	// The middle token must be the exact word "Q3", not a fragment.
	if line.Words[1].Text != "Q3" {
		t.Errorf("expected word %q, got %q", "Q3", line.Words[1].Text)
	}
}

func TestBuildLines_JoinsAdjacentGlyphsIntoOneWord(t *testing.T) {
	// Per-glyph runs with contiguous advances form a single word.
	lines := BuildLines(glyphRun(50, 650, "Q3"))

	if len(lines) != 1 || len(lines[0].Words) != 1 {
		t.Fatalf("expected 1 line with 1 word, got %+v", lines)
	}
	if lines[0].Words[0].Text != "Q3" {
		t.Errorf("expected %q, got %q", "Q3", lines[0].Words[0].Text)
	}
}

func TestBuildLines_WordBoxesHaveArea(t *testing.T) {
	lines := BuildLines(glyphRun(50, 650, "Q3"))

	if len(lines) != 1 || len(lines[0].Words) != 1 {
		t.Fatalf("expected 1 line with 1 word, got %+v", lines)
	}
	box := lines[0].Words[0].Box
	want := Rect{LLx: 50, LLy: 650, URx: 64, URy: 662}
	if box != want {
		t.Errorf("expected box %+v, got %+v", want, box)
	}
	if box.URx <= box.LLx || box.URy <= box.LLy {
		t.Errorf("expected a box with area, got %+v", box)
	}
}

func TestBuildLines_GapSplitsWords(t *testing.T) {
	// Two glyph clusters 10 units apart (gap > 0.3 * font size) form two
	// words even without an intervening space glyph.
	lines := BuildLines(merge(
		glyphRun(50, 700, "a"),
		glyphRun(67, 700, "b"),
	))

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if len(lines[0].Words) != 2 {
		t.Fatalf("expected gap to split words, got %q", lines[0].Text())
	}
}

func TestBuildLines_GroupsByBaseline(t *testing.T) {
	lines := BuildLines(merge(
		glyphRun(72, 676, "below"),
		glyphRun(72, 700, "above"),
	))

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text() != "above" || lines[1].Text() != "below" {
		t.Errorf("expected top-to-bottom order, got %q then %q",
			lines[0].Text(), lines[1].Text())
	}
}

func TestBuildLines_ToleratesBaselineJitter(t *testing.T) {
	// Half a font size of baseline drift stays on one line.
	lines := BuildLines(merge(
		glyphRun(50, 700, "a"),
		glyphRun(67, 700.4, "b"),
	))

	if len(lines) != 1 {
		t.Fatalf("expected jittered baselines to form 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "a b" {
		t.Errorf("expected %q, got %q", "a b", got)
	}
}

func TestBuildLines_LineBoxIsUnionOfWords(t *testing.T) {
	lines := BuildLines(merge(
		glyphRun(50, 650, "a"),
		glyphRun(200, 650, "b"),
	))

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	box := lines[0].Box
	if box.LLx != 50 || box.URx != 207 {
		t.Errorf("expected line box x range 50-207, got %+v", box)
	}
}

func TestBuildLines_SortsGlyphsByPosition(t *testing.T) {
	// Runs can arrive in any order in the content stream.
	a := glyphRun(57, 700, "b")
	b := glyphRun(50, 700, "a")
	lines := BuildLines(merge(a, b))

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestBuildLines_WhitespaceOnlyContent(t *testing.T) {
	if lines := BuildLines(glyphRun(50, 700, "   ")); len(lines) != 0 {
		t.Errorf("expected no lines for whitespace-only content, got %d", len(lines))
	}
	if lines := BuildLines(nil); lines != nil {
		t.Errorf("expected nil for empty input, got %v", lines)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{LLx: 10, LLy: 10, URx: 20, URy: 20}
	b := Rect{LLx: 5, LLy: 15, URx: 25, URy: 18}

	got := a.Union(b)
	want := Rect{LLx: 5, LLy: 10, URx: 25, URy: 20}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
