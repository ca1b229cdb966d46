// Package pagetext turns the raw glyph runs produced by the PDF text
// extractor into lines and words with user-space bounding boxes.
package pagetext

import (
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Rect is a rectangle in PDF user space (origin bottom-left).
type Rect struct {
	LLx, LLy, URx, URy float64
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if o.LLx < r.LLx {
		r.LLx = o.LLx
	}
	if o.LLy < r.LLy {
		r.LLy = o.LLy
	}
	if o.URx > r.URx {
		r.URx = o.URx
	}
	if o.URy > r.URy {
		r.URy = o.URy
	}
	return r
}

// Word is a single extracted word and its bounding box.
type Word struct {
	Text string
	Box  Rect
}

// Line is one row of extracted text. Words are ordered left to right.
type Line struct {
	Words []Word
	Box   Rect
}

// Text returns the line's words joined by single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// wordGapFactor is the fraction of the font size beyond which a horizontal
// gap between glyph runs starts a new word.
const wordGapFactor = 0.3

// lineYTolerance reports how far two baselines may drift apart while still
// belonging to the same line.
func lineYTolerance(fontSize float64) float64 {
	tol := 0.5 * fontSize
	if tol < 1 {
		tol = 1
	}
	return tol
}

// BuildLines groups glyph runs into lines of words. The runs are the
// page's content-stream text as the extractor reports it: one run per
// glyph, carrying baseline X/Y, advance width W, and FontSize. Runs may
// arrive in any order; lines come back top to bottom, words left to
// right.
func BuildLines(frags []pdflib.Text) []Line {
	if len(frags) == 0 {
		return nil
	}
	sorted := append([]pdflib.Text(nil), frags...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	flushRow := func(row []pdflib.Text) {
		if line, ok := buildLine(row); ok {
			lines = append(lines, line)
		}
	}

	row := []pdflib.Text{sorted[0]}
	anchorY := sorted[0].Y
	for _, f := range sorted[1:] {
		if anchorY-f.Y > lineYTolerance(f.FontSize) {
			flushRow(row)
			row = nil
			anchorY = f.Y
		}
		row = append(row, f)
	}
	flushRow(row)
	return lines
}

func buildLine(row []pdflib.Text) (Line, bool) {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})
	words := groupWords(row)
	if len(words) == 0 {
		return Line{}, false
	}
	box := words[0].Box
	for _, w := range words[1:] {
		box = box.Union(w.Box)
	}
	return Line{Words: words, Box: box}, true
}

func groupWords(frags []pdflib.Text) []Word {
	var (
		words   []Word
		cur     strings.Builder
		curBox  Rect
		lastEnd float64
		open    bool
	)

	flush := func() {
		if !open {
			return
		}
		text := cur.String()
		if text != "" {
			words = append(words, Word{Text: text, Box: curBox})
		}
		cur.Reset()
		open = false
	}

	for _, f := range frags {
		if strings.TrimSpace(f.S) == "" {
			flush()
			continue
		}
		box := fragBox(f)
		if open && f.X-lastEnd > wordGapFactor*f.FontSize {
			flush()
		}
		if !open {
			curBox = box
			open = true
		} else {
			curBox = curBox.Union(box)
		}
		cur.WriteString(f.S)
		lastEnd = f.X + f.W
	}
	flush()
	return words
}

func fragBox(f pdflib.Text) Rect {
	return Rect{
		LLx: f.X,
		LLy: f.Y,
		URx: f.X + f.W,
		URy: f.Y + f.FontSize,
	}
}
