// Package annotate implements the review-markup stages applied to a
// financial report: stamps, keyword links, and a single reviewer note.
package annotate

import (
	"iter"

	"github.com/finrev/annotator/internal/pagetext"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

var (
	Red    = Color{R: 0.86, G: 0.08, B: 0.08}
	Blue   = Color{B: 1}
	Yellow = Color{R: 1, G: 1}
)

// TextStamp describes the text overlay applied by the stamp stage.
// The stamp is anchored to the top-right corner of each page and its text
// is right-aligned.
type TextStamp struct {
	Text     string
	FontName string
	// Scale is the stamp size relative to the page (0.25 = 25%).
	Scale float64
	// OffsetFrac is the inset from the anchored corner as a fraction of
	// the page dimensions.
	OffsetFrac float64
	Color      Color
}

// LinkStyle describes the visual treatment of inserted link annotations.
type LinkStyle struct {
	Color       Color
	BorderWidth float64
	Underline   bool
}

// NoteStyle describes the visual treatment of the sticky note.
type NoteStyle struct {
	Color Color
	Open  bool
}

// Document is the contract the stages require from the PDF engine.
// Annotations are append-only; nothing is ever read back or mutated after
// creation.
type Document interface {
	// PageCount reports the number of pages in the document.
	PageCount() int

	// LinesForPage yields the page's text lines top to bottom. The
	// sequence is lazy and forward-only; each call produces a fresh
	// traversal.
	LinesForPage(pageNr int) (iter.Seq[pagetext.Line], error)

	// StampText overlays a text stamp on every page of the inclusive
	// range.
	StampText(firstPage, lastPage int, stamp TextStamp) error

	// StampImage overlays the image at path on every page of the
	// inclusive range at the given opacity.
	StampImage(firstPage, lastPage int, path string, opacity float64) error

	// AddLink appends a URI-action link annotation covering box.
	AddLink(pageNr int, box pagetext.Rect, uri string, style LinkStyle) error

	// AddNote appends a sticky-note annotation at box.
	AddNote(pageNr int, box pagetext.Rect, text string, style NoteStyle) error

	// SaveOptimized persists the mutated document to path with a layout
	// optimized for fast initial rendering.
	SaveOptimized(path string) error
}
