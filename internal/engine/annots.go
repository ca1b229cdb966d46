package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/finrev/annotator/internal/annotate"
	"github.com/finrev/annotator/internal/pagetext"
)

// AddLink appends a URI-action link annotation covering box on the given
// page. The annotation is never read back or mutated afterwards.
func (d *Document) AddLink(pageNr int, box pagetext.Rect, uri string, style annotate.LinkStyle) error {
	ann := model.NewLinkAnnotation(
		*annotRect(box),
		nil, // no quad points, the whole rect is active
		nil, // URI action, not an internal destination
		uri,
		uuid.NewString(),
		0,
		nil,
		style.BorderWidth > 0 || style.Underline,
	)
	ann.C = simpleColor(style.Color)

	if err := d.appendAnnotation(pageNr, ann); err != nil {
		return fmt.Errorf("link annotation: %w", err)
	}
	return nil
}

// AddNote appends a sticky-note annotation at box on the given page.
func (d *Document) AddNote(pageNr int, box pagetext.Rect, text string, style annotate.NoteStyle) error {
	ann := model.NewTextAnnotation(
		*annotRect(box),
		text,
		uuid.NewString(),
		"",
		0,
		simpleColor(style.Color),
		nil,
		"",
		"",
		style.Open,
		"Comment",
	)

	if err := d.appendAnnotation(pageNr, ann); err != nil {
		return fmt.Errorf("note annotation: %w", err)
	}
	return nil
}

func (d *Document) appendAnnotation(pageNr int, ann model.AnnotationRenderer) error {
	if pageNr < 1 || pageNr > d.pages {
		return fmt.Errorf("page %d out of range 1-%d", pageNr, d.pages)
	}
	pages := []string{strconv.Itoa(pageNr)}
	return api.AddAnnotationsFile(d.workPath, "", pages, ann, d.rt.conf, false)
}

func annotRect(box pagetext.Rect) *types.Rectangle {
	return types.NewRectangle(box.LLx, box.LLy, box.URx, box.URy)
}

func simpleColor(c annotate.Color) *color.SimpleColor {
	return &color.SimpleColor{R: c.R, G: c.G, B: c.B}
}
