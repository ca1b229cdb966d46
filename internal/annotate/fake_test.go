package annotate

import (
	"fmt"
	"iter"
	"strings"

	"github.com/finrev/annotator/internal/pagetext"
)

type textStampCall struct {
	first, last int
	stamp       TextStamp
}

type imageStampCall struct {
	first, last int
	path        string
	opacity     float64
}

type linkCall struct {
	pageNr int
	box    pagetext.Rect
	uri    string
	style  LinkStyle
}

type noteCall struct {
	pageNr int
	box    pagetext.Rect
	text   string
	style  NoteStyle
}

// fakeDoc implements Document in memory and records every mutation in
// call order.
type fakeDoc struct {
	pages [][]pagetext.Line // pages[i] holds the lines of page i+1

	calls       []string
	textStamps  []textStampCall
	imageStamps []imageStampCall
	links       []linkCall
	notes       []noteCall
	savedTo     string

	failOn string // method name that should return an error
}

func (f *fakeDoc) fail(method string) error {
	if f.failOn == method {
		return fmt.Errorf("%s: induced failure", method)
	}
	return nil
}

func (f *fakeDoc) PageCount() int { return len(f.pages) }

func (f *fakeDoc) LinesForPage(pageNr int) (iter.Seq[pagetext.Line], error) {
	if err := f.fail("LinesForPage"); err != nil {
		return nil, err
	}
	if pageNr < 1 || pageNr > len(f.pages) {
		return nil, fmt.Errorf("page %d out of range", pageNr)
	}
	lines := f.pages[pageNr-1]
	return func(yield func(pagetext.Line) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}, nil
}

func (f *fakeDoc) StampText(first, last int, stamp TextStamp) error {
	if err := f.fail("StampText"); err != nil {
		return err
	}
	f.calls = append(f.calls, "StampText")
	f.textStamps = append(f.textStamps, textStampCall{first, last, stamp})
	return nil
}

func (f *fakeDoc) StampImage(first, last int, path string, opacity float64) error {
	if err := f.fail("StampImage"); err != nil {
		return err
	}
	f.calls = append(f.calls, "StampImage")
	f.imageStamps = append(f.imageStamps, imageStampCall{first, last, path, opacity})
	return nil
}

func (f *fakeDoc) AddLink(pageNr int, box pagetext.Rect, uri string, style LinkStyle) error {
	if err := f.fail("AddLink"); err != nil {
		return err
	}
	f.calls = append(f.calls, "AddLink")
	f.links = append(f.links, linkCall{pageNr, box, uri, style})
	return nil
}

func (f *fakeDoc) AddNote(pageNr int, box pagetext.Rect, text string, style NoteStyle) error {
	if err := f.fail("AddNote"); err != nil {
		return err
	}
	f.calls = append(f.calls, "AddNote")
	f.notes = append(f.notes, noteCall{pageNr, box, text, style})
	return nil
}

func (f *fakeDoc) SaveOptimized(path string) error {
	if err := f.fail("SaveOptimized"); err != nil {
		return err
	}
	f.calls = append(f.calls, "SaveOptimized")
	f.savedTo = path
	return nil
}

// lineOf builds a line from words laid out left to right starting at x,
// 40 units apart, on the given baseline.
func lineOf(baseline float64, words ...string) pagetext.Line {
	x := 50.0
	var built []pagetext.Word
	for _, w := range words {
		built = append(built, pagetext.Word{
			Text: w,
			Box: pagetext.Rect{
				LLx: x, LLy: baseline,
				URx: x + 30, URy: baseline + 12,
			},
		})
		x += 40
	}
	line := pagetext.Line{Words: built}
	if len(built) > 0 {
		line.Box = built[0].Box
		for _, w := range built[1:] {
			line.Box = line.Box.Union(w.Box)
		}
	}
	return line
}

// lineFromText splits text on spaces into one word per token.
func lineFromText(baseline float64, text string) pagetext.Line {
	return lineOf(baseline, strings.Fields(text)...)
}
