package engine

import (
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/finrev/annotator/internal/pagetext"
)

// Document is one open PDF. Mutations (stamps, annotations) are applied
// to a private working copy; the original file is read only for text
// geometry. The document is exclusively owned by its opener and must be
// closed on every exit path.
type Document struct {
	rt       *Runtime
	srcPath  string
	workPath string
	pages    int
	dims     []types.Dim

	textFile   *os.File
	textReader *pdflib.Reader
}

// Open validates the file at path and prepares a working copy for
// mutation.
func (rt *Runtime) Open(path string) (*Document, error) {
	if err := api.ValidateFile(path, rt.conf); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("page count %s: %w", path, err)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("page dimensions %s: %w", path, err)
	}

	workPath := filepath.Join(rt.workDir, filepath.Base(path))
	if err := copyFile(path, workPath); err != nil {
		return nil, fmt.Errorf("working copy: %w", err)
	}

	return &Document{
		rt:       rt,
		srcPath:  path,
		workPath: workPath,
		pages:    pages,
		dims:     dims,
	}, nil
}

// PageCount reports the number of pages.
func (d *Document) PageCount() int {
	return d.pages
}

// LinesForPage yields the page's text lines top to bottom as a lazy,
// forward-only sequence. Page numbers are 1-based.
func (d *Document) LinesForPage(pageNr int) (iter.Seq[pagetext.Line], error) {
	if pageNr < 1 || pageNr > d.pages {
		return nil, fmt.Errorf("page %d out of range 1-%d", pageNr, d.pages)
	}
	if err := d.ensureTextReader(); err != nil {
		return nil, err
	}

	page := d.textReader.Page(pageNr)
	if page.V.IsNull() {
		return lineSeq(nil), nil
	}
	frags, err := pageText(page)
	if err != nil {
		return nil, fmt.Errorf("extract page %d: %w", pageNr, err)
	}
	return lineSeq(pagetext.BuildLines(frags)), nil
}

// pageText collects the page's glyph runs, one per character with
// baseline position, advance width, and font size. The extractor panics
// on malformed content streams; that surfaces here as an error.
func pageText(page pdflib.Page) (frags []pdflib.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed content stream: %v", r)
		}
	}()
	return page.Content().Text, nil
}

func lineSeq(lines []pagetext.Line) iter.Seq[pagetext.Line] {
	return func(yield func(pagetext.Line) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

func (d *Document) ensureTextReader() error {
	if d.textReader != nil {
		return nil
	}
	f, r, err := pdflib.Open(d.srcPath)
	if err != nil {
		return fmt.Errorf("open for extraction: %w", err)
	}
	d.textFile = f
	d.textReader = r
	return nil
}

// SaveOptimized writes the mutated document to path, optimized for fast
// initial rendering.
func (d *Document) SaveOptimized(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
	}
	if err := api.OptimizeFile(d.workPath, path, d.rt.conf); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Close releases the extraction reader and the working copy. Safe to call
// after a failed run.
func (d *Document) Close() error {
	var first error
	if d.textFile != nil {
		if err := d.textFile.Close(); err != nil {
			first = err
		}
		d.textFile = nil
		d.textReader = nil
	}
	if err := os.Remove(d.workPath); err != nil && !os.IsNotExist(err) && first == nil {
		first = err
	}
	return first
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
