package annotate

import (
	"fmt"
	"log/slog"
)

// Options collects the fixed inputs of one annotation run.
type Options struct {
	Stamp          TextStamp
	StampImagePath string
	StampOpacity   float64
	StampFirstPage int
	StampLastPage  int

	LinkRules []LinkRule
	LinkStyle LinkStyle

	NoteToken   string
	NoteMessage string
	NoteStyle   NoteStyle

	OutputPath string
}

// DefaultOptions returns the standard review markup for the given stamp
// image and output path.
func DefaultOptions(stampImagePath, outputPath string) Options {
	return Options{
		Stamp:          DefaultTextStamp,
		StampImagePath: stampImagePath,
		StampOpacity:   StampOpacity,
		StampFirstPage: StampFirstPage,
		StampLastPage:  StampLastPage,
		LinkRules:      DefaultLinkRules,
		LinkStyle:      DefaultLinkStyle,
		NoteToken:      NoteToken,
		NoteMessage:    NoteMessage,
		NoteStyle:      DefaultNoteStyle,
		OutputPath:     outputPath,
	}
}

// Annotator runs the annotation pipeline against one open document.
type Annotator struct {
	doc  Document
	opts Options
	log  *slog.Logger
}

// New creates an Annotator for doc.
func New(doc Document, opts Options, log *slog.Logger) *Annotator {
	return &Annotator{doc: doc, opts: opts, log: log}
}

// Run executes the stages in fixed order: stamps, keyword links, reviewer
// note, save. Stages run strictly sequentially and share no state beyond
// the document handle; the first error aborts the run and nothing is
// written to the output path.
func (a *Annotator) Run() error {
	if err := ApplyStamps(a.doc, a.opts.StampFirstPage, a.opts.StampLastPage, a.opts.Stamp, a.opts.StampImagePath, a.opts.StampOpacity); err != nil {
		return fmt.Errorf("stamp stage: %w", err)
	}
	a.log.Info("stamped pages", "first", a.opts.StampFirstPage, "last", a.opts.StampLastPage)

	links, err := AddKeywordLinks(a.doc, a.opts.LinkRules, a.opts.LinkStyle)
	if err != nil {
		return fmt.Errorf("link stage: %w", err)
	}
	a.log.Info("inserted keyword links", "count", links)

	noted, err := AddReviewNote(a.doc, a.opts.NoteToken, a.opts.NoteMessage, a.opts.NoteStyle)
	if err != nil {
		return fmt.Errorf("note stage: %w", err)
	}
	a.log.Info("review note", "placed", noted)

	if err := a.doc.SaveOptimized(a.opts.OutputPath); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
