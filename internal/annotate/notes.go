package annotate

import "fmt"

// AddReviewNote scans pages, lines, and words in document order for the
// first word exactly equal to token (substrings do not count, unlike the
// link stage) and appends a sticky note at that word's box shifted
// NoteShiftX units to the right. The first match ends the whole scan; at
// most one note is created per run. Returns whether a note was placed.
func AddReviewNote(doc Document, token, message string, style NoteStyle) (bool, error) {
	for pageNr := 1; pageNr <= doc.PageCount(); pageNr++ {
		lines, err := doc.LinesForPage(pageNr)
		if err != nil {
			return false, fmt.Errorf("page %d: %w", pageNr, err)
		}
		for line := range lines {
			for _, word := range line.Words {
				if word.Text != token {
					continue
				}
				box := word.Box
				box.LLx += NoteShiftX
				box.URx += NoteShiftX
				if err := doc.AddNote(pageNr, box, message, style); err != nil {
					return false, fmt.Errorf("page %d: note: %w", pageNr, err)
				}
				return true, nil
			}
		}
	}
	return false, nil
}
