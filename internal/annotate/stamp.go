package annotate

import "fmt"

// ApplyStamps overlays the reviewer text stamp and the image stamp on the
// inclusive page range. The two stamps are independent; if the second one
// fails after the first succeeded there is no rollback.
func ApplyStamps(doc Document, firstPage, lastPage int, stamp TextStamp, imagePath string, opacity float64) error {
	if firstPage < 1 || lastPage < firstPage {
		return fmt.Errorf("invalid stamp page range %d-%d", firstPage, lastPage)
	}
	if lastPage > doc.PageCount() {
		return fmt.Errorf("stamp page range %d-%d exceeds page count %d", firstPage, lastPage, doc.PageCount())
	}

	if err := doc.StampText(firstPage, lastPage, stamp); err != nil {
		return fmt.Errorf("text stamp: %w", err)
	}
	if err := doc.StampImage(firstPage, lastPage, imagePath, opacity); err != nil {
		return fmt.Errorf("image stamp: %w", err)
	}
	return nil
}
