package engine

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/finrev/annotator/internal/annotate"
)

// StampText overlays the reviewer text stamp on every page of the
// inclusive range. The stamp is anchored top-right, right-aligned, and
// sized relative to the page per stamp.Scale. Pages are stamped one at
// a time so the corner inset tracks each page's own dimensions.
func (d *Document) StampText(firstPage, lastPage int, stamp annotate.TextStamp) error {
	for pageNr := firstPage; pageNr <= lastPage; pageNr++ {
		offX, offY := d.stampOffset(pageNr, stamp.OffsetFrac)
		desc := textStampDesc(stamp, offX, offY)

		wm, err := pdfcpu.ParseTextWatermarkDetails(stamp.Text, desc, true, types.POINTS)
		if err != nil {
			return fmt.Errorf("text stamp details: %w", err)
		}
		pages := []string{strconv.Itoa(pageNr)}
		if err := api.AddWatermarksFile(d.workPath, "", pages, wm, d.rt.conf); err != nil {
			return fmt.Errorf("apply text stamp to page %d: %w", pageNr, err)
		}
	}
	return nil
}

// StampImage overlays the image at path on every page of the inclusive
// range at the given opacity.
func (d *Document) StampImage(firstPage, lastPage int, path string, opacity float64) error {
	desc := fmt.Sprintf("scale:1.0 rel, pos:c, rot:0, op:%.2f", opacity)

	wm, err := pdfcpu.ParseImageWatermarkDetails(path, desc, true, types.POINTS)
	if err != nil {
		return fmt.Errorf("image stamp details: %w", err)
	}
	if err := api.AddWatermarksFile(d.workPath, "", pageRange(firstPage, lastPage), wm, d.rt.conf); err != nil {
		return fmt.Errorf("apply image stamp: %w", err)
	}
	return nil
}

// stampOffset converts the fractional corner inset into points, using the
// dimensions of the first stamped page.
func (d *Document) stampOffset(pageNr int, frac float64) (float64, float64) {
	if pageNr < 1 || pageNr > len(d.dims) {
		return 0, 0
	}
	dim := d.dims[pageNr-1]
	return frac * dim.Width, frac * dim.Height
}

func textStampDesc(stamp annotate.TextStamp, offX, offY float64) string {
	return fmt.Sprintf(
		"fontname:%s, scale:%.2f rel, pos:tr, off:%.1f %.1f, fillc:%s, align:right, rot:0, op:1",
		stamp.FontName, stamp.Scale, -offX, -offY, hexColor(stamp.Color),
	)
}

func pageRange(first, last int) []string {
	return []string{fmt.Sprintf("%d-%d", first, last)}
}

func hexColor(c annotate.Color) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}
