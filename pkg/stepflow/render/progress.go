// Package render rasterizes the vector glyphs stepflow hosts draw, such as
// the progress dots shown on each screen.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ProgressSVG returns an SVG document with one dot per step, the first done
// of them filled with on and the rest with off.
func ProgressSVG(done, total int, on, off color.Color) (string, error) {
	if total < 1 {
		return "", fmt.Errorf("render: progress needs at least one step, got %d", total)
	}
	done = max(0, min(done, total))

	// Each dot is a unit circle centred in a 3x3 cell.
	const cell = 3
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, total*cell, cell)
	for i := 0; i < total; i++ {
		fill := off
		if i < done {
			fill = on
		}
		fmt.Fprintf(&sb, `<circle cx="%d.5" cy="1.5" r="1" fill="%s"/>`, i*cell+1, hex(fill))
	}
	sb.WriteString(`</svg>`)
	return sb.String(), nil
}

// ProgressDots rasterizes ProgressSVG into an image height pixels tall.
func ProgressDots(done, total, height int, on, off color.Color) (*image.RGBA, error) {
	if height < 1 {
		return nil, fmt.Errorf("render: invalid height %d", height)
	}

	doc, err := ProgressSVG(done, total, on, off)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("render: parse progress svg: %w", err)
	}

	width := height * total
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
