package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	gray = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

func TestProgressSVG(t *testing.T) {
	doc, err := ProgressSVG(1, 2, red, gray)
	require.NoError(t, err)

	assert.Contains(t, doc, `viewBox="0 0 6 3"`)
	assert.Contains(t, doc, `<circle cx="1.5" cy="1.5" r="1" fill="#ff0000"/>`)
	assert.Contains(t, doc, `<circle cx="4.5" cy="1.5" r="1" fill="#808080"/>`)
}

func TestProgressSVGClampsDone(t *testing.T) {
	doc, err := ProgressSVG(7, 2, red, gray)
	require.NoError(t, err)
	assert.NotContains(t, doc, "#808080")

	doc, err = ProgressSVG(-1, 2, red, gray)
	require.NoError(t, err)
	assert.NotContains(t, doc, "#ff0000")
}

func TestProgressSVGNeedsSteps(t *testing.T) {
	_, err := ProgressSVG(0, 0, red, gray)
	assert.Error(t, err)
}

func TestProgressDotsRasterizes(t *testing.T) {
	const h = 30
	img, err := ProgressDots(1, 3, h, red, gray)
	require.NoError(t, err)

	assert.Equal(t, 3*h, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	assert.Equal(t, red, img.RGBAAt(h/2, h/2))
	assert.Equal(t, gray, img.RGBAAt(h+h/2, h/2))
	assert.Equal(t, uint8(0), img.RGBAAt(h-1, h/2).A, "gap between dots stays transparent")
}

func TestProgressDotsInvalidHeight(t *testing.T) {
	_, err := ProgressDots(0, 1, 0, red, gray)
	assert.Error(t, err)
}
