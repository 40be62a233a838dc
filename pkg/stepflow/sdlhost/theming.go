package sdlhost

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines how the host draws cards.
type Theme struct {
	BackgroundColor sdl.Color // Screen background
	CardColor       sdl.Color // Card fill
	TextColor       sdl.Color // Titles and body text
	HintColor       sdl.Color // Header progress label and footer hint
	AccentColor     sdl.Color // Completed progress dots
	MutedColor      sdl.Color // Pending progress dots
	FontPath        string    // TTF font for all text
	TitleFontSize   int
	BodyFontSize    int
	Padding         Padding // Space between the card edge and its content
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{Top: value, Right: value, Bottom: value, Left: value}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// rgba converts an SDL color for the image-based renderers.
func rgba(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
