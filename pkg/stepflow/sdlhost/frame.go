package sdlhost

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/render"
	"github.com/veandco/go-sdl2/sdl"
)

// Frame is what a View draws into for one frame.
type Frame struct {
	host     *Host
	renderer *sdl.Renderer
	Width    int32
	Height   int32
}

// Host returns the host being drawn.
func (f *Frame) Host() *Host {
	return f.host
}

// Fill draws a solid rectangle.
func (f *Frame) Fill(rect sdl.Rect, c sdl.Color) {
	f.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	f.renderer.FillRect(&rect)
}

// Text draws a single line anchored at (x, y) and returns its height. x is
// the left edge, center or right edge depending on align.
func (f *Frame) Text(text string, size int, c sdl.Color, x, y int32, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}

	key := fmt.Sprintf("text:%d:%02x%02x%02x%02x:%s", size, c.R, c.G, c.B, c.A, text)
	texture, w, h, err := f.host.textures.GetOrCreate(key, func() (*sdl.Texture, int32, int32, error) {
		font, err := f.host.font(size)
		if err != nil {
			return nil, 0, 0, err
		}

		surface, err := font.RenderUTF8Blended(text, c)
		if err != nil {
			return nil, 0, 0, err
		}
		defer surface.Free()

		texture, err := f.renderer.CreateTextureFromSurface(surface)
		if err != nil {
			return nil, 0, 0, err
		}
		return texture, surface.W, surface.H, nil
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}

	f.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return h
}

// ProgressDots draws a centered row of dots, done of total filled.
func (f *Frame) ProgressDots(done, total int, height int32, y int32) {
	if total < 1 {
		return
	}

	theme := f.host.theme
	key := fmt.Sprintf("dots:%d/%d@%d", done, total, height)
	texture, w, h, err := f.host.textures.GetOrCreate(key, func() (*sdl.Texture, int32, int32, error) {
		img, err := render.ProgressDots(done, total, int(height), rgba(theme.AccentColor), rgba(theme.MutedColor))
		if err != nil {
			return nil, 0, 0, err
		}
		texture, err := textureFromImage(f.renderer, img)
		if err != nil {
			return nil, 0, 0, err
		}
		return texture, int32(img.Rect.Dx()), int32(img.Rect.Dy()), nil
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render progress", "error", err)
		return
	}

	f.renderer.Copy(texture, nil, &sdl.Rect{X: (f.Width - w) / 2, Y: y, W: w, H: h})
}

func textureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("sdlhost: lock surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		copy(pixels[y*int(surface.Pitch):], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
