package sdlhost

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the host draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func openWindow(title string, winOpts WindowOptions) (*Window, error) {
	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
		mode.W, mode.H = 1024, 768
	}

	width, height := mode.W, mode.H
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		width = envSize(constants.WindowWidthEnvVar, 1024)
		height = envSize(constants.WindowHeightEnvVar, 768)
	}

	internal.GetInternalLogger().Debug("Opening SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("sdlhost: create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v)
		return fallback
	}
	return int32(n)
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Present swaps the render buffer and paces frames when VSync is not
// available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.DefaultFrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
