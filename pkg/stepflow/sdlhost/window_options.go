package sdlhost

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags. The zero value picks defaults in
// New: resizable, plus borderless in dev mode.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	Maximized         bool // SDL_WINDOW_MAXIMIZED
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}

	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	if wo.Maximized {
		flags |= sdl.WINDOW_MAXIMIZED
	}

	return flags
}
