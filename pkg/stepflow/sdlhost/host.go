// Package sdlhost shows a stepflow sequence in an SDL window. It implements
// the stepflow Window, Navigator and Presenter interfaces on top of a simple
// screen stack and runs the coordinator's queue from its frame loop.
package sdlhost

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/internal"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/locale"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures the host.
type Options struct {
	Title         string        // Window title
	WindowOptions WindowOptions // SDL window flags
	Theme         Theme         // Defaults to DarkTheme(DefaultFontPath)
	Locale        string        // BCP 47 tag; defaults to STEPFLOW_LOCALE, then English
	Navigation    bool          // Push screens onto a navigation root instead of presenting them modally
}

// Key is an input the host forwards to the top screen.
type Key int

const (
	KeyNone    Key = iota
	KeyConfirm     // Return, Space, A on keyboard; A or Start on a controller
	KeyBack        // Escape, Backspace, B on keyboard; B on a controller
)

// View is a screen the host knows how to draw. Screens that don't implement
// View are shown as an empty frame.
type View interface {
	stepflow.Screen
	// Shown is called when the screen becomes the top of the stack.
	Shown()
	// Render draws one frame.
	Render(f *Frame)
	// HandleKey receives input while the screen is on top.
	HandleKey(k Key)
}

// Host owns the SDL window and the coordinator driving it.
type Host struct {
	window      *Window
	controllers []*sdl.GameController
	theme       Theme
	fonts       map[int]*ttf.Font
	textures    *TextureCache
	localizer   *locale.Localizer

	queue       *stepflow.Queue
	coordinator *stepflow.Coordinator

	stack      *Stack
	navigation bool
	lastInput  time.Time
}

// New initializes SDL, opens the window and creates a coordinator that
// presents on it. Call Close when done.
func New(options Options) (*Host, error) {
	controllers, err := initSDL()
	if err != nil {
		return nil, err
	}

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true, Borderless: constants.IsDevMode()}
	}

	window, err := openWindow(options.Title, winOpts)
	if err != nil {
		quitSDL(controllers)
		return nil, err
	}

	theme := options.Theme
	if theme.FontPath == "" {
		theme = DarkTheme(DefaultFontPath)
	}

	lang := options.Locale
	if lang == "" {
		lang = os.Getenv(constants.LocaleEnvVar)
	}

	h := &Host{
		window:      window,
		controllers: controllers,
		theme:       theme,
		fonts:       make(map[int]*ttf.Font),
		textures:    NewTextureCache(),
		localizer:   locale.New(lang),
		queue:       stepflow.NewQueue(),
		stack:       NewStack(),
		navigation:  options.Navigation,
	}

	if !h.navigation {
		// A modal flow needs something on screen to present from.
		h.stack.Push(&launchScreen{host: h}, false)
	}

	h.coordinator = stepflow.NewCoordinator(h, stepflow.WithDispatcher(h.queue))
	return h, nil
}

// Coordinator returns the coordinator presenting on this host.
func (h *Host) Coordinator() *stepflow.Coordinator {
	return h.coordinator
}

// Localizer returns the localizer used for on-screen labels.
func (h *Host) Localizer() *locale.Localizer {
	return h.localizer
}

// Theme returns the active theme.
func (h *Host) Theme() Theme {
	return h.theme
}

// Root implements stepflow.Window.
func (h *Host) Root() any {
	if h.navigation {
		return (*navigator)(h)
	}
	if top := h.stack.Peek(); top != nil {
		return top.Screen
	}
	return nil
}

// SetRoot implements stepflow.Window.
func (h *Host) SetRoot(screen stepflow.Screen) {
	h.stack.Reset(screen)
	h.show(screen)
}

func (h *Host) present(screen stepflow.Screen) {
	h.stack.Push(screen, true)
	h.show(screen)
}

func (h *Host) show(screen stepflow.Screen) {
	internal.GetInternalLogger().Debug("Showing screen", "depth", h.stack.Len(), "type", fmt.Sprintf("%T", screen))
	if v, ok := screen.(View); ok {
		v.Shown()
	}
}

// navigator is the push-style root used in navigation mode.
type navigator Host

func (n *navigator) SetScreens(screens ...stepflow.Screen) {
	h := (*Host)(n)
	h.stack.Reset(screens...)
	if top := h.stack.Peek(); top != nil {
		h.show(top.Screen)
	}
}

func (n *navigator) Push(screen stepflow.Screen) {
	h := (*Host)(n)
	h.stack.Push(screen, false)
	h.show(screen)
}

// Run drives the frame loop until ctx is done, the window is closed, or the
// user confirms the completion screen shown after the last state.
func (h *Host) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}

			key := keyFromEvent(event)
			if key == KeyNone || time.Since(h.lastInput) < constants.DefaultInputDelay {
				continue
			}
			h.lastInput = time.Now()

			if h.coordinator.Finished() {
				return nil
			}
			if top := h.stack.Peek(); top != nil {
				if v, ok := top.Screen.(View); ok {
					v.HandleKey(key)
				}
			}
		}

		h.queue.Drain()
		h.render()
	}
}

func (h *Host) render() {
	renderer := h.window.Renderer
	bg := h.theme.BackgroundColor
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	frame := &Frame{host: h, renderer: renderer, Width: h.window.GetWidth(), Height: h.window.GetHeight()}

	if h.coordinator.Finished() {
		frame.Text(h.localizer.FlowComplete(), h.theme.TitleFontSize, h.theme.TextColor, frame.Width/2, frame.Height/2, constants.TextAlignCenter)
	} else if top := h.stack.Peek(); top != nil {
		if below := h.stack.Below(); top.Modal && below != nil {
			renderView(below.Screen, frame)
			frame.Fill(sdl.Rect{W: frame.Width, H: frame.Height}, modalScrim)
		}
		renderView(top.Screen, frame)
	}

	h.window.Present()
}

// modalScrim dims the screen under a modal one.
var modalScrim = sdl.Color{A: 160}

func renderView(screen stepflow.Screen, f *Frame) {
	if v, ok := screen.(View); ok {
		v.Render(f)
	}
}

// Close releases fonts, textures, the window and SDL itself.
func (h *Host) Close() {
	h.textures.Destroy()
	for _, font := range h.fonts {
		font.Close()
	}
	h.window.close()
	quitSDL(h.controllers)
}

func (h *Host) font(size int) (*ttf.Font, error) {
	if font, ok := h.fonts[size]; ok {
		return font, nil
	}
	font, err := ttf.OpenFont(h.theme.FontPath, size)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: open font %s: %w", h.theme.FontPath, err)
	}
	h.fonts[size] = font
	return font, nil
}

func keyFromEvent(event sdl.Event) Key {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return KeyNone
		}
		switch e.Keysym.Sym {
		case sdl.K_RETURN, sdl.K_SPACE, sdl.K_a:
			return KeyConfirm
		case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
			return KeyBack
		}
	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return KeyNone
		}
		switch e.Button {
		case sdl.CONTROLLER_BUTTON_A, sdl.CONTROLLER_BUTTON_START:
			return KeyConfirm
		case sdl.CONTROLLER_BUTTON_B:
			return KeyBack
		}
	}
	return KeyNone
}

// launchScreen is the placeholder root in modal mode until the sequence
// installs its first screen.
type launchScreen struct {
	host *Host
}

func (l *launchScreen) BindState(stepflow.Handle) {}
func (l *launchScreen) Shown()                    {}
func (l *launchScreen) Render(*Frame)             {}
func (l *launchScreen) HandleKey(Key)             {}

func (l *launchScreen) Present(screen stepflow.Screen) {
	l.host.present(screen)
}
