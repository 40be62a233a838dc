package sdlhost

import (
	"github.com/BrandonKowalski/stepflow/pkg/stepflow"
	"github.com/BrandonKowalski/stepflow/pkg/stepflow/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// StepConfirmed is reported by a Card when the user presses confirm.
const StepConfirmed = "confirmed"

// Card is a full-screen panel with a title and body. It reports viewDidLoad
// when shown, viewDidAppear after its first frame, and "confirmed" on every
// confirm key press.
type Card struct {
	Title string
	Body  string
	Hint  bool // Show the "press to continue" footer

	host     *Host
	state    stepflow.Handle
	appeared bool
}

// NewCard creates a card drawn by host.
func NewCard(host *Host, title, body string) *Card {
	return &Card{Title: title, Body: body, host: host}
}

func (c *Card) BindState(h stepflow.Handle) {
	c.state = h
}

func (c *Card) Shown() {
	c.state.StepAt(constants.StepViewDidLoad)
}

func (c *Card) HandleKey(k Key) {
	if k == KeyConfirm {
		c.state.Step(StepConfirmed)
	}
}

// Present shows screen modally over the card.
func (c *Card) Present(screen stepflow.Screen) {
	c.host.present(screen)
}

func (c *Card) Render(f *Frame) {
	theme := f.Host().Theme()
	pad := theme.Padding

	f.Fill(sdl.Rect{
		X: pad.Left,
		Y: pad.Top,
		W: f.Width - pad.Left - pad.Right,
		H: f.Height - pad.Top - pad.Bottom,
	}, theme.CardColor)

	y := pad.Top * 2
	coord := f.Host().Coordinator()
	if n := coord.Len(); n > 0 {
		pos := min(coord.Position(), n-1)
		y += f.Text(f.Host().Localizer().StepProgress(pos+1, n), theme.BodyFontSize, theme.HintColor, f.Width/2, y, constants.TextAlignCenter)
		y += pad.Top / 2
		f.ProgressDots(pos+1, n, int32(theme.BodyFontSize/2), y)
		y += int32(theme.BodyFontSize/2) + pad.Top
	}

	y += f.Text(c.Title, theme.TitleFontSize, theme.TextColor, f.Width/2, y, constants.TextAlignCenter)
	y += pad.Top / 2
	f.Text(c.Body, theme.BodyFontSize, theme.TextColor, f.Width/2, y, constants.TextAlignCenter)

	if c.Hint {
		hint := f.Host().Localizer().PressToContinue()
		f.Text(hint, theme.BodyFontSize, theme.HintColor, f.Width/2, f.Height-pad.Bottom*2-int32(theme.BodyFontSize), constants.TextAlignCenter)
	}

	if !c.appeared {
		c.appeared = true
		c.state.StepAt(constants.StepViewDidAppear)
	}
}
