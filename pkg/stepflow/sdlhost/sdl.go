package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func initSDL() ([]*sdl.GameController, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("sdlhost: init sdl: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: init ttf: %w", err)
	}
	return openControllers(), nil
}

// openControllers opens every attached game controller so its button events
// reach the event loop.
func openControllers() []*sdl.GameController {
	var controllers []*sdl.GameController
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			controllers = append(controllers, c)
		}
	}
	return controllers
}

func quitSDL(controllers []*sdl.GameController) {
	for _, c := range controllers {
		c.Close()
	}
	ttf.Quit()
	sdl.Quit()
}
