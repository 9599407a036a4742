package engine

import (
	"github.com/spaghettifunk/anima-backends/engine/audio"
	"github.com/spaghettifunk/anima-backends/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func(r *renderer.Renderer, a *audio.Shared) error
type Update func(deltaTime float64) error
type Render func(r *renderer.Renderer, deltaTime float64) error
type OnResize func(width int32, height int32) error
type Shutdown func() error
