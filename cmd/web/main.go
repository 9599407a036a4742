//go:build js

// Command web negotiates a WebGL context on a page canvas and clears it
// with the configured color.
package main

import (
	"syscall/js"

	"github.com/spaghettifunk/anima-backends/engine/config"
	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/gpucontext"
)

const (
	glColorBufferBit = 0x4000
	canvasID         = "anima"
)

func main() {
	cfg := config.Default()
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		core.LogFatal("%s", err)
	}

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", canvasID)
	if canvas.IsNull() {
		canvas = document.Call("createElement", "canvas")
		canvas.Set("id", canvasID)
		document.Get("body").Call("appendChild", canvas)
	}
	dpr := js.Global().Get("devicePixelRatio").Float()
	canvas.Set("width", int(float64(cfg.Window.Width)*dpr))
	canvas.Set("height", int(float64(cfg.Window.Height)*dpr))

	gl, tier, err := gpucontext.CreateGLContext(canvas, cfg.Window.Antialias, cfg.Window.Transparent)
	if err != nil {
		core.LogError("no usable WebGL context: %s", err)
		return
	}
	core.LogInfo("rendering with %s", tier)

	c := cfg.Graphics.ClearColor
	gl.Call("clearColor", c[0], c[1], c[2], c[3])
	gl.Call("clear", glColorBufferBit)
}
