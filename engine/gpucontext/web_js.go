//go:build js

package gpucontext

import (
	"errors"
	"syscall/js"
)

// CreateGLContext gets a WebGL2 context from canvas, falling back to WebGL.
func CreateGLContext(canvas js.Value, antialias, transparent bool) (js.Value, string, error) {
	return Negotiate(canvas, antialias, transparent,
		Tier[js.Value, js.Value]{Name: TierWebGL2, Acquire: webContext(TierWebGL2)},
		Tier[js.Value, js.Value]{Name: TierWebGL, Acquire: webContext(TierWebGL)},
	)
}

func webContext(name string) func(js.Value, Attributes) (js.Value, error) {
	return func(canvas js.Value, attrs Attributes) (ctx js.Value, err error) {
		defer func() {
			// getContext throws on detached or invalid canvases.
			if r := recover(); r != nil {
				err = errors.New("getContext threw an exception")
			}
		}()
		ctx = canvas.Call("getContext", name, attrs.jsValue())
		if ctx.IsNull() || ctx.IsUndefined() {
			return js.Null(), errors.New("context not supported by the browser")
		}
		return ctx, nil
	}
}

func (a Attributes) jsValue() js.Value {
	return js.ValueOf(map[string]any{
		"alpha":              a.Alpha,
		"antialias":          a.Antialias,
		"stencil":            a.Stencil,
		"premultipliedAlpha": a.PremultipliedAlpha,
	})
}
