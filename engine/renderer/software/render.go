package software

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/spaghettifunk/anima-backends/engine/renderer/metadata"
)

// pass is the state a command batch builds up while it executes.
type pass struct {
	target   metadata.ResourceID
	pipeline *pipeline
	buffers  []metadata.ResourceID
	textures map[uint32]metadata.ResourceID
	viewport metadata.Viewport
	scissors *metadata.Scissors
	begun    bool
}

func (d *Device) Render(commands []metadata.Command, target metadata.ResourceID) {
	if target != metadata.DefaultFramebuffer {
		if _, ok := d.renderTextures[target]; !ok {
			d.fail(fmt.Errorf("%w: render target %d", core.ErrInvalidHandle, target))
			return
		}
	}

	p := &pass{
		target:   target,
		textures: make(map[uint32]metadata.ResourceID),
	}
	for _, cmd := range commands {
		if err := d.execute(p, cmd); err != nil {
			d.fail(err)
			continue
		}
		d.stats.Commands++
	}
}

func (d *Device) fail(err error) {
	d.stats.Errors++
	core.LogError("software device: %s", err)
}

func (d *Device) execute(p *pass, cmd metadata.Command) error {
	switch c := cmd.(type) {
	case metadata.Begin:
		p.begun = true
		d.clearTarget(p.target, c.Clear)
	case metadata.End:
		if !p.begun {
			return errors.New("end without begin")
		}
		p.begun = false
		p.pipeline = nil
		p.buffers = p.buffers[:0]
		clear(p.textures)
	case metadata.Pipeline:
		pip, ok := d.pipelines[c.ID]
		if !ok {
			return fmt.Errorf("%w: pipeline %d", core.ErrInvalidHandle, c.ID)
		}
		p.pipeline = pip
	case metadata.BindBuffer:
		if _, ok := d.buffers[c.ID]; !ok {
			return fmt.Errorf("%w: buffer %d", core.ErrInvalidHandle, c.ID)
		}
		p.buffers = append(p.buffers, c.ID)
	case metadata.BindTexture:
		if _, ok := d.textures[c.ID]; !ok {
			return fmt.Errorf("%w: texture %d", core.ErrInvalidHandle, c.ID)
		}
		p.textures[c.Slot] = c.ID
	case metadata.Size:
		return d.resize(c.Width, c.Height, d.dpi)
	case metadata.Viewport:
		p.viewport = c
	case metadata.Scissors:
		s := c
		p.scissors = &s
	case metadata.Draw:
		if err := d.checkDraw(p, c.Count); err != nil {
			return err
		}
		d.stats.Draws++
	case metadata.DrawInstanced:
		if c.Length <= 0 {
			return fmt.Errorf("instanced draw with %d instances", c.Length)
		}
		if err := d.checkDraw(p, c.Count); err != nil {
			return err
		}
		d.stats.Draws++
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}

func (d *Device) checkDraw(p *pass, count int32) error {
	if p.pipeline == nil {
		return errors.New("draw without a pipeline")
	}
	if count < 0 {
		return fmt.Errorf("draw with negative count %d", count)
	}
	return nil
}

func (d *Device) clearTarget(target metadata.ResourceID, opts metadata.ClearOptions) {
	if target == metadata.DefaultFramebuffer {
		if opts.Color != nil {
			fillRGBA(d.framebuffer, *opts.Color)
		}
		return
	}
	rt := d.renderTextures[target]
	if t, ok := d.textures[rt.texture]; ok {
		t.clear(opts)
	}
}
