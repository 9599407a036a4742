package gpucontext

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/anima-backends/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCanvas struct {
	supported map[string]bool
	seen      []Attributes
}

func (c *fakeCanvas) tier(name string) Tier[*fakeCanvas, string] {
	return Tier[*fakeCanvas, string]{
		Name: name,
		Acquire: func(canvas *fakeCanvas, attrs Attributes) (string, error) {
			canvas.seen = append(canvas.seen, attrs)
			if !canvas.supported[name] {
				return "", errors.New("unsupported")
			}
			return name + "-context", nil
		},
	}
}

func TestNegotiatePrefersFirstTier(t *testing.T) {
	c := &fakeCanvas{supported: map[string]bool{TierWebGL2: true, TierWebGL: true}}
	ctx, name, err := Negotiate(c, true, false, c.tier(TierWebGL2), c.tier(TierWebGL))
	require.NoError(t, err)
	assert.Equal(t, TierWebGL2, name)
	assert.Equal(t, "webgl2-context", ctx)
	assert.Len(t, c.seen, 1)
}

func TestNegotiateFallsBackToLowerTier(t *testing.T) {
	c := &fakeCanvas{supported: map[string]bool{TierOpenGL21: true}}
	ctx, name, err := Negotiate(c, false, true, c.tier(TierOpenGL33), c.tier(TierOpenGL21))
	require.NoError(t, err)
	assert.Equal(t, TierOpenGL21, name)
	assert.Equal(t, "opengl2.1-context", ctx)

	require.Len(t, c.seen, 2)
	assert.Equal(t, Attributes{Alpha: true, Stencil: true}, c.seen[1])
}

func TestNegotiateFailsWhenNoTierWorks(t *testing.T) {
	c := &fakeCanvas{}
	ctx, name, err := Negotiate(c, true, true, c.tier(TierWebGL2), c.tier(TierWebGL))
	assert.ErrorIs(t, err, core.ErrContextUnavailable)
	assert.ErrorContains(t, err, "webgl2: unsupported")
	assert.ErrorContains(t, err, "webgl: unsupported")
	assert.Empty(t, ctx)
	assert.Empty(t, name)

	_, _, err = Negotiate[*fakeCanvas, string](c, true, true)
	assert.ErrorIs(t, err, core.ErrContextUnavailable)
}
