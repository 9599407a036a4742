package gpucontext

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-backends/engine/core"
)

// Tier creates a context C on a surface S for one API level.
type Tier[S, C any] struct {
	Name    string
	Acquire func(surface S, attrs Attributes) (C, error)
}

// Negotiate tries tiers in order and returns the first context that could be
// created together with the name of its tier. When every tier fails the
// error wraps core.ErrContextUnavailable and each tier's failure.
func Negotiate[S, C any](surface S, antialias, transparent bool, tiers ...Tier[S, C]) (C, string, error) {
	attrs := NewAttributes(antialias, transparent)
	errs := []error{core.ErrContextUnavailable}
	for _, tier := range tiers {
		ctx, err := tier.Acquire(surface, attrs)
		if err == nil {
			core.LogInfo("created %s context", tier.Name)
			return ctx, tier.Name, nil
		}
		core.LogDebug("%s context unavailable: %s", tier.Name, err)
		errs = append(errs, fmt.Errorf("%s: %w", tier.Name, err))
	}
	var zero C
	return zero, "", errors.Join(errs...)
}
