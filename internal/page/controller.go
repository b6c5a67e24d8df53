package page

import (
	"context"
	"fmt"
)

// Effects carries out intents on behalf of a Controller.
type Effects interface {
	Apply(ctx context.Context, in Intent) error
}

// EffectsFunc adapts a function to Effects.
type EffectsFunc func(ctx context.Context, in Intent) error

// Apply calls f.
func (f EffectsFunc) Apply(ctx context.Context, in Intent) error { return f(ctx, in) }

// Controller owns the state of one page view. It is not safe for concurrent
// use; each session gets its own.
type Controller struct {
	state    State
	effects  Effects
	attached bool
}

// NewController creates a controller in the Initial state. A nil effects
// discards every intent.
func NewController(effects Effects) *Controller {
	return &Controller{state: Initial(), effects: effects}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Attach starts accepting scroll events. Calling it again has no effect.
func (c *Controller) Attach() { c.attached = true }

// Detach stops accepting scroll events.
func (c *Controller) Detach() { c.attached = false }

// Attached reports whether scroll events are being accepted.
func (c *Controller) Attached() bool { return c.attached }

// Dispatch reduces ev into the current state and then applies the resulting
// intents in order. The state is updated even when an intent fails; the
// first failure is returned.
func (c *Controller) Dispatch(ctx context.Context, ev Event) ([]Intent, error) {
	if _, ok := ev.(Scrolled); ok && !c.attached {
		return nil, nil
	}

	next, intents := Reduce(c.state, ev)
	c.state = next

	if c.effects == nil {
		return intents, nil
	}
	for _, in := range intents {
		if err := c.effects.Apply(ctx, in); err != nil {
			return intents, fmt.Errorf("applying %T: %w", in, err)
		}
	}
	return intents, nil
}
