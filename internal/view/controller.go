package view

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/hana-site/internal/content"
)

// ErrUnknownCategory is returned when a tab outside the closed set is selected.
var ErrUnknownCategory = errors.New("unknown menu category")

// RenderFunc is called with the new state after every change.
type RenderFunc func(State)

// Controller owns one visitor's State. It is not safe for concurrent use;
// each page request or live connection gets its own controller and drives
// it from a single goroutine.
type Controller struct {
	state  State
	render RenderFunc
}

// NewController creates a controller starting at initial. render may be nil.
func NewController(initial State, render RenderFunc) *Controller {
	if !initial.ActiveCategory.Valid() {
		initial.ActiveCategory = content.DefaultCategory
	}
	return &Controller{state: initial, render: render}
}

// State returns the current view state.
func (c *Controller) State() State { return c.state }

// VisibleItems returns exactly the items of the active category.
func (c *Controller) VisibleItems() []content.MenuItem { return c.state.Items() }

// Panel returns the current reservation panel mode.
func (c *Controller) Panel() Panel { return c.state.Panel() }

// SetScrolled updates the header style flag.
func (c *Controller) SetScrolled(flag bool) {
	c.replace(c.state.WithScrolled(flag))
}

// SetActiveCategory selects a menu tab. Any category is reachable from any
// other in one step.
func (c *Controller) SetActiveCategory(cat content.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
	}
	c.replace(c.state.WithActiveCategory(cat))
	return nil
}

// SetReservationSubmitted moves the reservation panel between its two states.
func (c *Controller) SetReservationSubmitted(flag bool) {
	c.replace(c.state.WithReservationSubmitted(flag))
}

// replace swaps in next and re-renders if anything changed.
func (c *Controller) replace(next State) {
	if next == c.state {
		return
	}
	c.state = next
	if c.render != nil {
		c.render(next)
	}
}
