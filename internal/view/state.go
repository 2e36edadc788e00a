// Package view models what the page is currently showing for one visitor:
// whether the header is in its scrolled style, which menu tab is active, and
// whether the reservation panel shows the form or the confirmation.
package view

import "github.com/ziadkadry99/hana-site/internal/content"

// Panel is the mode of the reservation panel.
type Panel string

const (
	PanelForm         Panel = "form"
	PanelConfirmation Panel = "confirmation"
)

// DefaultScrollThreshold is the vertical offset, in pixels, at which the
// header switches to its scrolled style.
const DefaultScrollThreshold = 30

// State is the transient view state. It is a value: transitions return a
// new State and never modify the receiver.
type State struct {
	Scrolled             bool             `json:"scrolled"`
	ActiveCategory       content.Category `json:"active_category"`
	ReservationSubmitted bool             `json:"reservation_submitted"`
}

// Initial returns the state of a freshly loaded page.
func Initial() State {
	return State{ActiveCategory: content.DefaultCategory}
}

func (s State) WithScrolled(flag bool) State {
	s.Scrolled = flag
	return s
}

// WithActiveCategory returns s with c selected. Callers validate c first.
func (s State) WithActiveCategory(c content.Category) State {
	s.ActiveCategory = c
	return s
}

func (s State) WithReservationSubmitted(flag bool) State {
	s.ReservationSubmitted = flag
	return s
}

// Panel reports which side of the reservation state machine is showing.
func (s State) Panel() Panel {
	if s.ReservationSubmitted {
		return PanelConfirmation
	}
	return PanelForm
}

// Items returns the menu items for the active category.
func (s State) Items() []content.MenuItem {
	return content.Menu(s.ActiveCategory)
}

// IsActive reports whether c is the selected tab.
func (s State) IsActive(c content.Category) bool {
	return s.ActiveCategory == c
}

// ScrolledAt reports whether offset is at or past threshold.
func ScrolledAt(offset, threshold int) bool {
	return offset >= threshold
}
