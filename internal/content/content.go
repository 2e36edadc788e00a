// Package content holds the hand-written data the Hana Ramen page renders.
// Everything here is fixed at build time; accessors return copies so no
// caller can change what another request sees.
package content

import "fmt"

// Category identifies one of the menu sections a visitor can browse.
type Category string

const (
	CategoryRamen       Category = "ramen"
	CategorySmallPlates Category = "small-plates"
	CategoryDrinks      Category = "drinks"
)

// DefaultCategory is the tab shown on page load.
const DefaultCategory = CategoryRamen

// categoryOrder is the tab order on the page.
var categoryOrder = []Category{CategoryRamen, CategorySmallPlates, CategoryDrinks}

var categoryLabels = map[Category]string{
	CategoryRamen:       "Ramen",
	CategorySmallPlates: "Small Plates",
	CategoryDrinks:      "Drinks",
}

// Categories returns every category in tab order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the tab button text for c.
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) String() string { return string(c) }

// ParseCategory converts a raw value (query parameter, websocket message,
// CLI flag) into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown menu category %q: must be one of ramen, small-plates, drinks", s)
	}
	return c, nil
}

// MenuItem is a single dish or drink. Price is already formatted for display.
type MenuItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// HasDescription reports whether the item carries a description line.
func (m MenuItem) HasDescription() bool { return m.Description != "" }

// Tab is a menu tab button.
type Tab struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
}

// Tabs returns the tab buttons in display order.
func Tabs() []Tab {
	tabs := make([]Tab, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		tabs = append(tabs, Tab{Key: c, Label: c.Label()})
	}
	return tabs
}

// NavLink is an in-page anchor link.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Testimonial is a guest review. Author includes the source and rating.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// GalleryEntry is an image card in the atmosphere section.
type GalleryEntry struct {
	Label string `json:"label"`
	Image string `json:"image"`
}

// Stat is a highlight card in the story section.
type Stat struct {
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

// OpeningHours is one line of the opening hours list.
type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// Venue describes where and when the restaurant trades.
type Venue struct {
	Name      string         `json:"name"`
	Tagline   string         `json:"tagline"`
	Street    string         `json:"street"`
	Suburb    string         `json:"suburb"`
	Address   string         `json:"address"`
	Phone     string         `json:"phone"`
	ABN       string         `json:"abn"`
	Founded   int            `json:"founded"`
	Hours     []OpeningHours `json:"hours"`
	Instagram string         `json:"instagram"`
	Facebook  string         `json:"facebook"`
}
