// Package page renders the single Hana Ramen page from the content store and
// one visitor's view state.
package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/view"
)

// Mode selects how links and the reservation form behave.
type Mode int

const (
	// ModeServer renders for the live server: tabs are query links and the
	// form posts to /reserve.
	ModeServer Mode = iota
	// ModeStatic renders for a static export: one file per tab, and the
	// form is handled in the browser without leaving the page.
	ModeStatic
)

// CopyrightYear is printed in the footer.
const CopyrightYear = 2025

// Options configures a Renderer.
type Options struct {
	SiteName        string
	Mode            Mode
	ScrollThreshold int
	// Live enables the websocket view channel script.
	Live bool
}

// Renderer holds the parsed page template and the rendered story copy.
type Renderer struct {
	opts  Options
	tmpl  *template.Template
	story template.HTML
}

// TabLink is a menu tab button as rendered.
type TabLink struct {
	Key    content.Category
	Label  string
	Href   string
	Active bool
}

// Data is everything the page template needs.
type Data struct {
	SiteName        string
	Venue           content.Venue
	Nav             []content.NavLink
	Tabs            []TabLink
	Items           []content.MenuItem
	Stats           []content.Stat
	Gallery         []content.GalleryEntry
	Testimonials    []content.Testimonial
	Story           template.HTML
	State           view.State
	Form            view.ReservationForm
	FieldErrors     map[string]string
	TimeSlots       []string
	PartySizes      []string
	FormAction      string
	AnotherHref     string
	StylesheetHref  string
	Static          bool
	Live            bool
	ScrollThreshold int
	Year            int
}

// New parses the page template and renders the story markdown.
func New(opts Options) (*Renderer, error) {
	if opts.SiteName == "" {
		opts.SiteName = content.VenueInfo().Name
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = view.DefaultScrollThreshold
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(content.Story), &buf); err != nil {
		return nil, fmt.Errorf("rendering story markdown: %w", err)
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{
		opts:  opts,
		tmpl:  tmpl,
		story: template.HTML(buf.String()),
	}, nil
}

// Build assembles template data for state. form holds values to show in
// the reservation form; fieldErrs holds per-field constraint messages.
func (r *Renderer) Build(state view.State, form view.ReservationForm, fieldErrs map[string]string) Data {
	tabs := make([]TabLink, 0, 3)
	for _, t := range content.Tabs() {
		tabs = append(tabs, TabLink{
			Key:    t.Key,
			Label:  t.Label,
			Href:   r.TabHref(t.Key),
			Active: state.IsActive(t.Key),
		})
	}

	d := Data{
		SiteName:        r.opts.SiteName,
		Venue:           content.VenueInfo(),
		Nav:             content.NavLinks(),
		Tabs:            tabs,
		Items:           state.Items(),
		Stats:           content.Stats(),
		Gallery:         content.Gallery(),
		Testimonials:    content.Testimonials(),
		Story:           r.story,
		State:           state,
		Form:            form,
		FieldErrors:     fieldErrs,
		TimeSlots:       content.TimeSlots(),
		PartySizes:      content.PartySizes(),
		Static:          r.opts.Mode == ModeStatic,
		Live:            r.opts.Live && r.opts.Mode == ModeServer,
		ScrollThreshold: r.opts.ScrollThreshold,
		Year:            CopyrightYear,
	}

	if d.Static {
		d.FormAction = "#reserve"
		d.AnotherHref = StaticFile(state.ActiveCategory) + "#reserve"
		d.StylesheetHref = "style.css"
		// Exported files may be opened straight from disk.
		for i := range d.Gallery {
			d.Gallery[i].Image = strings.TrimPrefix(d.Gallery[i].Image, "/")
		}
	} else {
		d.FormAction = "/reserve"
		d.AnotherHref = "/?" + url.Values{"tab": {string(state.ActiveCategory)}}.Encode() + "#reserve"
		d.StylesheetHref = "/site.css"
	}
	return d
}

// TabHref returns the link a tab button points at.
func (r *Renderer) TabHref(c content.Category) string {
	if r.opts.Mode == ModeStatic {
		return StaticFile(c) + "#menu"
	}
	return "/?" + url.Values{"tab": {string(c)}}.Encode() + "#menu"
}

// Render writes the page for d.
func (r *Renderer) Render(w io.Writer, d Data) error {
	if err := r.tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// RenderState is Build followed by Render.
func (r *Renderer) RenderState(w io.Writer, state view.State, form view.ReservationForm, fieldErrs map[string]string) error {
	return r.Render(w, r.Build(state, form, fieldErrs))
}

// StaticFile is the export file name for a tab; the default tab is index.html.
func StaticFile(c content.Category) string {
	if c == content.DefaultCategory {
		return "index.html"
	}
	return string(c) + ".html"
}

// Stylesheet returns the site CSS.
func Stylesheet() []byte { return []byte(cssContent) }
