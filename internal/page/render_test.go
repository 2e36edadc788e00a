package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/view"
)

func renderString(t *testing.T, r *Renderer, state view.State, form view.ReservationForm, errs map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.RenderState(&buf, state, form, errs); err != nil {
		t.Fatalf("RenderState: %v", err)
	}
	return buf.String()
}

func TestRenderDefaultPage(t *testing.T) {
	r, err := New(Options{Mode: ModeServer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	html := renderString(t, r, view.Initial(), view.ReservationForm{}, nil)

	for _, item := range content.Menu(content.CategoryRamen) {
		if !strings.Contains(html, item.Name) {
			t.Errorf("expected ramen item %q in page", item.Name)
		}
	}
	for _, price := range []string{"$24", "$23", "$22", "$21", "$26"} {
		if !strings.Contains(html, price) {
			t.Errorf("expected price %s in page", price)
		}
	}
	if strings.Contains(html, "Ramune Soda") || strings.Contains(html, "Gyoza (6pc)") {
		t.Error("items from inactive categories rendered")
	}
	if !strings.Contains(html, `id="reserve-form"`) {
		t.Error("expected reservation form")
	}
	if strings.Contains(html, "Reservation Request Received") {
		t.Error("confirmation should not render before submission")
	}
	if strings.Contains(html, `class="site-header is-scrolled"`) {
		t.Error("header should not start scrolled")
	}
	if !strings.Contains(html, `href="/site.css"`) {
		t.Error("expected server stylesheet link")
	}
}

func TestRenderStorySection(t *testing.T) {
	r, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	html := renderString(t, r, view.Initial(), view.ReservationForm{}, nil)
	if !strings.Contains(html, "<strong>the perfect bowl</strong>") {
		t.Error("expected story markdown rendered to HTML")
	}
	for _, anchor := range []string{`id="menu"`, `id="story"`, `id="gallery"`, `id="reserve"`} {
		if !strings.Contains(html, anchor) {
			t.Errorf("missing section anchor %s", anchor)
		}
	}
	for _, g := range content.Gallery() {
		if !strings.Contains(html, g.Image) {
			t.Errorf("missing gallery image %s", g.Image)
		}
	}
}

func TestRenderDrinksTab(t *testing.T) {
	r, err := New(Options{Mode: ModeServer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	state := view.Initial().WithActiveCategory(content.CategoryDrinks)
	html := renderString(t, r, state, view.ReservationForm{}, nil)

	for _, item := range content.Menu(content.CategoryDrinks) {
		if !strings.Contains(html, item.Name) {
			t.Errorf("expected drink %q in page", item.Name)
		}
	}
	if strings.Contains(html, "Tonkotsu Hana") {
		t.Error("ramen items rendered while drinks active")
	}
	if !strings.Contains(html, `data-tab="drinks" role="tab" aria-selected="true" class="tab is-active"`) {
		t.Error("drinks tab not marked active")
	}
}

func TestRenderConfirmation(t *testing.T) {
	r, err := New(Options{Mode: ModeServer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	state := view.Initial().WithActiveCategory(content.CategorySmallPlates).WithReservationSubmitted(true)
	html := renderString(t, r, state, view.ReservationForm{}, nil)

	if !strings.Contains(html, "Reservation Request Received") {
		t.Error("expected confirmation copy")
	}
	if strings.Contains(html, `id="reserve-form"`) {
		t.Error("form should not render with the confirmation")
	}
	if !strings.Contains(html, `href="/?tab=small-plates#reserve"`) {
		t.Error("submit-another link should keep the active tab")
	}
}

func TestRenderLivePage(t *testing.T) {
	r, err := New(Options{Mode: ModeServer, Live: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	html := renderString(t, r, view.Initial().WithActiveCategory(content.CategoryDrinks), view.ReservationForm{}, nil)

	// Both panels are present so the channel can switch between them.
	if !strings.Contains(html, `<form id="reserve-form" class="reserve-form" method="post" action="/reserve">`) {
		t.Error("expected visible reservation form")
	}
	if !strings.Contains(html, `<div id="reserve-confirmation" class="confirmation" hidden>`) {
		t.Error("expected hidden confirmation panel")
	}
	if !strings.Contains(html, `<input type="hidden" name="tab" value="drinks">`) {
		t.Error("expected hidden tab input to carry the active tab")
	}

	for _, want := range []string{
		`data-live="true"`,
		`form.addEventListener('submit'`,
		`send({ type: 'submit', form: formValues() })`,
		`send({ type: 'reset' })`,
		`msg.type === 'blocked'`,
		`form.elements.tab.value = msg.state.active_category`,
		`setSubmitted(msg.state.reservation_submitted)`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("live script missing %q", want)
		}
	}

	submitted := renderString(t, r, view.Initial().WithReservationSubmitted(true), view.ReservationForm{}, nil)
	if !strings.Contains(submitted, `action="/reserve" hidden>`) {
		t.Error("form should be hidden once submitted")
	}
	if !strings.Contains(submitted, `<div id="reserve-confirmation" class="confirmation">`) {
		t.Error("confirmation should be visible once submitted")
	}
}

func TestRenderRetainsValuesAndErrors(t *testing.T) {
	r, err := New(Options{Mode: ModeServer})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	form := view.ReservationForm{Name: "Aiko", Time: "6:30pm", PartySize: "7+"}
	errs := map[string]string{view.FieldEmail: "Please fill out this field."}
	html := renderString(t, r, view.Initial(), form, errs)

	if !strings.Contains(html, `value="Aiko"`) {
		t.Error("expected name value retained")
	}
	if !strings.Contains(html, `<option value="6:30pm" selected>`) {
		t.Error("expected time option selected")
	}
	if !strings.Contains(html, `<option value="7&#43;" selected>`) {
		t.Error("expected party size option selected")
	}
	if !strings.Contains(html, "Please fill out this field.") {
		t.Error("expected field error message")
	}
}

func TestRenderScrolledHeader(t *testing.T) {
	r, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	html := renderString(t, r, view.Initial().WithScrolled(true), view.ReservationForm{}, nil)
	if !strings.Contains(html, `class="site-header is-scrolled"`) {
		t.Error("expected scrolled header class")
	}
}

func TestStaticMode(t *testing.T) {
	r, err := New(Options{Mode: ModeStatic, Live: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := r.Build(view.Initial().WithActiveCategory(content.CategoryDrinks), view.ReservationForm{}, nil)

	if !d.Static || d.Live {
		t.Errorf("static export must not enable the live channel: static=%v live=%v", d.Static, d.Live)
	}
	if d.FormAction != "#reserve" {
		t.Errorf("FormAction = %q, want #reserve", d.FormAction)
	}
	if d.Gallery[0].Image != "images/gallery-broth.jpg" {
		t.Errorf("static gallery image = %q, want a relative path", d.Gallery[0].Image)
	}
	if d.Tabs[0].Href != "index.html#menu" || d.Tabs[2].Href != "drinks.html#menu" {
		t.Errorf("unexpected static tab hrefs: %q, %q", d.Tabs[0].Href, d.Tabs[2].Href)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, d); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	// Both panels are present so the browser can switch between them.
	if !strings.Contains(html, `id="reserve-form"`) || !strings.Contains(html, `id="reserve-confirmation"`) {
		t.Error("static page should carry both form and confirmation")
	}
}

func TestStaticFile(t *testing.T) {
	tests := []struct {
		cat  content.Category
		want string
	}{
		{content.CategoryRamen, "index.html"},
		{content.CategorySmallPlates, "small-plates.html"},
		{content.CategoryDrinks, "drinks.html"},
	}
	for _, tt := range tests {
		if got := StaticFile(tt.cat); got != tt.want {
			t.Errorf("StaticFile(%q) = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	r, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d := r.Build(view.Initial(), view.ReservationForm{}, nil)
	if d.SiteName != "Hana Ramen" {
		t.Errorf("SiteName = %q", d.SiteName)
	}
	if d.ScrollThreshold != view.DefaultScrollThreshold {
		t.Errorf("ScrollThreshold = %d", d.ScrollThreshold)
	}
}
