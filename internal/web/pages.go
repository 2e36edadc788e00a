package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/ziadkadry99/hana-site/internal/content"
	"github.com/ziadkadry99/hana-site/internal/page"
	"github.com/ziadkadry99/hana-site/internal/view"
)

// handleIndex renders a fresh page. Every load starts from the initial state;
// only the tab can be carried over in the query string.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctrl := view.NewController(view.Initial().WithActiveCategory(s.tabParam(r)), nil)
	s.renderPage(w, http.StatusOK, ctrl.State(), view.ReservationForm{}, nil)
}

// handleReserve applies the form's own constraints to a posted reservation.
// Nothing is stored or forwarded.
func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	ctrl := view.NewController(view.Initial().WithActiveCategory(s.tabParam(r)), nil)
	form := formFromRequest(r)

	remaining, err := ctrl.SubmitReservation(form)
	var blocked *view.BlockedError
	switch {
	case errors.As(err, &blocked):
		s.logger.Debug("reservation blocked", "fields", blocked.Fields)
		s.renderPage(w, http.StatusUnprocessableEntity, ctrl.State(), remaining, blocked.Fields)
	case err != nil:
		s.logger.Error("reservation submit", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		s.renderPage(w, http.StatusOK, ctrl.State(), remaining, nil)
	}
}

func handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(page.Stylesheet())
}

// renderPage renders into a buffer first so a template failure still yields
// a clean 500.
func (s *Server) renderPage(w http.ResponseWriter, status int, state view.State, form view.ReservationForm, fieldErrs map[string]string) {
	var buf bytes.Buffer
	if err := s.renderer.RenderState(&buf, state, form, fieldErrs); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// tabParam reads the "tab" query or form value. Unknown values fall back to
// the default category.
func (s *Server) tabParam(r *http.Request) content.Category {
	raw := r.FormValue("tab")
	if raw == "" {
		return content.DefaultCategory
	}
	cat, err := content.ParseCategory(raw)
	if err != nil {
		s.logger.Debug("ignoring tab parameter", "tab", raw, "error", err)
		return content.DefaultCategory
	}
	return cat
}

func formFromRequest(r *http.Request) view.ReservationForm {
	return view.ReservationForm{
		Name:      r.PostFormValue(view.FieldName),
		Email:     r.PostFormValue(view.FieldEmail),
		Phone:     r.PostFormValue(view.FieldPhone),
		Date:      r.PostFormValue(view.FieldDate),
		Time:      r.PostFormValue(view.FieldTime),
		PartySize: r.PostFormValue(view.FieldPartySize),
		Requests:  r.PostFormValue(view.FieldRequests),
	}
}
