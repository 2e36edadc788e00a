package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/hana-site/internal/content"
)

// reservationOptions lists the fixed choices of the reservation form.
type reservationOptions struct {
	TimeSlots  []string `json:"time_slots"`
	PartySizes []string `json:"party_sizes"`
}

// registerAPIRoutes mounts the read-only content endpoints on r, which is
// already scoped to /api.
func registerAPIRoutes(r chi.Router) {
	r.Get("/menu", handleMenu)
	r.Get("/menu/{category}", handleMenuCategory)
	r.Get("/testimonials", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Testimonials())
	})
	r.Get("/gallery", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.Gallery())
	})
	r.Get("/nav", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.NavLinks())
	})
	r.Get("/venue", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, content.VenueInfo())
	})
	r.Get("/reservation/options", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reservationOptions{
			TimeSlots:  content.TimeSlots(),
			PartySizes: content.PartySizes(),
		})
	})
}

func handleMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, content.FullMenu())
}

func handleMenuCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := content.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, content.Section{
		Category: cat,
		Label:    cat.Label(),
		Items:    content.Menu(cat),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
