package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/binodji2005/nistha-free-ai-image-generator/internal/donate"
)

// DonateView returns the donation panel state.
func (a *App) DonateView(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Donate.View())
}

// DonateApply toggles a donation section.
func (a *App) DonateApply(w http.ResponseWriter, r *http.Request) {
	view, ok := a.Donate.Apply(donate.Action(chi.URLParam(r, "action")))
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown donate action")
		return
	}
	a.json(w, http.StatusOK, view)
}
