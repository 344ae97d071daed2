package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	snap := a.Generator.Snapshot()
	a.json(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"generating": snap.Generating,
		"images":     a.Images.Len(),
	})
}
