package handlers

import "net/http"

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	mode := "full"
	if a.Gen == nil {
		mode = "catalog-only"
	}
	a.json(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"mode":     mode,
		"products": a.Catalog.Len(),
	})
}
