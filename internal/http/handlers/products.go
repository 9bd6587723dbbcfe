package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *App) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := a.Catalog.List()
	a.json(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

func (a *App) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := a.Catalog.Get(id)
	if err != nil {
		a.error(w, r, err)
		return
	}
	a.json(w, http.StatusOK, p)
}
