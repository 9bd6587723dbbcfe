package handlers

import (
	"net/http"
)

func (a *App) GenerateContent(w http.ResponseWriter, r *http.Request) {
	if !a.requireGenerator(w) {
		return
	}
	var req generateContentRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, r, err)
		return
	}
	product, err := req.resolve(a)
	if err != nil {
		a.error(w, r, err)
		return
	}
	types, err := req.contentTypes()
	if err != nil {
		a.error(w, r, err)
		return
	}
	targets, err := req.socialTargets(types)
	if err != nil {
		a.error(w, r, err)
		return
	}
	bundle, err := a.Gen.GenerateContent(r.Context(), product, types, req.Style, targets)
	if err != nil {
		a.error(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"product":           product,
		"generated_content": bundle,
	})
}

func (a *App) CompleteProduct(w http.ResponseWriter, r *http.Request) {
	if !a.requireGenerator(w) {
		return
	}
	var req completeProductRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, r, err)
		return
	}
	product, err := req.resolve(a)
	if err != nil {
		a.error(w, r, err)
		return
	}
	completed, err := a.Gen.CompleteProduct(r.Context(), product)
	if err != nil {
		a.error(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"original_product":  product,
		"completed_product": completed,
	})
}

func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	if !a.requireGenerator(w) {
		return
	}
	var req generateImageRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, r, err)
		return
	}
	product, err := req.resolve(a)
	if err != nil {
		a.error(w, r, err)
		return
	}
	result, err := a.Gen.GenerateProductImage(r.Context(), product, req.Style)
	if err != nil {
		a.error(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"product":      product,
		"image_result": result,
	})
}
