package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"prodgen/internal/domain"
)

// productRef identifies the product a generation request targets. Exactly one
// of the two fields must be set: a catalog id, or an inline product payload.
type productRef struct {
	ProductID   string          `json:"product_id,omitempty"`
	ProductData *domain.Product `json:"product_data,omitempty"`
}

type generateContentRequest struct {
	productRef
	ContentTypes []string            `json:"content_types"`
	Style        domain.StyleOptions `json:"style"`
	SocialMedia  map[string]bool     `json:"social_media"`
}

type completeProductRequest struct {
	productRef
}

type generateImageRequest struct {
	productRef
	Style domain.ImageStyle `json:"style"`
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.Validationf("invalid request body: %v", err)
	}
	return nil
}

// resolve returns the product the request refers to, loading it from the
// catalog or validating the inline payload.
func (ref productRef) resolve(a *App) (domain.Product, error) {
	id := strings.TrimSpace(ref.ProductID)
	switch {
	case id != "" && ref.ProductData != nil:
		return domain.Product{}, domain.Validationf("provide product_id or product_data, not both")
	case id != "":
		return a.Catalog.Get(id)
	case ref.ProductData != nil:
		p := *ref.ProductData
		if strings.TrimSpace(p.Name) == "" {
			return domain.Product{}, domain.Validationf("product_data.name is required")
		}
		if p.Price < 0 {
			return domain.Product{}, domain.Validationf("product_data.price must not be negative")
		}
		return p, nil
	}
	return domain.Product{}, domain.Validationf("product_id or product_data is required")
}

// contentTypes normalizes and validates the requested content types. Unknown
// tags are rejected rather than skipped so typos surface immediately.
func (req generateContentRequest) contentTypes() ([]domain.ContentType, error) {
	if len(req.ContentTypes) == 0 {
		return nil, domain.Validationf("content_types must not be empty")
	}
	out := make([]domain.ContentType, 0, len(req.ContentTypes))
	seen := make(map[domain.ContentType]bool, len(req.ContentTypes))
	for _, tag := range req.ContentTypes {
		ct, ok := domain.NormalizeContentType(tag)
		if !ok {
			return nil, domain.Validationf("unknown content type %q", tag)
		}
		if seen[ct] {
			continue
		}
		seen[ct] = true
		out = append(out, ct)
	}
	return out, nil
}

// socialTargets validates the platform map against the requested types.
// Unknown platform names are rejected; asking for social copy with every
// platform disabled is a contradiction, not an empty result.
func (req generateContentRequest) socialTargets(types []domain.ContentType) (domain.SocialTargets, error) {
	targets := make(domain.SocialTargets, len(req.SocialMedia))
	for name, enabled := range req.SocialMedia {
		key := strings.ToLower(strings.TrimSpace(name))
		if !domain.KnownPlatform(key) {
			return nil, domain.Validationf("unknown social platform %q", name)
		}
		targets[key] = enabled
	}
	for _, ct := range types {
		if ct == domain.ContentSocialMedia && len(targets.Enabled()) == 0 {
			return nil, domain.Validationf("social_media requested but no platform is enabled")
		}
	}
	return targets, nil
}
