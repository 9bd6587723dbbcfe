package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"prodgen/internal/domain"
)

// Store holds the immutable product catalog, loaded once at process start.
// Reads never mutate it, so it is safe for concurrent use without locking.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

// catalogFile is the on-disk shape of the catalog. A bare JSON array is also
// accepted.
type catalogFile struct {
	Products []domain.Product `json:"products"`
}

// Load reads the catalog file at path and builds the in-memory store.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var products []domain.Product
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
	} else {
		var file catalogFile
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		products = file.Products
	}

	return New(products)
}

// New builds a store from an already-decoded product list, preserving order.
func New(products []domain.Product) (*Store, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}
	return &Store{products: products, byID: byID}, nil
}

// List returns the catalog in load order. Products are deep-copied so
// callers cannot mutate the store, not even through the slice fields.
func (s *Store) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id string) (domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.NotFoundf("product %q not found", id)
	}
	return cloneProduct(s.products[i]), nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Features = cloneStrings(p.Features)
	p.Materials = cloneStrings(p.Materials)
	p.Colors = cloneStrings(p.Colors)
	p.Tags = cloneStrings(p.Tags)
	return p
}

func cloneStrings(items []string) []string {
	if items == nil {
		return nil
	}
	return append([]string(nil), items...)
}

// Len reports the number of products in the catalog.
func (s *Store) Len() int { return len(s.products) }
