// Package catalog holds the products the counter can sell.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds the edit distance of a suggested code.
const maxSuggestDistance = 2

// System defines read access to the product catalog.
type System interface {
	// List returns every product ordered by code.
	List() []Product

	// Find returns the product with the given code.
	Find(code string) (Product, error)

	// Suggest returns the product whose code is closest to code, if any is
	// within a small edit distance.
	Suggest(code string) (Product, bool)
}

type catalog struct {
	products map[string]Product
	ordered  []Product
	logger   *slog.Logger
}

// New builds an immutable catalog from products.
func New(products []Product, logger *slog.Logger) (System, error) {
	c := &catalog{
		products: make(map[string]Product, len(products)),
		logger:   logger.With("system", "catalog"),
	}

	for _, p := range products {
		if p.Code == "" || p.Price < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalid, p.Code)
		}
		if _, ok := c.products[p.Code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, p.Code)
		}
		c.products[p.Code] = p
		c.ordered = append(c.ordered, p)
	}

	sort.Slice(c.ordered, func(i, j int) bool {
		return c.ordered[i].Code < c.ordered[j].Code
	})

	c.logger.Info("catalog loaded", "products", len(c.ordered))
	return c, nil
}

func (c *catalog) List() []Product {
	out := make([]Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *catalog) Find(code string) (Product, error) {
	p, ok := c.products[code]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return p, nil
}

func (c *catalog) Suggest(code string) (Product, bool) {
	code = strings.ToLower(code)

	var (
		best Product
		dist = maxSuggestDistance + 1
	)
	for _, p := range c.ordered {
		if d := levenshtein.ComputeDistance(code, strings.ToLower(p.Code)); d < dist {
			best, dist = p, d
		}
	}
	return best, dist <= maxSuggestDistance
}
