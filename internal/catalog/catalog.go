package catalog

import (
	"fmt"
	"strings"

	"gearstore/internal/domain"
)

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products []domain.Product
	byID     map[int]int
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := New(defaultProducts())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in products invalid: %v", err))
	}
	return c
}

// New validates products and builds a Catalog preserving their order.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id must be positive", p.Name)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("product %d: name required", p.ID)
		}
		if p.PriceCents <= 0 {
			return nil, fmt.Errorf("product %d: price must be positive", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return nil, fmt.Errorf("product %d: rating %.1f out of range", p.ID, p.Rating)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id", p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, cloneProduct(p))
	}
	return c, nil
}

// List returns the products in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	for i, p := range c.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Get returns the product with the given id or domain.ErrNotFound.
func (c *Catalog) Get(id int) (domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return cloneProduct(c.products[idx]), nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

func cloneProduct(p domain.Product) domain.Product {
	if p.Colors != nil {
		p.Colors = append([]string(nil), p.Colors...)
	}
	if p.Sizes != nil {
		p.Sizes = append([]string(nil), p.Sizes...)
	}
	return p
}
