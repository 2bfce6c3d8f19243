package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/sleepsound/internal/models"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type Catalog struct {
	products []models.Product
}

func Seed() Catalog {
	return New(seedProducts)
}

func New(products []models.Product) Catalog {
	out := make([]models.Product, len(products))
	for i, p := range products {
		p = p.Clone()
		p.DisplayPrice = FormatPrice(p.Price)
		out[i] = p
	}
	return Catalog{products: out}
}

func (c Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c Catalog) Get(id int) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return models.Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
}

// SetPrice returns a catalog where product id costs price, with the display
// string refreshed.
func (c Catalog) SetPrice(id int, price int64) (Catalog, models.Product, error) {
	if price <= 0 {
		return c, models.Product{}, fmt.Errorf("%w: price must be > 0", ErrValidation)
	}
	for i, p := range c.products {
		if p.ID != id {
			continue
		}
		products := make([]models.Product, len(c.products))
		copy(products, c.products)
		p.Price = price
		p.DisplayPrice = FormatPrice(price)
		products[i] = p
		return Catalog{products: products}, p.Clone(), nil
	}
	return c, models.Product{}, fmt.Errorf("%w: product %d", ErrNotFound, id)
}

// ApplyPrices copies prices from a stored product list onto matching ids.
// Unknown ids and non-positive prices are ignored.
func (c Catalog) ApplyPrices(stored []models.Product) Catalog {
	out := c
	for _, sp := range stored {
		if next, _, err := out.SetPrice(sp.ID, sp.Price); err == nil {
			out = next
		}
	}
	return out
}

// ByIDs keeps the order of ids and skips unknown ones.
func (c Catalog) ByIDs(ids []int) []models.Product {
	out := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := c.Get(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

type Query struct {
	Search      string
	Category    string
	SubCategory string
}

func (q Query) Idle() bool {
	return strings.TrimSpace(q.Search) == "" && q.Category == "" && q.SubCategory == ""
}

func (c Catalog) Filter(q Query) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) &&
			!strings.Contains(strings.ToLower(p.SubCategory), needle) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.SubCategory != "" && p.SubCategory != q.SubCategory {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

func Categories() []string {
	out := make([]string, len(Navigation))
	for i, n := range Navigation {
		out[i] = n.Category
	}
	return out
}
