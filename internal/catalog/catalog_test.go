package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/sleepsound/internal/models"
)

func ids(ps []models.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSeed(t *testing.T) {
	t.Parallel()

	c := Seed()
	ps := c.Products()
	require.Len(t, ps, 12)

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Ortho Memory Foam Mattress", p.Name)
	assert.Equal(t, "₹12,999", p.DisplayPrice)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_SetPrice(t *testing.T) {
	t.Parallel()

	c := Seed()

	next, p, err := c.SetPrice(1, 11499)
	require.NoError(t, err)
	assert.EqualValues(t, 11499, p.Price)
	assert.Equal(t, "₹11,499", p.DisplayPrice)

	got, err := next.Get(1)
	require.NoError(t, err)
	assert.EqualValues(t, 11499, got.Price)

	orig, err := c.Get(1)
	require.NoError(t, err)
	assert.EqualValues(t, 12999, orig.Price, "receiver must not change")
}

func TestCatalog_SetPriceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		id    int
		price int64
		want  error
	}{
		{"unknown id", 999, 100, ErrNotFound},
		{"zero price", 1, 0, ErrValidation},
		{"negative price", 1, -5, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Seed()
			next, _, err := c.SetPrice(tt.id, tt.price)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, c.Products(), next.Products())
		})
	}
}

func TestCatalog_ApplyPrices(t *testing.T) {
	t.Parallel()

	stored := []models.Product{
		{ID: 2, Price: 23999},
		{ID: 3, Price: 0},
		{ID: 404, Price: 10},
	}
	c := Seed().ApplyPrices(stored)

	p2, _ := c.Get(2)
	p3, _ := c.Get(3)
	assert.EqualValues(t, 23999, p2.Price)
	assert.Equal(t, "₹23,999", p2.DisplayPrice)
	assert.EqualValues(t, 8999, p3.Price)
	assert.Len(t, c.Products(), 12)
}

func TestCatalog_Filter(t *testing.T) {
	t.Parallel()

	c := Seed()
	tests := []struct {
		name string
		q    Query
		want []int
	}{
		{"empty returns all", Query{}, ids(c.Products())},
		{"search case insensitive", Query{Search: "MATTRESS"}, []int{1, 7, 11}},
		{"search matches sub category", Query{Search: "l shape"}, []int{4}},
		{"search trims", Query{Search: "  sofa "}, []int{4, 9}},
		{"category", Query{Category: "Office"}, []int{3, 6, 10}},
		{"category and sub", Query{Category: "Office", SubCategory: "Study Tables"}, []int{6}},
		{"search within category", Query{Search: "wood", Category: "Bedroom"}, []int{2, 8}},
		{"no match", Query{Search: "hammock"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ids(c.Filter(tt.q)))
		})
	}
}

func TestCatalog_ByIDs(t *testing.T) {
	t.Parallel()

	got := Seed().ByIDs([]int{9, 404, 1})
	assert.Equal(t, []int{9, 1}, ids(got))
}

func TestCatalog_ProductsAreCopies(t *testing.T) {
	t.Parallel()

	c := Seed()
	ps := c.Products()
	ps[0].Features[0] = "changed"

	p, _ := c.Get(ps[0].ID)
	assert.NotEqual(t, "changed", p.Features[0])
}
