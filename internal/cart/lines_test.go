package cart

import (
	"testing"

	"gearstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = domain.Product{ID: 1, Name: "A", PriceCents: 1000, Colors: []string{"Blue", "Red"}, Sizes: []string{"S", "M"}}
	productB = domain.Product{ID: 2, Name: "B", PriceCents: 2000}
)

func TestAddMergesIdenticalTriples(t *testing.T) {
	var lines []domain.CartLine
	for i := 0; i < 5; i++ {
		lines = Add(lines, productA, domain.VariantOptions{Color: "Blue", Size: "M"})
	}
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, domain.LineKey{ProductID: 1, Color: "Blue", Size: "M"}, lines[0].Key())
}

func TestAddSeparatesVariants(t *testing.T) {
	var lines []domain.CartLine
	lines = Add(lines, productA, domain.VariantOptions{Color: "Blue"})
	lines = Add(lines, productA, domain.VariantOptions{Color: "Red"})
	lines = Add(lines, productA, domain.VariantOptions{Color: "Red", Size: "S"})
	lines = Add(lines, productA, domain.VariantOptions{})

	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 1, l.Quantity)
	}
	assert.Equal(t, "Blue", lines[0].SelectedColor)
	assert.Equal(t, "Red", lines[1].SelectedColor)
	assert.Equal(t, "S", lines[2].SelectedSize)
	assert.Empty(t, lines[3].SelectedColor)
}

func TestAddCarriesProductSnapshot(t *testing.T) {
	p := domain.Product{ID: 9, Name: "Mat", PriceCents: 6999, OriginalPriceCents: 8999, Image: "img", Category: "Equipment"}
	lines := Add(nil, p, domain.VariantOptions{Size: "Standard"})
	require.Len(t, lines, 1)
	assert.Equal(t, domain.CartLine{
		ProductID:          9,
		Name:               "Mat",
		PriceCents:         6999,
		OriginalPriceCents: 8999,
		Image:              "img",
		Category:           "Equipment",
		SelectedSize:       "Standard",
		Quantity:           1,
	}, lines[0])
}

func TestAddDoesNotMutateInput(t *testing.T) {
	lines := Add(nil, productA, domain.VariantOptions{Color: "Blue"})
	next := Add(lines, productA, domain.VariantOptions{Color: "Blue"})
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 2, next[0].Quantity)
}

func TestRemoveOnlyMatchingTriple(t *testing.T) {
	var lines []domain.CartLine
	lines = Add(lines, productA, domain.VariantOptions{Color: "Blue"})
	lines = Add(lines, productA, domain.VariantOptions{Color: "Red"})
	lines = Add(lines, productB, domain.VariantOptions{})

	lines = Remove(lines, domain.LineKey{ProductID: 1, Color: "Blue"})
	require.Len(t, lines, 2)
	assert.Equal(t, "Red", lines[0].SelectedColor)
	assert.Equal(t, 2, lines[1].ProductID)

	unchanged := Remove(lines, domain.LineKey{ProductID: 99})
	assert.Equal(t, lines, unchanged)
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	key := domain.LineKey{ProductID: 1, Color: "Blue"}
	for _, q := range []int{0, -1, -10} {
		lines := Add(nil, productA, domain.VariantOptions{Color: "Blue"})
		lines = Add(lines, productB, domain.VariantOptions{})
		lines = SetQuantity(lines, key, q)
		require.Len(t, lines, 1, "quantity %d", q)
		assert.Equal(t, 2, lines[0].ProductID)
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	key := domain.LineKey{ProductID: 1, Color: "Blue"}
	lines := Add(nil, productA, domain.VariantOptions{Color: "Blue"})
	lines = Add(lines, productA, domain.VariantOptions{Color: "Blue"})
	lines = SetQuantity(lines, key, 7)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)

	same := SetQuantity(lines, domain.LineKey{ProductID: 1, Color: "Red"}, 3)
	assert.Equal(t, lines, same)
}

func TestTotals(t *testing.T) {
	assert.Equal(t, 0, TotalItems(nil))
	assert.Equal(t, int64(0), TotalPrice(nil))

	lines := []domain.CartLine{
		{ProductID: 1, PriceCents: 1000, Quantity: 3},
		{ProductID: 2, PriceCents: 2000, Quantity: 1},
	}
	assert.Equal(t, 4, TotalItems(lines))
	assert.Equal(t, int64(5000), TotalPrice(lines))
}

func TestNormalize(t *testing.T) {
	lines := normalize([]domain.CartLine{
		{ProductID: 1, SelectedColor: "Blue", Quantity: 2},
		{ProductID: 2, Quantity: 0},
		{ProductID: 1, SelectedColor: "Blue", Quantity: 1},
		{ProductID: 3, Quantity: -4},
		{ProductID: 1, SelectedColor: "Red", Quantity: 1},
	})
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "Red", lines[1].SelectedColor)
}

func TestClearEmptiesWithoutTouchingInput(t *testing.T) {
	lines := Add(Add(nil, productA, domain.VariantOptions{Color: "Blue"}), productB, domain.VariantOptions{})

	cleared := Clear(lines)
	assert.Empty(t, cleared)
	assert.Equal(t, 0, TotalItems(cleared))
	assert.Len(t, lines, 2)
	assert.Empty(t, Clear(nil))
}
