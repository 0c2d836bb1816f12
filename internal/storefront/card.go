package storefront

import (
	"strconv"

	"gearstore/internal/catalog"
	"gearstore/internal/domain"
)

// Card is the display model of one catalog product.
type Card struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Category        string   `json:"category"`
	Price           string   `json:"price"`
	OriginalPrice   string   `json:"originalPrice,omitempty"`
	DiscountPercent int      `json:"discountPercent,omitempty"`
	Rating          string   `json:"rating"`
	Reviews         int      `json:"reviews"`
	Colors          []string `json:"colors,omitempty"`
	Sizes           []string `json:"sizes,omitempty"`
	DefaultColor    string   `json:"defaultColor,omitempty"`
	DefaultSize     string   `json:"defaultSize,omitempty"`
}

// NewCard builds the card for p. The first color and size are preselected.
// The discount badge is shown only for a positive rounded percentage.
func NewCard(p domain.Product) Card {
	card := Card{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Price:       catalog.FormatCents(p.PriceCents),
		Rating:      strconv.FormatFloat(p.Rating, 'f', 1, 64),
		Reviews:     p.Reviews,
		Colors:      append([]string(nil), p.Colors...),
		Sizes:       append([]string(nil), p.Sizes...),
	}
	if p.OriginalPriceCents > 0 {
		card.OriginalPrice = catalog.FormatCents(p.OriginalPriceCents)
		if pct := catalog.DiscountPercent(p.PriceCents, p.OriginalPriceCents); pct > 0 {
			card.DiscountPercent = pct
		}
	}
	if len(p.Colors) > 0 {
		card.DefaultColor = p.Colors[0]
	}
	if len(p.Sizes) > 0 {
		card.DefaultSize = p.Sizes[0]
	}
	return card
}

func NewCards(products []domain.Product) []Card {
	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewCard(p))
	}
	return cards
}
