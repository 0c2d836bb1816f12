package domain

// Product is a catalog entry. Prices are integer cents; OriginalPriceCents is
// zero when the product is not discounted.
type Product struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	PriceCents         int64    `json:"priceCents"`
	OriginalPriceCents int64    `json:"originalPriceCents,omitempty"`
	Image              string   `json:"image"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Rating             float64  `json:"rating"`
	Reviews            int      `json:"reviews"`
	Colors             []string `json:"colors,omitempty"`
	Sizes              []string `json:"sizes,omitempty"`
}

// HasColor reports whether color is one of the product's color options.
// An empty color is accepted only when the product offers no colors.
func (p Product) HasColor(color string) bool {
	return hasOption(p.Colors, color)
}

// HasSize reports whether size is one of the product's size options.
// An empty size is accepted only when the product offers no sizes.
func (p Product) HasSize(size string) bool {
	return hasOption(p.Sizes, size)
}

func hasOption(options []string, v string) bool {
	if v == "" {
		return len(options) == 0
	}
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
