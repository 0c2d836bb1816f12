package domain

// LineKey is the identity of a cart line. Empty Color or Size means the
// variant was not chosen.
type LineKey struct {
	ProductID int    `json:"productId"`
	Color     string `json:"selectedColor,omitempty"`
	Size      string `json:"selectedSize,omitempty"`
}

// VariantOptions carries the variant chosen when adding a product.
type VariantOptions struct {
	Color string
	Size  string
}

// CartLine is one (product, color, size) combination with its quantity and
// the product fields needed to render it without a catalog lookup.
type CartLine struct {
	ProductID          int    `json:"productId"`
	Name               string `json:"name"`
	PriceCents         int64  `json:"priceCents"`
	OriginalPriceCents int64  `json:"originalPriceCents,omitempty"`
	Image              string `json:"image"`
	Category           string `json:"category,omitempty"`
	SelectedColor      string `json:"selectedColor,omitempty"`
	SelectedSize       string `json:"selectedSize,omitempty"`
	Quantity           int    `json:"quantity"`
}

// Key returns the identity triple of the line.
func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Color: l.SelectedColor, Size: l.SelectedSize}
}

// TotalCents is the line price times its quantity.
func (l CartLine) TotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}
