package catalog

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ParseCents converts a dollar amount such as "89.99" into cents.
func ParseCents(amount string) (int64, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, err
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

func mustCents(amount string) int64 {
	return decimal.RequireFromString(amount).Mul(hundred).Round(0).IntPart()
}

// FormatCents renders cents as a dollar amount with two decimals.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// DiscountPercent returns round((original-price)/original*100), or 0 when
// the product has no original price.
func DiscountPercent(priceCents, originalCents int64) int {
	if originalCents <= 0 {
		return 0
	}
	diff := decimal.NewFromInt(originalCents - priceCents)
	pct := diff.Mul(hundred).Div(decimal.NewFromInt(originalCents)).Round(0)
	return int(pct.IntPart())
}
