// Package cart holds the cart state transitions and the per-visitor Store.
//
// The transition functions are pure: they take the current ordered lines and
// return a new slice, never touching storage. Store wraps them with
// rehydration and persistence.
package cart

import "gearstore/internal/domain"

// Add returns lines with one more unit of the (product, color, size) line,
// appending a new line with quantity 1 when none matches.
func Add(lines []domain.CartLine, p domain.Product, opts domain.VariantOptions) []domain.CartLine {
	key := domain.LineKey{ProductID: p.ID, Color: opts.Color, Size: opts.Size}
	out := clone(lines)
	for i := range out {
		if out[i].Key() == key {
			out[i].Quantity++
			return out
		}
	}
	return append(out, domain.CartLine{
		ProductID:          p.ID,
		Name:               p.Name,
		PriceCents:         p.PriceCents,
		OriginalPriceCents: p.OriginalPriceCents,
		Image:              p.Image,
		Category:           p.Category,
		SelectedColor:      opts.Color,
		SelectedSize:       opts.Size,
		Quantity:           1,
	})
}

// Remove returns lines without any line matching key.
func Remove(lines []domain.CartLine, key domain.LineKey) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Key() != key {
			out = append(out, l)
		}
	}
	return out
}

// SetQuantity replaces the quantity of the line matching key. A quantity of
// zero or less removes the line.
func SetQuantity(lines []domain.CartLine, key domain.LineKey, quantity int) []domain.CartLine {
	if quantity <= 0 {
		return Remove(lines, key)
	}
	out := clone(lines)
	for i := range out {
		if out[i].Key() == key {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Clear returns an empty cart.
func Clear(lines []domain.CartLine) []domain.CartLine {
	return lines[:0:0]
}

// TotalItems is the sum of all line quantities.
func TotalItems(lines []domain.CartLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across lines, in cents.
func TotalPrice(lines []domain.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}

// normalize merges lines sharing an identity and drops non-positive
// quantities, keeping first-seen order.
func normalize(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	seen := make(map[domain.LineKey]int, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if idx, ok := seen[l.Key()]; ok {
			out[idx].Quantity += l.Quantity
			continue
		}
		seen[l.Key()] = len(out)
		out = append(out, l)
	}
	return out
}

func clone(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines), len(lines)+1)
	copy(out, lines)
	return out
}
