package storefront

import (
	"gearstore/internal/catalog"
	"gearstore/internal/domain"
	"gearstore/internal/notify"
)

// CartLineView is one cart line as shown in the cart drawer.
type CartLineView struct {
	ProductID int
	Name      string
	Image     string
	Color     string
	Size      string
	Quantity  int
	Price     string
	LineTotal string
}

// CartSummary is the header cart badge and drawer content.
type CartSummary struct {
	Count int
	Total string
	Lines []CartLineView
}

func (c CartSummary) Empty() bool {
	return len(c.Lines) == 0
}

// NewCartSummary renders lines from their stored snapshot, so a line whose
// product left the catalog still shows its saved name and price.
func NewCartSummary(lines []domain.CartLine, count int, totalCents int64) CartSummary {
	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Color:     l.SelectedColor,
			Size:      l.SelectedSize,
			Quantity:  l.Quantity,
			Price:     catalog.FormatCents(l.PriceCents),
			LineTotal: catalog.FormatCents(l.TotalCents()),
		})
	}
	return CartSummary{Count: count, Total: catalog.FormatCents(totalCents), Lines: views}
}

// FormState carries submitted values and field errors back into a form.
type FormState struct {
	Values map[string]string
	Errors map[string]string
}

func (f FormState) Value(field string) string {
	return f.Values[field]
}

func (f FormState) Error(field string) string {
	return f.Errors[field]
}

// Page is everything the storefront template renders.
type Page struct {
	Content
	Cards          []Card
	Cart           CartSummary
	Notices        []notify.Notice
	NewsletterForm FormState
	ContactForm    FormState
}

func NewPage(content Content, products []domain.Product, cart CartSummary, notices []notify.Notice) Page {
	return Page{
		Content: content,
		Cards:   NewCards(products),
		Cart:    cart,
		Notices: notices,
	}
}
