package models

// CartItem is one line of a session cart. A product appears at most once;
// re-adding merges into the existing line.
type CartItem struct {
	ProductID     string  `json:"productId"`
	CategoryID    string  `json:"categoryId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	DiscountPrice float64 `json:"discountedPrice,omitempty"`
	Quantity      int     `json:"quantity"`
}

// UnitPrice is what the shopper pays per unit: the promotion price when the
// line carries one, the regular price otherwise.
func (i *CartItem) UnitPrice() float64 {
	if i.DiscountPrice > 0 {
		return i.DiscountPrice
	}
	return i.Price
}

// Subtotal is the line total.
func (i *CartItem) Subtotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}
