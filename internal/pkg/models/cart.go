package models

import "time"

// CartProduct is the product snapshot captured when a line is added.
// ID is the API-assigned identifier; LegacyID keeps the alternate
// mongo-style identifier some backend payloads still carry.
type CartProduct struct {
	ID            string  `json:"id,omitempty"`
	LegacyID      string  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discountPrice,omitempty"`
	Image         string  `json:"image,omitempty"`
	Stock         int     `json:"stock,omitempty"`
}

// CartLine is one product + quantity entry in the shopper's cart.
type CartLine struct {
	// LocalID identifies the line before the product has any
	// API-assigned identifier (e.g. added from a locally cached list).
	LocalID  string      `json:"localId,omitempty"`
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
	AddedAt  time.Time   `json:"addedAt,omitempty"`
}

// ProductRef resolves the identifier sent to the backend for this line,
// preferring the API-assigned id over the legacy and local ones.
func (l CartLine) ProductRef() string {
	switch {
	case l.Product.ID != "":
		return l.Product.ID
	case l.Product.LegacyID != "":
		return l.Product.LegacyID
	default:
		return l.LocalID
	}
}

// UnitPrice is the discounted price when one applies.
func (l CartLine) UnitPrice() float64 {
	if l.Product.DiscountPrice > 0 && l.Product.DiscountPrice < l.Product.Price {
		return l.Product.DiscountPrice
	}
	return l.Product.Price
}

// Subtotal for the line.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}

// CartSummary is what the cart endpoints return: the lines plus the
// client-side estimate. The backend recomputes pricing authoritatively
// at order creation.
type CartSummary struct {
	Items    []CartLine `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Total    float64    `json:"total"`
}

// Summarize builds a CartSummary from raw lines.
func Summarize(lines []CartLine) CartSummary {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	if lines == nil {
		lines = []CartLine{}
	}
	return CartSummary{Items: lines, Subtotal: subtotal, Total: subtotal}
}
