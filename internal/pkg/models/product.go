package models

// Product is the catalog entry as served by the backend. The backend is
// authoritative for price and stock; the storefront only reads them.
type Product struct {
	ID            string   `json:"id"`
	LegacyID      string   `json:"_id,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice,omitempty"`
	Images        []string `json:"images,omitempty"`
	Material      []string `json:"material,omitempty"`
	Color         []string `json:"color,omitempty"`
	Style         string   `json:"style,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
}

// EffectivePrice is the amount a shopper actually pays for one unit.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 && p.DiscountPrice < p.Price {
		return p.DiscountPrice
	}
	return p.Price
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Review struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"productId,omitempty"`
	Author    string  `json:"author,omitempty"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}
