package models

// ShippingAddress is the canonical delivery address shape. The json
// tags match the order-creation contract of the backend.
type ShippingAddress struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required,min=8"`
}

// OrderItemRequest is one line of the order-creation payload. Only the
// product reference and quantity are sent; the backend resolves prices.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderCreationRequest is the exact body POSTed to the backend to
// create an order. Built fresh per checkout attempt and never mutated
// after submission.
type OrderCreationRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Installments    int                `json:"installments,omitempty"`
}

// OrderItem is a line of a persisted order as returned by the backend.
type OrderItem struct {
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// Order is the single canonical order shape used everywhere past the
// backend boundary. Alternate backend field spellings are folded into
// this shape once, in the backend package's normalization step.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	Items             []OrderItem     `json:"items"`
	Subtotal          float64         `json:"subtotal,omitempty"`
	DeliveryFee       float64         `json:"deliveryFee,omitempty"`
	AssemblyFee       float64         `json:"assemblyFee,omitempty"`
	Tax               float64         `json:"tax,omitempty"`
	TotalAmount       float64         `json:"totalAmount"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentStatus     string          `json:"paymentStatus"`
	Installments      int             `json:"installments,omitempty"`
	Status            string          `json:"status"`
	ShippingAddress   ShippingAddress `json:"shippingAddress"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	UpdatedAt         string          `json:"updatedAt,omitempty"`
}

// OrderCreated is the result of a successful order creation. PaymentURL
// is set when the backend hands off to the installment provider.
type OrderCreated struct {
	Order      Order  `json:"order"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

// OrderTracking is the tracking view of an order.
type OrderTracking struct {
	OrderID           string `json:"orderId"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
}
