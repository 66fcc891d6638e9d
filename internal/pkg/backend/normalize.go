package backend

import (
	"strings"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// The backend has accumulated several spellings for the same order
// fields over time. rawOrder accepts all of them; normalizeOrder folds
// them onto the canonical models.Order exactly once, here at the
// boundary, so the rest of the code never does optional-field lookups.
type rawOrder struct {
	ID          string         `json:"id"`
	LegacyID    string         `json:"_id"`
	OrderNumber string         `json:"orderNumber"`
	Items       []rawOrderItem `json:"items"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	AssemblyFee float64 `json:"assemblyFee"`
	Tax         float64 `json:"tax"`
	TotalAmount float64 `json:"totalAmount"`
	Pricing     *struct {
		Subtotal float64 `json:"subtotal"`
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	} `json:"pricing"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
	Payment       *struct {
		Method string `json:"method"`
		Status string `json:"status"`
	} `json:"payment"`
	Installments int `json:"installments"`

	Status string `json:"status"`

	DeliveryAddress *models.ShippingAddress `json:"deliveryAddress"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`

	TrackingNumber string `json:"trackingNumber"`
	Tracking       *struct {
		TrackingNumber    string `json:"trackingNumber"`
		EstimatedDelivery string `json:"estimatedDelivery"`
	} `json:"tracking"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type rawOrderItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Product     *struct {
		LegacyID string `json:"_id"`
		Name     string `json:"name"`
		Images   []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

var orderStatusMap = map[string]string{
	"pending":          "PENDING",
	"processing":       "PROCESSING",
	"confirmed":        "PROCESSING",
	"in_transit":       "IN_TRANSIT",
	"out_for_delivery": "OUT_FOR_DELIVERY",
	"delivered":        "DELIVERED",
	"cancelled":        "CANCELLED",
}

var paymentStatusMap = map[string]string{
	"pending":        "PENDING",
	"paid":           "PAID",
	"partially_paid": "PARTIALLY_PAID",
	"failed":         "FAILED",
}

func normalizeOrderStatus(status string) string {
	if mapped, ok := orderStatusMap[strings.ToLower(status)]; ok {
		return mapped
	}
	if status == "" {
		return "PENDING"
	}
	return strings.ToUpper(status)
}

func normalizePaymentStatus(status string) string {
	if mapped, ok := paymentStatusMap[strings.ToLower(status)]; ok {
		return mapped
	}
	if status == "" {
		return "PENDING"
	}
	return strings.ToUpper(status)
}

func normalizeOrder(raw rawOrder) models.Order {
	order := models.Order{
		ID:             raw.ID,
		OrderNumber:    raw.OrderNumber,
		Subtotal:       raw.Subtotal,
		DeliveryFee:    raw.DeliveryFee,
		AssemblyFee:    raw.AssemblyFee,
		Tax:            raw.Tax,
		TotalAmount:    raw.TotalAmount,
		PaymentMethod:  raw.PaymentMethod,
		Installments:   raw.Installments,
		TrackingNumber: raw.TrackingNumber,
		CreatedAt:      raw.CreatedAt,
		UpdatedAt:      raw.UpdatedAt,
	}

	if order.ID == "" {
		order.ID = raw.LegacyID
	}

	if raw.Pricing != nil {
		if order.Subtotal == 0 {
			order.Subtotal = raw.Pricing.Subtotal
		}
		if order.DeliveryFee == 0 {
			order.DeliveryFee = raw.Pricing.Shipping
		}
		if order.Tax == 0 {
			order.Tax = raw.Pricing.Tax
		}
		if order.TotalAmount == 0 {
			order.TotalAmount = raw.Pricing.Total
		}
	}

	paymentStatus := raw.PaymentStatus
	if raw.Payment != nil {
		if raw.Payment.Status != "" {
			paymentStatus = raw.Payment.Status
		}
		if order.PaymentMethod == "" {
			order.PaymentMethod = raw.Payment.Method
		}
	}
	order.PaymentStatus = normalizePaymentStatus(paymentStatus)
	order.Status = normalizeOrderStatus(raw.Status)

	switch {
	case raw.ShippingAddress != nil:
		order.ShippingAddress = *raw.ShippingAddress
	case raw.DeliveryAddress != nil:
		order.ShippingAddress = *raw.DeliveryAddress
	}

	if raw.Tracking != nil {
		if order.TrackingNumber == "" {
			order.TrackingNumber = raw.Tracking.TrackingNumber
		}
		order.EstimatedDelivery = raw.Tracking.EstimatedDelivery
	}

	order.Items = make([]models.OrderItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		normalized := models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Image:       item.Image,
		}
		if item.Product != nil {
			if normalized.ProductID == "" {
				normalized.ProductID = item.Product.LegacyID
			}
			if normalized.ProductName == "" {
				normalized.ProductName = item.Product.Name
			}
			if normalized.Image == "" && len(item.Product.Images) > 0 {
				normalized.Image = item.Product.Images[0].URL
			}
		}
		order.Items = append(order.Items, normalized)
	}

	return order
}
