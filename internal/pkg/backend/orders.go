package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// CreateOrder posts the order-creation payload. The backend computes
// the authoritative pricing; the response carries it back.
func (c *Client) CreateOrder(ctx context.Context, token string, req models.OrderCreationRequest) (*models.OrderCreated, error) {
	env, err := c.do(ctx, http.MethodPost, "/orders", token, req)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := decodePayload(env, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode created order: %w", err)
	}

	return &models.OrderCreated{
		Order:      normalizeOrder(raw),
		PaymentURL: env.PaymentURL,
	}, nil
}

// ListOrders returns the shopper's orders, newest first per backend
// ordering.
func (c *Client) ListOrders(ctx context.Context, token string, page, limit int) ([]models.Order, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	path := fmt.Sprintf("/orders?page=%d&limit=%d", page, limit)

	env, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, nil, err
	}

	var raws []rawOrder
	if err := decodePayload(env, &raws); err != nil {
		return nil, nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, normalizeOrder(raw))
	}

	pagination := env.Pagination
	if pagination == nil {
		pagination = &models.Pagination{CurrentPage: page, TotalPages: 1, TotalItems: len(orders)}
	}
	return orders, pagination, nil
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders/"+orderID, token, nil)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := decodePayload(env, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	order := normalizeOrder(raw)
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, token, orderID, reason string) (*models.Order, error) {
	body := map[string]string{"reason": reason}
	env, err := c.do(ctx, http.MethodPut, "/orders/"+orderID+"/cancel", token, body)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := decodePayload(env, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode cancelled order: %w", err)
	}
	order := normalizeOrder(raw)
	return &order, nil
}

func (c *Client) GetTracking(ctx context.Context, token, orderID string) (*models.OrderTracking, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders/"+orderID+"/tracking", token, nil)
	if err != nil {
		return nil, err
	}

	var tracking models.OrderTracking
	if err := decodePayload(env, &tracking); err != nil {
		return nil, fmt.Errorf("failed to decode tracking: %w", err)
	}
	if tracking.OrderID == "" {
		tracking.OrderID = orderID
	}
	return &tracking, nil
}
