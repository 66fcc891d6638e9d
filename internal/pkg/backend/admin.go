package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// Admin calls are straight passthroughs; role enforcement lives in the
// backend, which rejects non-admin tokens with 403.

func (c *Client) CreateProduct(ctx context.Context, token string, product models.Product) (*models.Product, error) {
	env, err := c.do(ctx, http.MethodPost, "/products", token, product)
	if err != nil {
		return nil, err
	}
	return decodeProduct(env)
}

func (c *Client) UpdateProduct(ctx context.Context, token, productID string, product models.Product) (*models.Product, error) {
	env, err := c.do(ctx, http.MethodPut, "/products/"+productID, token, product)
	if err != nil {
		return nil, err
	}
	return decodeProduct(env)
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/products/"+productID, token, nil)
	return err
}

func (c *Client) ListAllOrders(ctx context.Context, token string, page, limit int) ([]models.Order, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	path := fmt.Sprintf("/orders/admin/all?page=%d&limit=%d", page, limit)

	env, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, nil, err
	}

	var raws []rawOrder
	if err := decodePayload(env, &raws); err != nil {
		return nil, nil, fmt.Errorf("failed to decode admin orders: %w", err)
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

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status string) (*models.Order, error) {
	return c.putOrder(ctx, token, "/orders/"+orderID+"/status", map[string]string{"status": status})
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, token, orderID, paymentStatus string) (*models.Order, error) {
	return c.putOrder(ctx, token, "/orders/"+orderID+"/payment-status", map[string]string{"paymentStatus": paymentStatus})
}

func (c *Client) UpdateTracking(ctx context.Context, token, orderID string, tracking models.OrderTracking) (*models.Order, error) {
	body := map[string]string{
		"trackingNumber":    tracking.TrackingNumber,
		"estimatedDelivery": tracking.EstimatedDelivery,
	}
	return c.putOrder(ctx, token, "/orders/"+orderID+"/tracking", body)
}

func (c *Client) DeleteOrder(ctx context.Context, token, orderID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/orders/"+orderID, token, nil)
	return err
}

func (c *Client) GetAnalyticsSummary(ctx context.Context, token string) (*models.AnalyticsSummary, error) {
	env, err := c.do(ctx, http.MethodGet, "/orders/analytics/summary", token, nil)
	if err != nil {
		return nil, err
	}

	var summary models.AnalyticsSummary
	if err := decodePayload(env, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode analytics summary: %w", err)
	}
	return &summary, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, category models.Category) (*models.Category, error) {
	env, err := c.do(ctx, http.MethodPost, "/categories", token, category)
	if err != nil {
		return nil, err
	}
	return decodeCategory(env)
}

func (c *Client) UpdateCategory(ctx context.Context, token, categoryID string, category models.Category) (*models.Category, error) {
	env, err := c.do(ctx, http.MethodPut, "/categories/"+categoryID, token, category)
	if err != nil {
		return nil, err
	}
	return decodeCategory(env)
}

func (c *Client) DeleteCategory(ctx context.Context, token, categoryID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/categories/"+categoryID, token, nil)
	return err
}

func (c *Client) putOrder(ctx context.Context, token, path string, body any) (*models.Order, error) {
	env, err := c.do(ctx, http.MethodPut, path, token, body)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := decodePayload(env, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode updated order: %w", err)
	}
	order := normalizeOrder(raw)
	return &order, nil
}

func decodeProduct(env *envelope) (*models.Product, error) {
	var product models.Product
	if err := decodePayload(env, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

func decodeCategory(env *envelope) (*models.Category, error) {
	var category models.Category
	if err := decodePayload(env, &category); err != nil {
		return nil, fmt.Errorf("failed to decode category: %w", err)
	}
	return &category, nil
}
