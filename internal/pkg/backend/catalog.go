package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"
)

// ListProducts fetches a page of the catalog. A Search query routes to
// the dedicated search endpoint.
func (c *Client) ListProducts(ctx context.Context, query interfaces.ProductQuery) ([]models.Product, *models.Pagination, error) {
	path := "/products"
	params := url.Values{}

	if query.Search != "" {
		path = "/products/search"
		params.Set("q", query.Search)
	} else {
		if query.Page > 0 {
			params.Set("page", fmt.Sprint(query.Page))
		}
		if query.Limit > 0 {
			params.Set("limit", fmt.Sprint(query.Limit))
		}
		if query.Category != "" {
			params.Set("category", query.Category)
		}
		if query.Featured {
			params.Set("featured", "true")
		}
	}
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	env, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, nil, err
	}

	var products []models.Product
	if err := decodePayload(env, &products); err != nil {
		return nil, nil, fmt.Errorf("failed to decode products: %w", err)
	}

	pagination := env.Pagination
	if pagination == nil {
		pagination = &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: len(products)}
	}
	return products, pagination, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products/"+productID, "", nil)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := decodePayload(env, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	if product.ID == "" {
		product.ID = product.LegacyID
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	env, err := c.do(ctx, http.MethodGet, "/categories", "", nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := decodePayload(env, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	env, err := c.do(ctx, http.MethodGet, "/categories/"+categoryID, "", nil)
	if err != nil {
		return nil, err
	}

	var category models.Category
	if err := decodePayload(env, &category); err != nil {
		return nil, fmt.Errorf("failed to decode category: %w", err)
	}
	return &category, nil
}

func (c *Client) GetReviews(ctx context.Context, productID string) ([]models.Review, error) {
	env, err := c.do(ctx, http.MethodGet, "/products/"+productID+"/reviews", "", nil)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := decodePayload(env, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (c *Client) AddReview(ctx context.Context, token, productID string, review models.Review) error {
	_, err := c.do(ctx, http.MethodPost, "/products/"+productID+"/reviews", token, review)
	return err
}
