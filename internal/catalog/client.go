// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"chimkin/internal/models"
)

// Client talks to the catalog HTTP API. It satisfies ProductSource so a
// Feed can page through products served by a remote instance.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the API rooted at baseURL, for example
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// Categories fetches the full category list in menu display order.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/categories/get")
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch categories: %s", resp.Status())
	}
	return out, nil
}

// Products fetches one page of available products starting at offset.
// categoryID narrows the listing unless it is AllCategories.
func (c *Client) Products(ctx context.Context, categoryID string, offset int) ([]models.Product, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("start", strconv.Itoa(offset))
	if categoryID != "" && categoryID != AllCategories {
		req.SetQueryParam("category_id", categoryID)
	}

	var out []models.Product
	resp, err := req.SetResult(&out).Get("/api/products/get")
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch products: %s", resp.Status())
	}
	return out, nil
}
