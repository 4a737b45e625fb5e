// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is a single menu item. The image file lives in object storage;
// only its public URL and key are stored here.
type Product struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	S3Key       string    `json:"-"`
	ThumbS3Key  *string   `json:"-"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayPrice formats the price for customer-facing output.
func (p *Product) DisplayPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
