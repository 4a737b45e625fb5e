// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups menu products. Products reference exactly one category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	S3Key       string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`

	// Virtual field populated by store methods.
	ProductCount int `json:"product_count"`
}
