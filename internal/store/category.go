// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL data access layer for the menu
// catalog. Each entity gets its own store type constructed over a shared
// *sql.DB pool.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"chimkin/internal/models"
)

// CategoryStore handles all category-related database operations.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore creates a new CategoryStore with the given database connection.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories with their product counts, ordered by
// creation date descending. Display ordering (the priority-title sort)
// is applied by the caller, not here.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.title, c.description, c.image_url, c.s3_key, c.created_at,
		       COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.S3Key,
			&c.CreatedAt, &c.ProductCount,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by its UUID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(`
		SELECT id, title, description, image_url, s3_key, created_at
		FROM categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.S3Key, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it with the generated ID.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	result := &models.Category{}
	err := s.db.QueryRow(`
		INSERT INTO categories (title, description, image_url, s3_key)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, image_url, s3_key, created_at
	`, c.Title, c.Description, c.ImageURL, c.S3Key).Scan(
		&result.ID, &result.Title, &result.Description,
		&result.ImageURL, &result.S3Key, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Delete removes a category by ID and returns the deleted row so the
// caller can clean up the stored image. Returns nil if nothing matched.
// Products in the category are removed by the FK cascade.
func (s *CategoryStore) Delete(id uuid.UUID) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRow(`
		DELETE FROM categories WHERE id = $1
		RETURNING id, title, description, image_url, s3_key, created_at
	`, id).Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.S3Key, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	return c, nil
}
