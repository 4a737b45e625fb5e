// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"chimkin/internal/models"
)

// PageSize is the number of products returned per listing request.
const PageSize = 8

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const productColumns = `id, category_id, name, price, description, image_url, s3_key, thumb_s3_key, is_available, created_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Price, &p.Description,
		&p.ImageURL, &p.S3Key, &p.ThumbS3Key, &p.IsAvailable, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductStore handles all product-related database operations.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore with the given database connection.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// List returns one page of available products, newest first, starting at
// the given offset. A nil categoryID lists across all categories. The
// query is built dynamically because the category filter is optional.
func (s *ProductStore) List(categoryID *uuid.UUID, offset int) ([]models.Product, error) {
	if offset < 0 {
		offset = 0
	}

	q := psql.Select(productColumns).
		From("products").
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(PageSize)

	if categoryID != nil {
		q = q.Where(squirrel.Eq{"category_id": *categoryID})
	}

	rows, err := q.RunWith(s.db).Query()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by its UUID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it with the generated ID.
// New products are available by default.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (category_id, name, price, description, image_url, s3_key, thumb_s3_key, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING `+productColumns,
		p.CategoryID, p.Name, p.Price, p.Description, p.ImageURL, p.S3Key, p.ThumbS3Key,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies a product's editable fields and returns the updated row.
// Returns nil if no product matched the ID.
func (s *ProductStore) Update(id uuid.UUID, name string, price float64, description string) (*models.Product, error) {
	row := s.db.QueryRow(`
		UPDATE products SET name = $1, price = $2, description = $3
		WHERE id = $4
		RETURNING `+productColumns,
		name, price, description, id,
	)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

// Delete removes a product by ID and returns the deleted row so the caller
// can clean up stored images. Returns nil if nothing matched.
func (s *ProductStore) Delete(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`
		DELETE FROM products WHERE id = $1
		RETURNING `+productColumns, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}
	return p, nil
}
