package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a handful of
// menu categories and a few products in each, so the menu is browsable
// immediately after a fresh start. Skipped when any category exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []struct {
		title       string
		description string
		products    []struct {
			name        string
			price       float64
			description string
		}
	}{
		{
			title:       "Wings",
			description: "Crispy fried wings tossed in house sauces",
			products: []struct {
				name        string
				price       float64
				description string
			}{
				{"Classic Buffalo Wings", 7.99, "Six wings in classic buffalo sauce with ranch dip"},
				{"Honey Garlic Wings", 8.49, "Six wings glazed in sticky honey garlic"},
			},
		},
		{
			title:       "Burger",
			description: "Smashed patties on toasted brioche",
			products: []struct {
				name        string
				price       float64
				description string
			}{
				{"Chimkin Burger", 6.99, "Crispy chicken thigh, slaw, pickles, comeback sauce"},
				{"Double Smash", 9.49, "Two beef patties, cheddar, onions, burger sauce"},
			},
		},
		{
			title:       "Drinks",
			description: "Cold drinks and fresh juices",
			products: []struct {
				name        string
				price       float64
				description string
			}{
				{"Fresh Lemonade", 2.99, "Squeezed to order with mint"},
				{"Cola", 1.99, "330ml can, served cold"},
			},
		},
	}

	for _, c := range categories {
		var categoryID string
		err := db.QueryRow(`
			INSERT INTO categories (title, description)
			VALUES ($1, $2)
			RETURNING id
		`, c.title, c.description).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.title, err)
		}

		for _, p := range c.products {
			_, err := db.Exec(`
				INSERT INTO products (category_id, name, price, description, is_available)
				VALUES ($1, $2, $3, $4, TRUE)
			`, categoryID, p.name, p.price, p.description)
			if err != nil {
				return fmt.Errorf("seed insert product %q: %w", p.name, err)
			}
		}
	}

	slog.Info("database seeded with sample menu",
		"categories", len(categories),
	)

	return nil
}
