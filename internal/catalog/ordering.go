// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the customer-facing view of the menu: the
// fixed category ordering, the incremental product feed, and an HTTP
// client for the catalog API.
package catalog

import (
	"sort"

	"chimkin/internal/models"
)

// priorityTitles is the fixed display order for known category titles.
// Categories whose titles are not listed keep their incoming (newest
// first) order and sort after all known titles.
var priorityTitles = []string{
	"Appetizer", "Sandwich", "Burger", "Chicken",
	"Meals", "Wings", "Offers", "Sauce", "Drinks",
}

// titleRank maps a category title to its display rank. Unknown titles get
// rank len(priorityTitles) so they sink below every known one.
func titleRank(title string) int {
	for i, t := range priorityTitles {
		if t == title {
			return i
		}
	}
	return len(priorityTitles)
}

// SortCategories returns the categories in menu display order without
// modifying the input slice.
func SortCategories(items []models.Category) []models.Category {
	sorted := make([]models.Category, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return titleRank(sorted[i].Title) < titleRank(sorted[j].Title)
	})
	return sorted
}
