package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for catalog fields.
const (
	maxTitleLen       = 200
	maxNameLen        = 200
	maxDescriptionLen = 2_000
	maxPrice          = 100_000
)

// validateCategoryInput checks category form inputs and returns the first
// error found, or "" when the input is acceptable.
func validateCategoryInput(title, description string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 200 characters)"
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "description is too long (max 2,000 characters)"
	}
	return ""
}

// validateProductInput checks product name, price and description.
func validateProductInput(name string, price float64, description string) string {
	if strings.TrimSpace(name) == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "name is too long (max 200 characters)"
	}
	if price < 0 {
		return "price must not be negative"
	}
	if price > maxPrice {
		return "price is out of range"
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return "description is too long (max 2,000 characters)"
	}
	return ""
}
