// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cart implements the shopping cart: an ordered collection of
// product lines with quantities, plus a Valkey-backed store that keeps one
// durable snapshot per visitor token.
//
// Cart values are immutable snapshots. Every operation returns a new Cart
// and never aliases the receiver's line slice, so a loaded snapshot can be
// handed around without defensive copying.
package cart

import (
	"encoding/json"

	"github.com/google/uuid"

	"chimkin/internal/models"
)

// Line is one cart entry: a product snapshot plus the selected quantity.
// The product fields are embedded so the serialized form is the product
// object with a quantity field added.
type Line struct {
	models.Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart holds at most one line per product ID, in insertion order.
// The zero value is an empty cart ready for use.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1. Repeated adds never duplicate lines.
func (c Cart) Add(p models.Product) Cart {
	next := c.copyLines()
	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity++
			return Cart{lines: next}
		}
	}
	next = append(next, Line{Product: p, Quantity: 1})
	return Cart{lines: next}
}

// UpdateQuantity applies a signed delta to the matching line's quantity.
// A resulting quantity of zero or less removes the line; an unknown ID is
// a no-op.
func (c Cart) UpdateQuantity(id uuid.UUID, delta int) Cart {
	next := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.ID == id {
			l.Quantity += delta
			if l.Quantity <= 0 {
				continue
			}
		}
		next = append(next, l)
	}
	return Cart{lines: next}
}

// Remove deletes the line for the product ID if present; no-op otherwise.
func (c Cart) Remove(id uuid.UUID) Cart {
	next := make([]Line, 0, len(c.lines))
	for _, l := range c.lines {
		if l.ID != id {
			next = append(next, l)
		}
	}
	return Cart{lines: next}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Lines returns the cart lines in insertion order. The returned slice is
// a copy; mutating it does not affect the cart.
func (c Cart) Lines() []Line {
	return c.copyLines()
}

// Len returns the number of distinct lines.
func (c Cart) Len() int {
	return len(c.lines)
}

// Total is the sum of price × quantity over all lines.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c Cart) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// MarshalJSON serializes the cart as a flat array of lines, matching the
// snapshot format stored in Valkey.
func (c Cart) MarshalJSON() ([]byte, error) {
	if c.lines == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.lines)
}

// UnmarshalJSON restores a cart from a line array snapshot. Lines with a
// non-positive quantity are dropped rather than resurrected at zero.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	c.lines = c.lines[:0]
	for _, l := range lines {
		if l.Quantity > 0 {
			c.lines = append(c.lines, l)
		}
	}
	return nil
}

func (c Cart) copyLines() []Line {
	if len(c.lines) == 0 {
		return nil
	}
	next := make([]Line, len(c.lines))
	copy(next, c.lines)
	return next
}
