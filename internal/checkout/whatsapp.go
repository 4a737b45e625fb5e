// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package checkout turns a cart and customer details into a WhatsApp
// order message. No order is persisted; the deep link hands the
// conversation over to the restaurant's WhatsApp number.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"chimkin/internal/cart"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingCustomer = errors.New("name, phone and address are required")
	ErrInvalidPhone    = errors.New("phone number is not valid")
)

// phoneRe accepts digits with the usual separators, 6 to 20 characters.
var phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{6,20}$`)

// CustomerDetails is what the visitor fills in before ordering.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate checks that every field carries a non-blank value and that the
// phone number has a plausible shape.
func (d CustomerDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Phone) == "" ||
		strings.TrimSpace(d.Address) == "" {
		return ErrMissingCustomer
	}
	if !phoneRe.MatchString(strings.TrimSpace(d.Phone)) {
		return ErrInvalidPhone
	}
	return nil
}

// Builder formats order messages for one restaurant.
type Builder struct {
	number     string
	restaurant string
}

// NewBuilder creates a Builder for the given WhatsApp number (digits,
// country code included, no plus sign) and restaurant display name.
func NewBuilder(number, restaurant string) *Builder {
	return &Builder{number: number, restaurant: restaurant}
}

// Message renders the order as the WhatsApp text body.
func (b *Builder) Message(c cart.Cart, details CustomerDetails) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*NEW ORDER REQUEST - %s*\n\n", b.restaurant)
	sb.WriteString("*CUSTOMER DETAILS*\n")
	fmt.Fprintf(&sb, "Name: %s\n", details.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", details.Phone)
	fmt.Fprintf(&sb, "Address: %s\n\n", details.Address)

	sb.WriteString("*ORDER SUMMARY*\n")
	for _, line := range c.Lines() {
		fmt.Fprintf(&sb, "• *%dx* %s ($%.2f)\n", line.Quantity, line.Name, line.Subtotal())
	}

	fmt.Fprintf(&sb, "\n*TOTAL: $%.2f*", c.Total())
	return sb.String()
}

// Link validates the order and returns the wa.me deep link that opens a
// WhatsApp conversation pre-filled with the order message.
func (b *Builder) Link(c cart.Cart, details CustomerDetails) (string, error) {
	if err := details.Validate(); err != nil {
		return "", err
	}
	if c.Len() == 0 {
		return "", ErrEmptyCart
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		b.number, url.QueryEscape(b.Message(c, details))), nil
}
