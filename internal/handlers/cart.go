// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"chimkin/internal/cart"
	"chimkin/internal/checkout"
	"chimkin/internal/middleware"
	"chimkin/internal/models"
)

// cartResponse is the JSON shape for all cart reads and mutations.
type cartResponse struct {
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
	Count int         `json:"count"`
}

func newCartResponse(c cart.Cart) cartResponse {
	items := c.Lines()
	if items == nil {
		items = []cart.Line{}
	}
	return cartResponse{Items: items, Total: c.Total(), Count: c.Count()}
}

// cartToken extracts the visitor token placed in the context by the
// CartToken middleware. A missing token means the route was mounted
// without it, which is a wiring bug, not a client error.
func (a *API) cartToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := middleware.CartTokenFromCtx(r.Context())
	if token == "" {
		slog.Error("cart route served without cart token middleware")
		writeError(w, "cart unavailable", http.StatusInternalServerError)
		return "", false
	}
	return token, true
}

// CartGet returns the visitor's current cart with derived totals.
func (a *API) CartGet(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}
	c := a.carts.Load(r.Context(), token)
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// CartAdd adds one unit of a product to the cart. The body carries the
// full product snapshot so the cart keeps the price the visitor saw.
func (a *API) CartAdd(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.ID == uuid.Nil {
		writeError(w, "product id is required", http.StatusBadRequest)
		return
	}
	if p.Name == "" || p.Price < 0 {
		writeError(w, "invalid product", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	c := a.carts.Load(ctx, token).Add(p)
	if err := a.carts.Save(ctx, token, c); err != nil {
		slog.Error("cart save failed", "error", err)
		writeError(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// CartUpdate applies a signed quantity delta to a cart line. A quantity
// dropping to zero or below removes the line.
func (a *API) CartUpdate(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}

	var req struct {
		ID    string `json:"id"`
		Delta int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, "id is required", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	c := a.carts.Load(ctx, token).UpdateQuantity(id, req.Delta)
	if err := a.carts.Save(ctx, token, c); err != nil {
		slog.Error("cart save failed", "error", err)
		writeError(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// CartRemove deletes a cart line unconditionally.
func (a *API) CartRemove(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, "id is required", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	c := a.carts.Load(ctx, token).Remove(id)
	if err := a.carts.Save(ctx, token, c); err != nil {
		slog.Error("cart save failed", "error", err)
		writeError(w, "failed to update cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(c))
}

// CartClear empties the cart and erases its durable snapshot.
func (a *API) CartClear(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}
	if err := a.carts.Clear(r.Context(), token); err != nil {
		slog.Error("cart clear failed", "error", err)
		writeError(w, "failed to clear cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart.New()))
}

// CartCheckout validates the customer details against the current cart and
// returns the WhatsApp deep link. The cart is cleared once the link is
// handed out; the conversation continues on WhatsApp.
func (a *API) CartCheckout(w http.ResponseWriter, r *http.Request) {
	token, ok := a.cartToken(w, r)
	if !ok {
		return
	}

	var details checkout.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	c := a.carts.Load(ctx, token)

	link, err := a.checkout.Link(c, details)
	if err != nil {
		if errors.Is(err, checkout.ErrMissingCustomer) ||
			errors.Is(err, checkout.ErrInvalidPhone) ||
			errors.Is(err, checkout.ErrEmptyCart) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("checkout failed", "error", err)
		writeError(w, "checkout failed", http.StatusInternalServerError)
		return
	}

	if err := a.carts.Clear(ctx, token); err != nil {
		slog.Warn("cart clear after checkout failed", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}
