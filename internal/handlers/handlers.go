// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the catalog CRUD
// surface and the cart/checkout API. Handlers are thin: validate input,
// call one store operation, map the result to a JSON response.
package handlers

import (
	"encoding/json"
	"net/http"

	"chimkin/internal/cache"
	"chimkin/internal/cart"
	"chimkin/internal/checkout"
	"chimkin/internal/storage"
	"chimkin/internal/store"
)

// maxUploadSize is the maximum allowed image upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedImageTypes defines MIME types accepted for catalog images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// API bundles the dependencies shared by all HTTP handlers.
type API struct {
	categories *store.CategoryStore
	products   *store.ProductStore
	storage    *storage.Client
	catCache   *cache.CategoryCache
	carts      *cart.Store
	checkout   *checkout.Builder
}

// NewAPI creates the handler set. storageClient may be nil, in which case
// upload routes respond with an error instead of failing at startup.
func NewAPI(
	categories *store.CategoryStore,
	products *store.ProductStore,
	storageClient *storage.Client,
	catCache *cache.CategoryCache,
	carts *cart.Store,
	wa *checkout.Builder,
) *API {
	return &API{
		categories: categories,
		products:   products,
		storage:    storageClient,
		catCache:   catCache,
		carts:      carts,
		checkout:   wa,
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body of the form {"error": msg}.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
