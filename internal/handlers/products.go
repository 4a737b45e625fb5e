// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"chimkin/internal/imaging"
	"chimkin/internal/models"
)

// ProductsGet returns one page of available products, newest first.
// Query parameters: start (item offset, default 0) and category_id
// (optional filter). A batch shorter than the page size tells the client
// there is no further data.
func (a *API) ProductsGet(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if s := r.URL.Query().Get("start"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, "invalid start", http.StatusBadRequest)
			return
		}
		offset = n
	}

	var categoryID *uuid.UUID
	if s := r.URL.Query().Get("category_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(w, "invalid category_id", http.StatusBadRequest)
			return
		}
		categoryID = &id
	}

	items, err := a.products.List(categoryID, offset)
	if err != nil {
		slog.Error("product list failed", "error", err)
		writeError(w, "failed to fetch products", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Product{}
	}
	writeJSON(w, http.StatusOK, items)
}

// ProductsUpdate modifies a product's name, price and description from a
// JSON body and returns the updated row.
func (a *API) ProductsUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
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
	if msg := validateProductInput(req.Name, req.Price, req.Description); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	updated, err := a.products.Update(id, req.Name, req.Price, req.Description)
	if err != nil {
		slog.Error("product update failed", "error", err)
		writeError(w, "failed to update product", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		writeError(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ProductsUpload creates a product from a multipart form: an image file
// plus name, category_id, price and optional description. The original is
// uploaded first and a thumbnail is generated best-effort; if the database
// insert fails afterwards, both objects are deleted again.
func (a *API) ProductsUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, "object storage is not configured", http.StatusInternalServerError)
		return
	}

	up, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	name := r.FormValue("name")
	description := r.FormValue("description")

	categoryStr := r.FormValue("category_id")
	if categoryStr == "" {
		writeError(w, "category_id is required", http.StatusBadRequest)
		return
	}
	categoryID, err := uuid.Parse(categoryStr)
	if err != nil {
		writeError(w, "invalid category_id", http.StatusBadRequest)
		return
	}

	priceStr := r.FormValue("price")
	if priceStr == "" {
		writeError(w, "price is required", http.StatusBadRequest)
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		writeError(w, "invalid price", http.StatusBadRequest)
		return
	}
	if msg := validateProductInput(name, price, description); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	fileID := uuid.New().String()
	s3Key := fmt.Sprintf("products/%s%s", fileID, up.ext)
	if err := a.storage.Upload(ctx, s3Key, up.contentType, bytes.NewReader(up.data), int64(len(up.data))); err != nil {
		slog.Error("product image upload failed", "error", err, "key", s3Key)
		writeError(w, "failed to upload image", http.StatusInternalServerError)
		return
	}

	// Thumbnail is best-effort. GIFs are skipped to preserve animation.
	var thumbKey *string
	if up.contentType != "image/gif" {
		thumbData, err := imaging.Thumbnail(bytes.NewReader(up.data), imaging.ThumbMaxWidth)
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", s3Key)
		} else if thumbData != nil {
			tk := fmt.Sprintf("products/%s_thumb.jpg", fileID)
			if err := a.storage.Upload(ctx, tk, "image/jpeg", bytes.NewReader(thumbData), int64(len(thumbData))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbKey = &tk
			}
		}
	}

	created, err := a.products.Create(&models.Product{
		CategoryID:  categoryID,
		Name:        name,
		Price:       price,
		Description: description,
		ImageURL:    a.storage.FileURL(s3Key),
		S3Key:       s3Key,
		ThumbS3Key:  thumbKey,
	})
	if err != nil {
		slog.Error("product insert failed", "error", err, "key", s3Key)
		// Roll back uploaded objects so storage holds no orphans.
		if delErr := a.storage.Delete(ctx, s3Key); delErr != nil {
			slog.Warn("product image rollback failed", "error", delErr, "key", s3Key)
		}
		if thumbKey != nil {
			if delErr := a.storage.Delete(ctx, *thumbKey); delErr != nil {
				slog.Warn("thumbnail rollback failed", "error", delErr, "key", *thumbKey)
			}
		}
		writeError(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	if a.catCache != nil {
		a.catCache.Invalidate(ctx)
	}
	writeJSON(w, http.StatusCreated, created)
}

// ProductsDelete removes a product by ID from a JSON body. Stored images
// are cleaned up best-effort after the row is gone.
func (a *API) ProductsDelete(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := a.products.Delete(id)
	if err != nil {
		slog.Error("product delete failed", "error", err)
		writeError(w, "failed to delete product", http.StatusInternalServerError)
		return
	}
	if deleted == nil {
		writeError(w, "product not found", http.StatusNotFound)
		return
	}

	ctx := r.Context()
	if a.storage != nil {
		if deleted.S3Key != "" {
			if err := a.storage.Delete(ctx, deleted.S3Key); err != nil {
				slog.Warn("product image delete failed", "error", err, "key", deleted.S3Key)
			}
		}
		if deleted.ThumbS3Key != nil {
			if err := a.storage.Delete(ctx, *deleted.ThumbS3Key); err != nil {
				slog.Warn("thumbnail delete failed", "error", err, "key", *deleted.ThumbS3Key)
			}
		}
	}
	if a.catCache != nil {
		a.catCache.Invalidate(ctx)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}
