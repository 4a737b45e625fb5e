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

	"github.com/google/uuid"

	"chimkin/internal/catalog"
	"chimkin/internal/models"
)

// CategoriesGet returns all categories with product counts in menu display
// order. The serialized listing is cached in Valkey; mutations invalidate it.
func (a *API) CategoriesGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if a.catCache != nil {
		if payload, ok := a.catCache.Get(ctx); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(payload)
			return
		}
	}

	items, err := a.categories.List()
	if err != nil {
		slog.Error("category list failed", "error", err)
		writeError(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	sorted := catalog.SortCategories(items)
	if sorted == nil {
		sorted = []models.Category{}
	}

	payload, err := json.Marshal(sorted)
	if err != nil {
		slog.Error("category marshal failed", "error", err)
		writeError(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}
	if a.catCache != nil {
		a.catCache.Set(ctx, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// CategoriesUpload creates a category from a multipart form: an image file
// plus title and optional description. The image is uploaded first; if the
// database insert fails afterwards, the object is deleted again so no
// orphan is left in storage.
func (a *API) CategoriesUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		writeError(w, "object storage is not configured", http.StatusInternalServerError)
		return
	}

	up, ok := readImageUpload(w, r)
	if !ok {
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	if msg := validateCategoryInput(title, description); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	s3Key := fmt.Sprintf("categories/%s%s", uuid.New().String(), up.ext)
	if err := a.storage.Upload(ctx, s3Key, up.contentType, bytes.NewReader(up.data), int64(len(up.data))); err != nil {
		slog.Error("category image upload failed", "error", err, "key", s3Key)
		writeError(w, "failed to upload image", http.StatusInternalServerError)
		return
	}

	created, err := a.categories.Create(&models.Category{
		Title:       title,
		Description: description,
		ImageURL:    a.storage.FileURL(s3Key),
		S3Key:       s3Key,
	})
	if err != nil {
		slog.Error("category insert failed", "error", err, "key", s3Key)
		// Roll back the uploaded object so storage holds no orphan.
		if delErr := a.storage.Delete(ctx, s3Key); delErr != nil {
			slog.Warn("category image rollback failed", "error", delErr, "key", s3Key)
		}
		writeError(w, "failed to create category", http.StatusInternalServerError)
		return
	}

	if a.catCache != nil {
		a.catCache.Invalidate(ctx)
	}
	writeJSON(w, http.StatusCreated, created)
}

// CategoriesDelete removes a category by ID from a JSON body. Products in
// the category go with it via the FK cascade; the stored image is cleaned
// up best-effort.
func (a *API) CategoriesDelete(w http.ResponseWriter, r *http.Request) {
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

	deleted, err := a.categories.Delete(id)
	if err != nil {
		slog.Error("category delete failed", "error", err)
		writeError(w, "failed to delete category", http.StatusInternalServerError)
		return
	}
	if deleted == nil {
		writeError(w, "category not found", http.StatusNotFound)
		return
	}

	ctx := r.Context()
	if a.storage != nil && deleted.S3Key != "" {
		if err := a.storage.Delete(ctx, deleted.S3Key); err != nil {
			slog.Warn("category image delete failed", "error", err, "key", deleted.S3Key)
		}
	}
	if a.catCache != nil {
		a.catCache.Invalidate(ctx)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
