// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"chimkin/internal/models"
)

// PageSize is the number of products the API returns per request. A batch
// shorter than this signals the end of the data.
const PageSize = 8

// AllCategories selects products across every category.
const AllCategories = "all"

// ProductSource supplies one page of products at a time. categoryID is
// AllCategories or a category UUID string; offset counts items, not pages.
type ProductSource interface {
	Products(ctx context.Context, categoryID string, offset int) ([]models.Product, error)
}

// Feed accumulates product pages for one browsing session and applies the
// free-text filter over what has been loaded so far. LoadMore is the
// sentinel trigger: call it when the visitor nears the end of the list.
//
// Switching category invalidates any fetch still in flight: the response
// is discarded instead of being appended under the new category.
type Feed struct {
	mu     sync.Mutex
	source ProductSource

	category string
	query    string

	items      []models.Product
	offset     int
	hasMore    bool
	fetching   bool
	generation uint64
}

// NewFeed creates a feed over the given source, positioned at the start
// of the all-categories listing.
func NewFeed(source ProductSource) *Feed {
	return &Feed{
		source:   source,
		category: AllCategories,
		hasMore:  true,
	}
}

// SetCategory switches the active category and resets the feed: loaded
// items are dropped, the offset returns to zero, and end-of-data state is
// cleared. An in-flight fetch for the previous category is invalidated.
func (f *Feed) SetCategory(id string) {
	if id == "" {
		id = AllCategories
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if id == f.category {
		return
	}
	f.category = id
	f.items = nil
	f.offset = 0
	f.hasMore = true
	f.generation++
}

// SetQuery sets the free-text filter applied by Products. It does not
// trigger or reset any fetching; the filter only narrows loaded items.
func (f *Feed) SetQuery(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = q
}

// LoadMore fetches the next page and appends it. It is a no-op when a
// fetch is already in flight or when the end of the data was reached.
// A failed fetch is logged and leaves the loaded items untouched.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.fetching || !f.hasMore {
		f.mu.Unlock()
		return nil
	}
	f.fetching = true
	gen := f.generation
	category := f.category
	offset := f.offset
	f.mu.Unlock()

	batch, err := f.source.Products(ctx, category, offset)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetching = false

	// The category changed while we were fetching; this response belongs
	// to an abandoned view. Drop it rather than appending it under the
	// new category.
	if gen != f.generation {
		return nil
	}

	if err != nil {
		slog.Warn("product fetch failed", "category", category, "offset", offset, "error", err)
		return err
	}

	f.items = append(f.items, batch...)
	f.offset += len(batch)
	f.hasMore = len(batch) == PageSize
	return nil
}

// Products returns the loaded items, narrowed by the current query: a
// case-insensitive substring match against name or description. Filtering
// never reaches past what has been loaded.
func (f *Feed) Products() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.query == "" {
		out := make([]models.Product, len(f.items))
		copy(out, f.items)
		return out
	}

	q := strings.ToLower(f.query)
	var out []models.Product
	for _, p := range f.items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// HasMore reports whether another page is believed to exist.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Fetching reports whether a page fetch is currently in flight.
func (f *Feed) Fetching() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetching
}

// Category returns the active category selector.
func (f *Feed) Category() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}
