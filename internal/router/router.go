// Package router sets up the HTTP routes and middleware chain for the
// ordering API: the catalog CRUD surface and the per-visitor cart.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"chimkin/internal/handlers"
	"chimkin/internal/middleware"
)

// New creates the configured Chi router with all middleware and routes
// wired up. secureCookies marks the cart token cookie HTTPS-only.
func New(api *handlers.API, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CartToken(secureCookies))

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/get", api.CategoriesGet)
			r.Post("/upload", api.CategoriesUpload)
			r.Delete("/delete", api.CategoriesDelete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/get", api.ProductsGet)
			r.Put("/update", api.ProductsUpdate)
			r.Post("/upload", api.ProductsUpload)
			r.Delete("/delete", api.ProductsDelete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", api.CartGet)
			r.Post("/add", api.CartAdd)
			r.Post("/update", api.CartUpdate)
			r.Post("/remove", api.CartRemove)
			r.Post("/clear", api.CartClear)
			r.Post("/checkout", api.CartCheckout)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
