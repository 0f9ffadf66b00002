package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
// svcs must be the process-wide container so every request sees the same catalog.
func CatalogRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/catalog", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListViewHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/all", handlers.NewListAllHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
		r.Route("/view", func(r chi.Router) {
			r.Post("/filter", handlers.NewFilterViewHandler(svcs).Execute)
			r.Post("/sort", handlers.NewSortViewHandler(svcs).Execute)
			r.Delete("/", handlers.NewResetViewHandler(svcs).Execute)
		})
		r.Get("/activity", handlers.NewActivityHandler(svcs).Execute)
	})
}
