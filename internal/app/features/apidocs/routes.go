// internal/app/features/apidocs/routes.go
package apidocs

import "github.com/go-chi/chi/v5"

// MountRoutes registers the documentation endpoints on the root router.
// They sit beside the functional API rather than under a prefix.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/openapi.json", h.ServeJSON)
	r.Get("/openapi.yaml", h.ServeYAML)
	r.Get("/openapi", h.ServeExplorer)
	r.Get("/swagger", h.ServeSwagger)
}
