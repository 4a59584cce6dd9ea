// internal/app/features/groups/routes.go
package groups

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /groups.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// GROUPS
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeGroup)
	r.Delete("/{id}", h.HandleDelete)

	// MEMBERS
	r.Put("/{id}/members/{userID}", h.HandleAddMember)
	r.Delete("/{id}/members/{userID}", h.HandleRemoveMember)

	// EXPENSES
	r.Put("/{id}/expenses", h.HandleAddExpense)

	return r
}
