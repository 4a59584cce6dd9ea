// Package route reads the matched chi route from a request.
package route

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Unmatched is reported for requests no route handled.
const Unmatched = "unmatched"

// Pattern returns the chi pattern that matched r, such as "/groups/{id}",
// or Unmatched. Call it after the router has served r.
func Pattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return Unmatched
}
