package route_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/weshare/internal/app/system/route"
	"github.com/go-chi/chi/v5"
)

func TestPattern(t *testing.T) {
	var got string
	capture := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			got = route.Pattern(r)
		})
	}

	groups := chi.NewRouter()
	groups.Put("/{id}/members/{userID}", func(w http.ResponseWriter, r *http.Request) {})

	r := chi.NewRouter()
	r.Use(capture)
	r.Mount("/groups", groups)

	tests := []struct {
		target string
		want   string
	}{
		{"/groups/abc/members/def", "/groups/{id}/members/{userID}"},
		{"/nope", route.Unmatched},
	}
	for _, tt := range tests {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, tt.target, nil))
		if got != tt.want {
			t.Errorf("Pattern(%s): got %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestPattern_OutsideRouter(t *testing.T) {
	if got := route.Pattern(httptest.NewRequest(http.MethodGet, "/", nil)); got != route.Unmatched {
		t.Errorf("got %q, want %q", got, route.Unmatched)
	}
}
