// internal/app/system/httpjson/httpjson.go
package httpjson

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
)

// MaxBodyBytes bounds how much of a request body Decode will read.
const MaxBodyBytes = 1 << 20

// Write encodes v as the JSON response body.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteText writes a plain-text response body.
func WriteText(w http.ResponseWriter, status int, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, s)
}

// Decode reads a single JSON value from the request body into v.
// Any failure, including an empty body or trailing data, is reported as
// apierr.ErrBadBody.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", apierr.ErrBadBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", apierr.ErrBadBody)
	}
	return nil
}
