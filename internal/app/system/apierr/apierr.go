// Package apierr defines the error kinds the API reports and how each one
// is rendered over HTTP.
//
// Stores wrap driver errors into one of these kinds with fmt.Errorf("%w"),
// and handlers pass whatever they receive to Write. Raw driver errors never
// reach the client.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/weshare/internal/app/system/reqlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound means no document matched the requested identifier.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID means an identifier string is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrBadBody means the request body could not be decoded into the expected shape.
	ErrBadBody = errors.New("malformed request body")
	// ErrStoreUnavailable means the document store failed or could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ParseID converts the canonical hex form of an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// FromStore classifies an error returned by the Mongo driver.
func FromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrStoreUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrBadBody):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON body sent for every failed request.
type Response struct {
	Error string `json:"error"`
}

// Write renders err as a JSON error response. Server-side failures are
// logged with the request id; their details are not sent to the client.
func Write(w http.ResponseWriter, r *http.Request, log *zap.Logger, op string, err error) {
	status := Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		if log != nil {
			log.Error(op+" failed",
				zap.String("request_id", reqlog.RequestID(r.Context())),
				zap.Error(err))
		}
		msg = ErrStoreUnavailable.Error()
	}
	WriteStatus(w, status, msg)
}

// WriteStatus renders a JSON error body with the given status.
func WriteStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Error: msg})
}
