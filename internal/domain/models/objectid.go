// internal/domain/models/objectid.go
package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// hexID decodes an identifier from its canonical JSON form: a string of
// 24 hex digits. primitive.ObjectID's own UnmarshalJSON also accepts any
// 12-byte token as raw bytes and "" as the nil id, so request bodies go
// through this instead.
type hexID primitive.ObjectID

func (h *hexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("object id must be a hex string, got %s", b)
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return fmt.Errorf("object id %q: %w", s, err)
	}
	*h = hexID(id)
	return nil
}

// errMissingPayer is returned when an expense body has no payer_id.
var errMissingPayer = errors.New("payer_id is required")

func idPtr(h *hexID) *primitive.ObjectID {
	if h == nil {
		return nil
	}
	id := primitive.ObjectID(*h)
	return &id
}
