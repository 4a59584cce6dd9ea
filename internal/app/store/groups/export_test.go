package groupstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SetBeforeReread installs fn between a mutation and its read-back.
func SetBeforeReread(s *Store, fn func(ctx context.Context, id primitive.ObjectID)) {
	s.beforeReread = fn
}
