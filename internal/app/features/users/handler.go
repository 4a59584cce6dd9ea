// internal/app/features/users/handler.go
package users

import (
	"context"

	"github.com/dalemusser/weshare/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the persistence contract the users feature depends on.
// userstore.Store satisfies it against MongoDB.
type Store interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Handler is the dependency container for the users endpoints.
type Handler struct {
	Users Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler. It is called from the bootstrap
// BuildHandler function with the Mongo-backed store.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: store,
		Log:   logger,
	}
}
