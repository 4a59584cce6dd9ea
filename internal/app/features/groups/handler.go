// internal/app/features/groups/handler.go
package groups

import (
	"context"

	"github.com/dalemusser/weshare/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the persistence contract the groups feature depends on.
// groupstore.Store satisfies it against MongoDB.
type Store interface {
	List(ctx context.Context, f models.GroupFilter) ([]models.Group, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error)
	Create(ctx context.Context, g models.Group) (models.Group, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	AddMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error)
	RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error)
	AddExpense(ctx context.Context, groupID primitive.ObjectID, e models.Expense) (models.Group, error)
}

// Handler is the shared dependency container for the groups feature.
// The group, membership and expense endpoints all go through the same store.
type Handler struct {
	Groups Store
	Log    *zap.Logger
}

// NewHandler constructs a new groups Handler. It is typically called
// from the bootstrap BuildHandler function, where the application's
// store and logger are already initialized.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		Groups: store,
		Log:    logger,
	}
}
