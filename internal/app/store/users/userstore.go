// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"fmt"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the users collection.
const Collection = "users"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every user in insertion order.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierr.FromStore(err)
	}
	return out, nil
}

// GetByID loads a user by ObjectID. Returns apierr.ErrNotFound if it does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), apierr.FromStore(err))
	}
	return u, nil
}

// Create inserts u under a freshly assigned ID. Any ID already on u is replaced.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	id := primitive.NewObjectID()
	u.ID = &id
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, apierr.FromStore(err)
	}
	return u, nil
}

// Delete removes a user by ID. Returns the number of documents deleted (0 or 1).
//
// Groups that list the user in member_ids or as an expense payer are left as is.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, apierr.FromStore(err)
	}
	return res.DeletedCount, nil
}
