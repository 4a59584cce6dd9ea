// internal/app/store/groups/groupstore.go
package groupstore

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

// Collection is the name of the groups collection.
const Collection = "groups"

type Store struct {
	c *mongo.Collection

	// beforeReread runs between a mutation and its read-back. Tests only.
	beforeReread func(ctx context.Context, id primitive.ObjectID)
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns the groups matching f in insertion order. The member and
// payer filters are served by idx_groups_member_ids and
// idx_groups_expense_payer.
func (s *Store) List(ctx context.Context, f models.GroupFilter) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, listFilter(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apierr.FromStore(err)
	}
	out := []models.Group{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierr.FromStore(err)
	}
	for i := range out {
		out[i].Normalize()
	}
	return out, nil
}

func listFilter(f models.GroupFilter) bson.M {
	q := bson.M{}
	if f.MemberID != nil {
		q["member_ids"] = *f.MemberID
	}
	if f.PayerID != nil {
		q["expenses.payer_id"] = *f.PayerID
	}
	return q
}

// GetByID loads a group by ObjectID. Returns apierr.ErrNotFound if it does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.Group{}, fmt.Errorf("group %s: %w", id.Hex(), apierr.FromStore(err))
	}
	g.Normalize()
	return g, nil
}

// Create inserts g under a freshly assigned ID. Nil member and expense
// sequences are stored as empty arrays.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	id := primitive.NewObjectID()
	g.ID = &id
	g.Normalize()
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Group{}, apierr.FromStore(err)
	}
	return g, nil
}

// Delete removes a group by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, apierr.FromStore(err)
	}
	return res.DeletedCount, nil
}

// AddMember adds userID to the group's member_ids unless it is already there.
func (s *Store) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error) {
	return s.updateAndFetch(ctx, groupID, bson.M{"$addToSet": bson.M{"member_ids": userID}})
}

// RemoveMember removes every occurrence of userID from member_ids.
// Removing a user that is not a member leaves the group unchanged.
func (s *Store) RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error) {
	return s.updateAndFetch(ctx, groupID, bson.M{"$pull": bson.M{"member_ids": userID}})
}

// AddExpense appends e to the group's expenses. Identical expenses are kept
// as separate entries.
func (s *Store) AddExpense(ctx context.Context, groupID primitive.ObjectID, e models.Expense) (models.Group, error) {
	return s.updateAndFetch(ctx, groupID, bson.M{"$push": bson.M{"expenses": e}})
}

// updateAndFetch applies one update to the group and reads it back by the
// same ID. The two steps are not atomic: a delete in between surfaces as
// apierr.ErrNotFound.
func (s *Store) updateAndFetch(ctx context.Context, id primitive.ObjectID, update bson.M) (models.Group, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return models.Group{}, fmt.Errorf("group %s: %w", id.Hex(), apierr.FromStore(err))
	}
	if res.MatchedCount == 0 {
		return models.Group{}, fmt.Errorf("group %s: %w", id.Hex(), apierr.ErrNotFound)
	}
	if s.beforeReread != nil {
		s.beforeReread(ctx, id)
	}
	return s.GetByID(ctx, id)
}
