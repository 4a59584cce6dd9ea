package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/weshare/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user directly into the users collection.
func (f *Fixtures) CreateUser(ctx context.Context, name, contact string) models.User {
	f.t.Helper()

	id := primitive.NewObjectID()
	user := models.User{ID: &id, Name: name, Contact: contact}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateGroup inserts a group with the given members and no expenses.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, memberIDs ...primitive.ObjectID) models.Group {
	f.t.Helper()

	id := primitive.NewObjectID()
	group := models.Group{ID: &id, Name: name, MemberIDs: memberIDs}
	group.Normalize()

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}
