package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/dalemusser/weshare/internal/app/system/apierr"
	"github.com/dalemusser/weshare/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory stand-in for the Mongo-backed user and group
// stores. It mirrors their observable behavior: insertion-ordered lists,
// store-assigned IDs, $addToSet/$pull/$push semantics and apierr kinds.
//
// Setting Err makes every call fail with that error, which handler tests use
// to simulate an unreachable store.
type MemStore struct {
	mu     sync.Mutex
	users  []models.User
	groups []models.Group

	Err error
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Users returns a view implementing the user store operations.
func (m *MemStore) Users() *MemUsers { return &MemUsers{m: m} }

// Groups returns a view implementing the group store operations.
func (m *MemStore) Groups() *MemGroups { return &MemGroups{m: m} }

func (m *MemStore) fail() error {
	if m.Err != nil {
		return fmt.Errorf("%w: %v", apierr.ErrStoreUnavailable, m.Err)
	}
	return nil
}

// MemUsers is the user side of a MemStore.
type MemUsers struct{ m *MemStore }

func (s *MemUsers) List(ctx context.Context) ([]models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return nil, err
	}
	out := make([]models.User, len(s.m.users))
	copy(out, s.m.users)
	return out, nil
}

func (s *MemUsers) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return models.User{}, err
	}
	for _, u := range s.m.users {
		if *u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", id.Hex(), apierr.ErrNotFound)
}

func (s *MemUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return models.User{}, err
	}
	id := primitive.NewObjectID()
	u.ID = &id
	s.m.users = append(s.m.users, u)
	return u, nil
}

func (s *MemUsers) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return 0, err
	}
	for i, u := range s.m.users {
		if *u.ID == id {
			s.m.users = append(s.m.users[:i], s.m.users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// MemGroups is the group side of a MemStore.
type MemGroups struct{ m *MemStore }

func (s *MemGroups) List(ctx context.Context, f models.GroupFilter) ([]models.Group, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return nil, err
	}
	out := make([]models.Group, 0, len(s.m.groups))
	for _, g := range s.m.groups {
		if f.Matches(g) {
			out = append(out, cloneGroup(g))
		}
	}
	return out, nil
}

func (s *MemGroups) GetByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return models.Group{}, err
	}
	i := s.index(id)
	if i < 0 {
		return models.Group{}, fmt.Errorf("group %s: %w", id.Hex(), apierr.ErrNotFound)
	}
	return cloneGroup(s.m.groups[i]), nil
}

func (s *MemGroups) Create(ctx context.Context, g models.Group) (models.Group, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return models.Group{}, err
	}
	id := primitive.NewObjectID()
	g.ID = &id
	g = cloneGroup(g)
	s.m.groups = append(s.m.groups, g)
	return cloneGroup(g), nil
}

func (s *MemGroups) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return 0, err
	}
	i := s.index(id)
	if i < 0 {
		return 0, nil
	}
	s.m.groups = append(s.m.groups[:i], s.m.groups[i+1:]...)
	return 1, nil
}

func (s *MemGroups) AddMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error) {
	return s.update(groupID, func(g *models.Group) {
		if !g.HasMember(userID) {
			g.MemberIDs = append(g.MemberIDs, userID)
		}
	})
}

func (s *MemGroups) RemoveMember(ctx context.Context, groupID, userID primitive.ObjectID) (models.Group, error) {
	return s.update(groupID, func(g *models.Group) {
		kept := g.MemberIDs[:0]
		for _, id := range g.MemberIDs {
			if id != userID {
				kept = append(kept, id)
			}
		}
		g.MemberIDs = kept
	})
}

func (s *MemGroups) AddExpense(ctx context.Context, groupID primitive.ObjectID, e models.Expense) (models.Group, error) {
	return s.update(groupID, func(g *models.Group) {
		g.Expenses = append(g.Expenses, e)
	})
}

func (s *MemGroups) update(id primitive.ObjectID, fn func(*models.Group)) (models.Group, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if err := s.m.fail(); err != nil {
		return models.Group{}, err
	}
	i := s.index(id)
	if i < 0 {
		return models.Group{}, fmt.Errorf("group %s: %w", id.Hex(), apierr.ErrNotFound)
	}
	fn(&s.m.groups[i])
	return cloneGroup(s.m.groups[i]), nil
}

func (s *MemGroups) index(id primitive.ObjectID) int {
	for i, g := range s.m.groups {
		if *g.ID == id {
			return i
		}
	}
	return -1
}

func cloneGroup(g models.Group) models.Group {
	out := g
	out.MemberIDs = append([]primitive.ObjectID{}, g.MemberIDs...)
	out.Expenses = append([]models.Expense{}, g.Expenses...)
	return out
}
