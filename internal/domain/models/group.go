// internal/domain/models/group.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a set of users sharing expenses.
//
// NOTE:
//   - MemberIDs and Expenses are stored as arrays even when empty so that
//     $addToSet, $pull and $push apply to freshly created groups.
//   - MemberIDs entries are not checked against the users collection.
type Group struct {
	ID        *primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string               `bson:"name" json:"name"`
	MemberIDs []primitive.ObjectID `bson:"member_ids" json:"member_ids"`
	Expenses  []Expense            `bson:"expenses" json:"expenses"`
}

// Normalize replaces nil sequences with empty ones.
func (g *Group) Normalize() {
	if g.MemberIDs == nil {
		g.MemberIDs = []primitive.ObjectID{}
	}
	if g.Expenses == nil {
		g.Expenses = []Expense{}
	}
}

// HasMember reports whether userID appears in MemberIDs.
func (g Group) HasMember(userID primitive.ObjectID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// UnmarshalJSON requires id and member_ids in canonical hex form.
func (g *Group) UnmarshalJSON(b []byte) error {
	var in struct {
		ID        *hexID    `json:"id"`
		Name      string    `json:"name"`
		MemberIDs []hexID   `json:"member_ids"`
		Expenses  []Expense `json:"expenses"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*g = Group{ID: idPtr(in.ID), Name: in.Name, Expenses: in.Expenses}
	if in.MemberIDs != nil {
		g.MemberIDs = make([]primitive.ObjectID, len(in.MemberIDs))
		for i, id := range in.MemberIDs {
			g.MemberIDs[i] = primitive.ObjectID(id)
		}
	}
	return nil
}

// GroupFilter narrows a group listing. Nil fields match every group.
type GroupFilter struct {
	MemberID *primitive.ObjectID // groups whose member_ids contain this user
	PayerID  *primitive.ObjectID // groups with at least one expense paid by this user
}

// Matches reports whether g satisfies f.
func (f GroupFilter) Matches(g Group) bool {
	if f.MemberID != nil && !g.HasMember(*f.MemberID) {
		return false
	}
	if f.PayerID != nil {
		for _, e := range g.Expenses {
			if e.PayerID == *f.PayerID {
				return true
			}
		}
		return false
	}
	return true
}
