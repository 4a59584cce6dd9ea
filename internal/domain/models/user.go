// internal/domain/models/user.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a person who can belong to groups and pay for expenses.
//
// NOTE:
//   - ID is nil until the user has been inserted; the store assigns it.
//   - Group membership is recorded on Group.MemberIDs, not here.
type User struct {
	ID      *primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string              `bson:"name" json:"name"`
	Contact string              `bson:"contact" json:"contact"`
}

// UnmarshalJSON requires id, when present, in canonical hex form.
func (u *User) UnmarshalJSON(b []byte) error {
	var in struct {
		ID      *hexID `json:"id"`
		Name    string `json:"name"`
		Contact string `json:"contact"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*u = User{ID: idPtr(in.ID), Name: in.Name, Contact: in.Contact}
	return nil
}
