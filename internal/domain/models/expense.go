// internal/domain/models/expense.go
package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cents is a non-negative amount in minor currency units.
type Cents uint32

// Expense is embedded in its Group and has no identity of its own.
type Expense struct {
	Name    string             `bson:"name" json:"name"`
	Price   Cents              `bson:"price" json:"price"`
	PayerID primitive.ObjectID `bson:"payer_id" json:"payer_id"`
}

// UnmarshalJSON requires payer_id in canonical hex form.
func (e *Expense) UnmarshalJSON(b []byte) error {
	var in struct {
		Name    string `json:"name"`
		Price   Cents  `json:"price"`
		PayerID *hexID `json:"payer_id"`
	}
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in.PayerID == nil {
		return errMissingPayer
	}
	*e = Expense{Name: in.Name, Price: in.Price, PayerID: primitive.ObjectID(*in.PayerID)}
	return nil
}
