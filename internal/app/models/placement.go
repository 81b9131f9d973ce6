package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Placement is a per-student placement outcome snapshot, at most one per
// register number. It is created or updated when a student reports an offer.
type Placement struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	RegisterNumber string             `json:"register_number" bson:"register_number"`
	Email          string             `json:"email" bson:"email"`
	PhoneNumber    string             `json:"phone_number" bson:"phone_number"`
	PassOutYear    int                `json:"pass_out_year" bson:"pass_out_year"`
	PlacedCompany  string             `json:"placed_company" bson:"placed_company"`
	CTC            float64            `json:"ctc" bson:"ctc"`
}
