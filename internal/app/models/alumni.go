package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Alumni is a denormalized copy of a graduated student, created in bulk from
// Student records of a pass-out year. Its lifecycle is independent afterwards.
type Alumni struct {
	ID              primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Email           string             `json:"email" bson:"email"`
	Address         *Address           `json:"address,omitempty" bson:"address,omitempty"`
	PhoneNumber     string             `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	PlacementStatus bool               `json:"placement_status" bson:"placement_status"`
	PlacedCompany   string             `json:"placed_company,omitempty" bson:"placed_company,omitempty"`
	CTC             float64            `json:"ctc,omitempty" bson:"ctc,omitempty"`
}
