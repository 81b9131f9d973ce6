package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Execom is a student-council staff member. Accounts are created out of band;
// only the password is ever updated through the API. Designation is unique.
type Execom struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Designation string             `json:"designation" bson:"designation"`
	Password    string             `json:"-" bson:"password"`
}
