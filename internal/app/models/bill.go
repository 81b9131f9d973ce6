package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill is an administrative expense record. Bills are created and deleted but
// never mutated.
type Bill struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedDate     time.Time          `json:"created_date" bson:"created_date"`
	BillTitle       string             `json:"bill_title" bson:"bill_title"`
	BillDate        time.Time          `json:"bill_date" bson:"bill_date"`
	BillAmount      float64            `json:"bill_amount" bson:"bill_amount"`
	BillDescription string             `json:"bill_description" bson:"bill_description"`
}
