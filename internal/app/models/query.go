package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question is the student-authored half of a forum post.
type Question struct {
	Question    string `json:"question" bson:"question"`
	StudentName string `json:"student_name" bson:"student_name"`
	StudentID   string `json:"student_id" bson:"student_id"`
}

// Answer is the staff-authored half of a forum post.
type Answer struct {
	Answer      string `json:"answer" bson:"answer"`
	Designation string `json:"designation" bson:"designation"`
}

// Query is a forum post: a question plus an optional answer. Only the original
// author may edit the question; any staff principal may answer.
type Query struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedDate time.Time          `json:"created_date" bson:"created_date"`
	Question    Question           `json:"question" bson:"question"`
	Answer      *Answer            `json:"answer,omitempty" bson:"answer,omitempty"`
}
