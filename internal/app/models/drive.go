package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriveRequirements is the eligibility sub-record of a drive. Every field is
// optional; an unset threshold never excludes a student.
type DriveRequirements struct {
	Gender           []string `json:"gender,omitempty" bson:"gender,omitempty"`
	TenthMark        *Marks   `json:"tenth_mark,omitempty" bson:"tenth_mark,omitempty"`
	PlusTwoMark      *Marks   `json:"plus_two_mark,omitempty" bson:"plus_two_mark,omitempty"`
	BtechMinCGPA     *float64 `json:"btech_min_cgpa,omitempty" bson:"btech_min_cgpa,omitempty"`
	NumberOfBacklogs *int     `json:"number_of_backlogs,omitempty" bson:"number_of_backlogs,omitempty"`
}

// Drive is a placement opportunity posted by staff. RegisteredStudents holds
// register numbers, each at most once.
type Drive struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CreatedDate        time.Time          `json:"created_date" bson:"created_date"`
	CompanyName        string             `json:"company_name" bson:"company_name"`
	Position           string             `json:"position" bson:"position"`
	Description        string             `json:"description" bson:"description"`
	ContactEmail       string             `json:"contact_email" bson:"contact_email"`
	DriveDate          time.Time          `json:"drive_date" bson:"drive_date"`
	Location           string             `json:"location" bson:"location"`
	Salary             string             `json:"salary" bson:"salary"`
	URL                string             `json:"url,omitempty" bson:"url,omitempty"`
	Requirements       DriveRequirements  `json:"requirements" bson:"requirements"`
	RegisteredStudents []string           `json:"registered_students" bson:"registered_students"`
}
