package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a placement-cell student record. The register number doubles as
// the institutional username and the natural key; register_number and email
// are unique across the collection.
type Student struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RegisterNumber        string             `json:"register_number" bson:"register_number"`
	Password              string             `json:"-" bson:"password"`
	Name                  string             `json:"name,omitempty" bson:"name,omitempty"`
	Branch                string             `json:"branch,omitempty" bson:"branch,omitempty"`
	PassOutYear           int                `json:"pass_out_year,omitempty" bson:"pass_out_year,omitempty"`
	DateOfBirth           *time.Time         `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Gender                string             `json:"gender,omitempty" bson:"gender,omitempty"`
	TenthMark             *Marks             `json:"tenth_mark,omitempty" bson:"tenth_mark,omitempty"`
	PlusTwoMark           *Marks             `json:"plus_two_mark,omitempty" bson:"plus_two_mark,omitempty"`
	BtechCGPA             *float64           `json:"btech_cgpa,omitempty" bson:"btech_cgpa,omitempty"`
	NumberOfBacklogs      *int               `json:"number_of_backlogs,omitempty" bson:"number_of_backlogs,omitempty"`
	Email                 string             `json:"email" bson:"email"`
	PhoneNumber           string             `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address               *Address           `json:"address,omitempty" bson:"address,omitempty"`
	LinkedIn              string             `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Twitter               string             `json:"twitter,omitempty" bson:"twitter,omitempty"`
	GitHub                string             `json:"github,omitempty" bson:"github,omitempty"`
	GuardianName          string             `json:"guardian_name,omitempty" bson:"guardian_name,omitempty"`
	GuardianContactNumber string             `json:"guardian_contact_number,omitempty" bson:"guardian_contact_number,omitempty"`
	PlacementStatus       bool               `json:"placement_status" bson:"placement_status"`
	PlacedCompany         string             `json:"placed_company,omitempty" bson:"placed_company,omitempty"`
	Projects              []Project          `json:"projects,omitempty" bson:"projects,omitempty"`
	ProgrammingLanguages  []string           `json:"programming_languages,omitempty" bson:"programming_languages,omitempty"`
	RegisteredDrives      []string           `json:"registered_drives,omitempty" bson:"registered_drives,omitempty"`
}
