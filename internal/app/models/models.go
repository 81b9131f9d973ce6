// Package models contains the entity structs persisted in MongoDB.
package models

// Role identifies the three principal types recognised by the portal.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleExecom  Role = "execom"
	RoleStudent Role = "student"
)

// Branches accepted for students and drive requirements.
var Branches = []string{"CSE", "ECE", "EEE"}

// Genders accepted for students and drive requirements.
var Genders = []string{"male", "female", "other"}

// Marks holds a board-exam result. Both fields are optional since schools
// report either a percentage or a CGPA.
type Marks struct {
	Percentage *float64 `json:"percentage,omitempty" bson:"percentage,omitempty"`
	CGPA       *float64 `json:"cgpa,omitempty" bson:"cgpa,omitempty"`
}

// Address is a postal address snapshot.
type Address struct {
	LineOne string `json:"line_one" bson:"line_one"`
	LineTwo string `json:"line_two" bson:"line_two"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
}

// Project is an entry in a student's project portfolio.
type Project struct {
	ProjectName        string  `json:"project_name" bson:"project_name"`
	ProjectDescription *string `json:"project_description,omitempty" bson:"project_description,omitempty"`
	URL                *string `json:"url,omitempty" bson:"url,omitempty"`
}

// Principal is the authenticated identity attached to a request once the
// authentication gate accepts it. Exactly one of Student/Execom is set for
// those roles; the admin principal is synthetic and carries neither.
type Principal struct {
	Role    Role
	Student *Student
	Execom  *Execom
}
