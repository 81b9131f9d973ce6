// Package dto defines the request and response shapes of the HTTP API.
//
// Request structs use pointer fields throughout so an omitted JSON key is
// distinguishable from a zero value; validators treat nil as "absent" and
// partial updates apply only the fields that are present.
package dto

import "github.com/vishnuv55/SPC-Backend/internal/app/models"

// AdminLoginRequest authenticates the administrator against the configured
// credential hash.
type AdminLoginRequest struct {
	Password *string `json:"password"`
}

// StudentLoginRequest authenticates a student by email.
type StudentLoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// ExecomLoginRequest authenticates a staff member by designation.
type ExecomLoginRequest struct {
	Designation *string `json:"designation"`
	Password    *string `json:"password"`
}

// ChangePasswordRequest is the self-service password change body.
type ChangePasswordRequest struct {
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

// ResetStudentPasswordRequest is the admin-side student password reset body.
type ResetStudentPasswordRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// ResetExecomPasswordRequest is the admin-side execom password reset body.
type ResetExecomPasswordRequest struct {
	Designation *string `json:"designation"`
	Password    *string `json:"password"`
}

// CreateStudentRequest creates a single student record.
type CreateStudentRequest struct {
	RegisterNumber *string `json:"register_number"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Branch         *string `json:"branch"`
	PassOutYear    *int    `json:"pass_out_year"`
}

// CreateStudentsRequest creates a batch of student records in one call.
type CreateStudentsRequest struct {
	Students []CreateStudentRequest `json:"students"`
}

// ListStudentsRequest selects students by branch and graduation year.
type ListStudentsRequest struct {
	Branch      *string `json:"branch"`
	PassOutYear *int    `json:"pass_out_year"`
}

// CreateDriveRequest creates a placement drive.
type CreateDriveRequest struct {
	CompanyName  *string                   `json:"company_name"`
	Position     *string                   `json:"position"`
	Description  *string                   `json:"description"`
	ContactEmail *string                   `json:"contact_email"`
	DriveDate    *string                   `json:"drive_date"`
	Location     *string                   `json:"location"`
	Salary       *string                   `json:"salary"`
	URL          *string                   `json:"url"`
	Requirements *DriveRequirementsRequest `json:"requirements"`
}

// DriveRequirementsRequest is the eligibility sub-record of a drive creation.
type DriveRequirementsRequest struct {
	Gender           []string      `json:"gender"`
	TenthMark        *models.Marks `json:"tenth_mark"`
	PlusTwoMark      *models.Marks `json:"plus_two_mark"`
	BtechMinCGPA     *float64      `json:"btech_min_cgpa"`
	NumberOfBacklogs *int          `json:"number_of_backlogs"`
}

// DriveIDRequest carries a drive id for registration operations.
type DriveIDRequest struct {
	ID *string `json:"id"`
}

// RegisteredStudentsRequest selects the roster of a drive. The boolean flags
// pick which student fields are projected into the response; name and
// register number are always included.
type RegisteredStudentsRequest struct {
	ID               *string `json:"id"`
	Branch           *bool   `json:"branch"`
	Gender           *bool   `json:"gender"`
	DateOfBirth      *bool   `json:"dob"`
	TenthMark        *bool   `json:"tenth_mark"`
	PlusTwoMark      *bool   `json:"plus_two_mark"`
	BtechCGPA        *bool   `json:"btech_cgpa"`
	NumberOfBacklogs *bool   `json:"number_of_backlogs"`
	Email            *bool   `json:"email"`
	PhoneNumber      *bool   `json:"phone_number"`
}

// PassOutYearRequest carries a graduation year.
type PassOutYearRequest struct {
	PassOutYear *int `json:"pass_out_year"`
}

// EditProfileRequest is the student profile patch: every field optional,
// applied only when present.
type EditProfileRequest struct {
	Name                  *string          `json:"name"`
	DateOfBirth           *string          `json:"date_of_birth"`
	Gender                *string          `json:"gender"`
	TenthMark             *models.Marks    `json:"tenth_mark"`
	PlusTwoMark           *models.Marks    `json:"plus_two_mark"`
	BtechCGPA             *float64         `json:"btech_cgpa"`
	NumberOfBacklogs      *int             `json:"number_of_backlogs"`
	PhoneNumber           *string          `json:"phone_number"`
	Address               *models.Address  `json:"address"`
	GuardianName          *string          `json:"guardian_name"`
	GuardianContactNumber *string          `json:"guardian_contact_number"`
	LinkedIn              *string          `json:"linkedin"`
	Twitter               *string          `json:"twitter"`
	GitHub                *string          `json:"github"`
	Projects              []models.Project `json:"projects"`
	ProgrammingLanguages  []string         `json:"programming_languages"`
}

// PlacementDetailsRequest reports a student's placement outcome.
type PlacementDetailsRequest struct {
	PlacedCompany *string  `json:"placed_company"`
	CTC           *float64 `json:"ctc"`
}

// PostBillRequest creates an expense record.
type PostBillRequest struct {
	BillTitle       *string  `json:"bill_title"`
	BillDate        *string  `json:"bill_date"`
	BillAmount      *float64 `json:"bill_amount"`
	BillDescription *string  `json:"bill_description"`
}

// PostQuestionRequest posts a forum question.
type PostQuestionRequest struct {
	Question *string `json:"question"`
}

// EditQuestionRequest edits a forum question; only the original author may.
type EditQuestionRequest struct {
	ID       *string `json:"id"`
	Question *string `json:"question"`
}

// PostAnswerRequest answers a forum question.
type PostAnswerRequest struct {
	ID     *string `json:"id"`
	Answer *string `json:"answer"`
}

// SendMailRequest selects students by academic criteria and mails them. All
// filters are optional; an absent filter matches everyone.
type SendMailRequest struct {
	BranchList       []string `json:"branch_list"`
	GenderList       []string `json:"gender_list"`
	NumberOfBacklogs *int     `json:"number_of_backlogs"`
	TenthMark        *float64 `json:"tenth_mark"`
	PlusTwoMark      *float64 `json:"plus_two_mark"`
	BtechCGPA        *float64 `json:"btech_cgpa"`
	Subject          *string  `json:"subject"`
	Content          *string  `json:"content"`
}
