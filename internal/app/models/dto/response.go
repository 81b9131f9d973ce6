package dto

import "github.com/vishnuv55/SPC-Backend/internal/app/models"

// MessageResponse is the fixed-shape success body for command endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the fixed-shape error envelope. Every failure surfaces in
// this form, never a stack trace or a bare 500.
type ErrorResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// LoginStatusResponse answers the is-user-logged-in probe.
type LoginStatusResponse struct {
	IsUserLoggedIn bool   `json:"is_user_logged_in"`
	UserType       string `json:"user_type,omitempty"`
}

// MailResponse reports the outcome of a bulk mail send.
type MailResponse struct {
	Message  string   `json:"message"`
	Accepted []string `json:"accepted"`
	Rejected []string `json:"rejected"`
}

// StudentProfileResponse is a student's own record with the placement
// snapshot folded in.
type StudentProfileResponse struct {
	models.Student
	PlacedCompany string  `json:"placed_company,omitempty"`
	CTC           float64 `json:"ctc,omitempty"`
}

// PlacementReportEntry is one row of the year-wise placement report.
type PlacementReportEntry struct {
	PassOutYear int   `json:"pass_out_year" bson:"_id"`
	Placements  int64 `json:"placements" bson:"placements"`
}
