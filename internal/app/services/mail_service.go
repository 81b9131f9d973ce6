package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/email"
)

type mailRecipientStore interface {
	EmailsMatching(ctx context.Context, filter bson.M) ([]string, error)
}

// MailService implements criteria-based bulk mail to students.
type MailService struct {
	students mailRecipientStore
	mailer   email.Mailer
}

// NewMailService creates a new mail service.
func NewMailService(students mailRecipientStore, mailer email.Mailer) *MailService {
	return &MailService{students: students, mailer: mailer}
}

// Send mails every student matching the academic criteria of the request.
func (s *MailService) Send(ctx context.Context, req dto.SendMailRequest) (*dto.MailResponse, error) {
	recipients, err := s.students.EmailsMatching(ctx, StudentMailFilter(req))
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewInternal("No eligible student")
	}

	accepted, rejected, err := s.mailer.Send(recipients, *req.Subject, *req.Content)
	if err != nil {
		return nil, apperrors.NewInternal("Error sending email")
	}

	return &dto.MailResponse{
		Message:  "Email sent successfully",
		Accepted: accepted,
		Rejected: rejected,
	}, nil
}

// StudentMailFilter builds the student query for a bulk mail request. Every
// criterion is optional; an absent criterion matches everyone. Mark and CGPA
// criteria are minimums, the backlog criterion is a maximum (students with no
// recorded backlog count pass it).
func StudentMailFilter(req dto.SendMailRequest) bson.M {
	filter := bson.M{}

	if len(req.BranchList) > 0 {
		filter["branch"] = bson.M{"$in": req.BranchList}
	}
	if len(req.GenderList) > 0 {
		filter["gender"] = bson.M{"$in": req.GenderList}
	}
	if req.TenthMark != nil {
		filter["tenth_mark.percentage"] = bson.M{"$gte": *req.TenthMark}
	}
	if req.PlusTwoMark != nil {
		filter["plus_two_mark.percentage"] = bson.M{"$gte": *req.PlusTwoMark}
	}
	if req.BtechCGPA != nil {
		filter["btech_cgpa"] = bson.M{"$gte": *req.BtechCGPA}
	}
	if req.NumberOfBacklogs != nil {
		filter["$or"] = bson.A{
			bson.M{"number_of_backlogs": bson.M{"$lte": *req.NumberOfBacklogs}},
			bson.M{"number_of_backlogs": bson.M{"$exists": false}},
		}
	}

	return filter
}
