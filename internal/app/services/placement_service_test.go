package services

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
)

type fakePlacementStore struct {
	upserted *models.Placement
}

func (f *fakePlacementStore) Upsert(ctx context.Context, placement *models.Placement) error {
	f.upserted = placement
	return nil
}

func (f *fakePlacementStore) ListByYear(ctx context.Context, year int) ([]models.Placement, error) {
	return nil, nil
}

func (f *fakePlacementStore) YearWiseReport(ctx context.Context) ([]dto.PlacementReportEntry, error) {
	return nil, nil
}

type fakeAlumniStore struct {
	created []models.Alumni
}

func (f *fakeAlumniStore) CreateMany(ctx context.Context, alumni []models.Alumni) error {
	f.created = alumni
	return nil
}

func (f *fakeAlumniStore) List(ctx context.Context) ([]models.Alumni, error) { return f.created, nil }

type fakePlacementStudentStore struct {
	students      []models.Student
	placedID      primitive.ObjectID
	placedCompany string
}

func (f *fakePlacementStudentStore) ListByYear(ctx context.Context, year int) ([]models.Student, error) {
	return f.students, nil
}

func (f *fakePlacementStudentStore) SetPlacement(ctx context.Context, id primitive.ObjectID, company string) error {
	f.placedID = id
	f.placedCompany = company
	return nil
}

func TestReportPlacement(t *testing.T) {
	placements := &fakePlacementStore{}
	students := &fakePlacementStudentStore{}
	svc := NewPlacementService(placements, &fakeAlumniStore{}, students)

	student := &models.Student{
		ID:             primitive.NewObjectID(),
		Name:           "John Doe",
		RegisterNumber: "LBT18CS042",
		Email:          "john@college.edu",
		PhoneNumber:    "9876543210",
		PassOutYear:    2026,
	}
	if err := svc.Report(context.Background(), student, "Initech", 12.5); err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if placements.upserted == nil {
		t.Fatal("expected a placement record")
	}
	if placements.upserted.RegisterNumber != "LBT18CS042" {
		t.Errorf("placement must be keyed by register number, got %q", placements.upserted.RegisterNumber)
	}
	if placements.upserted.PlacedCompany != "Initech" || placements.upserted.CTC != 12.5 {
		t.Errorf("unexpected placement %+v", placements.upserted)
	}
	if students.placedID != student.ID || students.placedCompany != "Initech" {
		t.Error("the student record must be flagged as placed")
	}
}

func TestCreateAlumniEmptyYear(t *testing.T) {
	svc := NewPlacementService(&fakePlacementStore{}, &fakeAlumniStore{}, &fakePlacementStudentStore{})

	err := svc.CreateAlumni(context.Background(), 2019)
	assertAppError(t, err, http.StatusNotFound, "No students found for this year")
}

func TestCreateAlumniSnapshot(t *testing.T) {
	students := &fakePlacementStudentStore{students: []models.Student{
		{
			Name:            "John Doe",
			Email:           "john@college.edu",
			PhoneNumber:     "9876543210",
			PlacementStatus: true,
			PlacedCompany:   "Initech",
		},
		{Name: "Jane Roe", Email: "jane@college.edu"},
	}}
	alumni := &fakeAlumniStore{}
	svc := NewPlacementService(&fakePlacementStore{}, alumni, students)

	if err := svc.CreateAlumni(context.Background(), 2019); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if len(alumni.created) != 2 {
		t.Fatalf("expected 2 alumni, got %d", len(alumni.created))
	}
	if alumni.created[0].PlacedCompany != "Initech" || !alumni.created[0].PlacementStatus {
		t.Errorf("placement outcome must carry over, got %+v", alumni.created[0])
	}
	if alumni.created[1].PlacementStatus {
		t.Error("an unplaced student must stay unplaced in the snapshot")
	}
}
