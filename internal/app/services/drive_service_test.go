package services

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
)

type fakeDriveStore struct {
	drive        *models.Drive
	found        bool
	registered   bool
	removed      bool
	deleteErr    error
	lastFilter   bson.M
	addCalled    bool
	removeCalled bool
}

func (f *fakeDriveStore) Create(ctx context.Context, drive *models.Drive) error { return nil }

func (f *fakeDriveStore) List(ctx context.Context) ([]models.Drive, error) { return nil, nil }

func (f *fakeDriveStore) ListFiltered(ctx context.Context, filter bson.M) ([]models.Drive, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeDriveStore) GetByID(ctx context.Context, id string) (*models.Drive, error) {
	if f.drive == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.drive, nil
}

func (f *fakeDriveStore) Delete(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakeDriveStore) AddRegistration(ctx context.Context, id, registerNumber string) (bool, bool, error) {
	f.addCalled = true
	return f.found, f.registered, nil
}

func (f *fakeDriveStore) RemoveRegistration(ctx context.Context, id, registerNumber string) (bool, bool, error) {
	f.removeCalled = true
	return f.found, f.removed, nil
}

type fakeRosterStore struct {
	addedDrive   string
	removedDrive string
	lastFields   []string
	students     []models.Student
}

func (f *fakeRosterStore) ListByRegisterNumbers(ctx context.Context, regs, fields []string) ([]models.Student, error) {
	f.lastFields = fields
	return f.students, nil
}

func (f *fakeRosterStore) AddRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error {
	f.addedDrive = driveID
	return nil
}

func (f *fakeRosterStore) RemoveRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error {
	f.removedDrive = driveID
	return nil
}

func testStudent() *models.Student {
	return &models.Student{ID: primitive.NewObjectID(), RegisterNumber: "LBT18CS042"}
}

func TestRegisterDriveNotFound(t *testing.T) {
	svc := NewDriveService(&fakeDriveStore{found: false}, &fakeRosterStore{})

	err := svc.Register(context.Background(), testStudent(), primitive.NewObjectID().Hex())
	assertAppError(t, err, http.StatusNotFound, "Drive not found")
}

func TestRegisterDriveTwice(t *testing.T) {
	svc := NewDriveService(&fakeDriveStore{found: true, registered: false}, &fakeRosterStore{})

	err := svc.Register(context.Background(), testStudent(), primitive.NewObjectID().Hex())
	assertAppError(t, err, http.StatusForbidden, "You are already registered")
}

func TestRegisterDriveSuccess(t *testing.T) {
	roster := &fakeRosterStore{}
	svc := NewDriveService(&fakeDriveStore{found: true, registered: true}, roster)

	driveID := primitive.NewObjectID().Hex()
	if err := svc.Register(context.Background(), testStudent(), driveID); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if roster.addedDrive != driveID {
		t.Errorf("expected drive %s recorded on the student, got %q", driveID, roster.addedDrive)
	}
}

func TestDeregisterWithoutRegistration(t *testing.T) {
	svc := NewDriveService(&fakeDriveStore{found: true, removed: false}, &fakeRosterStore{})

	err := svc.Deregister(context.Background(), testStudent(), primitive.NewObjectID().Hex())
	assertAppError(t, err, http.StatusForbidden, "You are not registered")
}

func TestDeregisterSuccess(t *testing.T) {
	roster := &fakeRosterStore{}
	svc := NewDriveService(&fakeDriveStore{found: true, removed: true}, roster)

	driveID := primitive.NewObjectID().Hex()
	if err := svc.Deregister(context.Background(), testStudent(), driveID); err != nil {
		t.Fatalf("deregister failed: %v", err)
	}
	if roster.removedDrive != driveID {
		t.Errorf("expected drive %s removed from the student, got %q", driveID, roster.removedDrive)
	}
}

func TestDeleteDriveNotFound(t *testing.T) {
	svc := NewDriveService(&fakeDriveStore{deleteErr: mongo.ErrNoDocuments}, &fakeRosterStore{})

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assertAppError(t, err, http.StatusNotFound, "Drive not found")
}

func TestRegisteredStudentsProjection(t *testing.T) {
	drive := &models.Drive{
		ID:                 primitive.NewObjectID(),
		RegisteredStudents: []string{"LBT18CS042", "LBT18CS043"},
	}
	roster := &fakeRosterStore{students: []models.Student{{RegisterNumber: "LBT18CS042"}}}
	svc := NewDriveService(&fakeDriveStore{drive: drive}, roster)

	truth := true
	req := dto.RegisteredStudentsRequest{
		ID:     strPtr(drive.ID.Hex()),
		Branch: &truth,
		Email:  &truth,
	}
	students, err := svc.RegisteredStudents(context.Background(), req)
	if err != nil {
		t.Fatalf("roster lookup failed: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("expected 1 student, got %d", len(students))
	}

	want := map[string]bool{"branch": true, "email": true}
	if len(roster.lastFields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, roster.lastFields)
	}
	for _, f := range roster.lastFields {
		if !want[f] {
			t.Errorf("unexpected projected field %q", f)
		}
	}
}

func TestRegisteredStudentsEmptyRoster(t *testing.T) {
	drive := &models.Drive{ID: primitive.NewObjectID()}
	svc := NewDriveService(&fakeDriveStore{drive: drive}, &fakeRosterStore{})

	students, err := svc.RegisteredStudents(context.Background(), dto.RegisteredStudentsRequest{ID: strPtr(drive.ID.Hex())})
	if err != nil {
		t.Fatalf("roster lookup failed: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Fatalf("expected empty roster, got %v", students)
	}
}
