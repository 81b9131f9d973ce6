package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// StudentRepository handles database operations for students.
type StudentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(database *mongo.Database) *StudentRepository {
	return &StudentRepository{collection: database.Collection("students")}
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("error saving student: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of students in one call.
func (r *StudentRepository) CreateMany(ctx context.Context, students []*models.Student) error {
	docs := make([]interface{}, len(students))
	for i, s := range students {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		docs[i] = s
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error saving students: %w", err)
	}
	return nil
}

// GetByID retrieves a student by storage id. Returns mongo.ErrNoDocuments
// when no such student exists.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var student models.Student
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByRegisterNumber reports whether a student with the register number
// exists.
func (r *StudentRepository) ExistsByRegisterNumber(ctx context.Context, registerNumber string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"register_number": registerNumber}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking register number: %w", err)
	}
	return count > 0, nil
}

// ExistsByEmail reports whether a student with the email exists.
func (r *StudentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return count > 0, nil
}

// DistinctEmails returns every student email in the collection.
func (r *StudentRepository) DistinctEmails(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "email")
}

// DistinctRegisterNumbers returns every register number in the collection.
func (r *StudentRepository) DistinctRegisterNumbers(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "register_number")
}

func (r *StudentRepository) distinctStrings(ctx context.Context, field string) ([]string, error) {
	values, err := r.collection.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing distinct %s: %w", field, err)
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListByBranchAndYear retrieves students of a branch and graduation year.
func (r *StudentRepository) ListByBranchAndYear(ctx context.Context, branch string, passOutYear int) ([]models.Student, error) {
	return r.list(ctx, bson.M{"branch": branch, "pass_out_year": passOutYear}, nil)
}

// ListByYear retrieves students of a graduation year.
func (r *StudentRepository) ListByYear(ctx context.Context, passOutYear int) ([]models.Student, error) {
	return r.list(ctx, bson.M{"pass_out_year": passOutYear}, nil)
}

// ListByRegisterNumbers retrieves students whose register number is in regs,
// projected to the given bson fields. Name and register number are always
// projected.
func (r *StudentRepository) ListByRegisterNumbers(ctx context.Context, regs, fields []string) ([]models.Student, error) {
	projection := bson.M{"name": 1, "register_number": 1}
	for _, f := range fields {
		projection[f] = 1
	}
	opts := options.Find().SetProjection(projection)
	return r.list(ctx, bson.M{"register_number": bson.M{"$in": regs}}, opts)
}

func (r *StudentRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Student, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

// EmailsMatching returns the distinct emails of students matching the filter.
func (r *StudentRepository) EmailsMatching(ctx context.Context, filter bson.M) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "email", filter)
	if err != nil {
		return nil, fmt.Errorf("error finding eligible students: %w", err)
	}
	emails := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			emails = append(emails, s)
		}
	}
	return emails, nil
}

// Delete removes a student by storage id. Returns mongo.ErrNoDocuments when
// nothing was deleted.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdatePasswordByEmail sets a new password hash for the student with the
// email. Returns mongo.ErrNoDocuments when no student matches.
func (r *StudentRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdatePasswordByID sets a new password hash for a student by storage id.
func (r *StudentRepository) UpdatePasswordByID(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ApplyPatch applies a partial update built from the present fields of a
// profile edit.
func (r *StudentRepository) ApplyPatch(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if len(patch) == 0 {
		return nil
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddRegisteredDrive records a drive id on the student, once.
func (r *StudentRepository) AddRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"registered_drives": driveID}})
	if err != nil {
		return fmt.Errorf("error recording drive registration: %w", err)
	}
	return nil
}

// RemoveRegisteredDrive removes a drive id from the student.
func (r *StudentRepository) RemoveRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"registered_drives": driveID}})
	if err != nil {
		return fmt.Errorf("error removing drive registration: %w", err)
	}
	return nil
}

// SetPlacement flips the placement outcome fields on the student record.
func (r *StudentRepository) SetPlacement(ctx context.Context, id primitive.ObjectID, company string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"placement_status": true,
		"placed_company":   company,
	}})
	if err != nil {
		return fmt.Errorf("error updating placement status: %w", err)
	}
	return nil
}
