package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

type fakeQueryStore struct {
	query           *models.Query
	created         *models.Query
	updatedQuestion string
	updatedAnswer   *models.Answer
}

func (f *fakeQueryStore) Create(ctx context.Context, query *models.Query) error {
	f.created = query
	return nil
}

func (f *fakeQueryStore) List(ctx context.Context) ([]models.Query, error) { return nil, nil }

func (f *fakeQueryStore) GetByID(ctx context.Context, id string) (*models.Query, error) {
	if f.query == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.query, nil
}

func (f *fakeQueryStore) UpdateQuestion(ctx context.Context, id primitive.ObjectID, question string) error {
	f.updatedQuestion = question
	return nil
}

func (f *fakeQueryStore) UpdateAnswer(ctx context.Context, id string, answer *models.Answer) error {
	if f.query == nil {
		return mongo.ErrNoDocuments
	}
	f.updatedAnswer = answer
	return nil
}

func (f *fakeQueryStore) Delete(ctx context.Context, id string) error {
	if f.query == nil {
		return mongo.ErrNoDocuments
	}
	return nil
}

func TestPostQuestionRecordsAuthor(t *testing.T) {
	store := &fakeQueryStore{}
	svc := NewForumService(store)

	student := &models.Student{ID: primitive.NewObjectID(), Name: "John Doe"}
	if err := svc.PostQuestion(context.Background(), student, "When does the next drive start?"); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	if store.created == nil {
		t.Fatal("expected the question to be stored")
	}
	if store.created.Question.StudentID != student.ID.Hex() {
		t.Errorf("expected author id %s, got %s", student.ID.Hex(), store.created.Question.StudentID)
	}
	if store.created.Question.StudentName != "John Doe" {
		t.Errorf("expected author name recorded, got %q", store.created.Question.StudentName)
	}
	if store.created.CreatedDate.IsZero() || time.Since(store.created.CreatedDate) > time.Minute {
		t.Error("expected a fresh created date")
	}
}

func TestEditQuestionByOtherStudent(t *testing.T) {
	author := primitive.NewObjectID()
	store := &fakeQueryStore{query: &models.Query{
		ID:       primitive.NewObjectID(),
		Question: models.Question{Question: "original", StudentID: author.Hex()},
	}}
	svc := NewForumService(store)

	intruder := &models.Student{ID: primitive.NewObjectID()}
	err := svc.EditQuestion(context.Background(), intruder, store.query.ID.Hex(), "edited text here")
	assertAppError(t, err, http.StatusForbidden, "Invalid Student")

	if store.updatedQuestion != "" {
		t.Error("question must not change on a rejected edit")
	}
}

func TestEditQuestionByAuthor(t *testing.T) {
	author := &models.Student{ID: primitive.NewObjectID()}
	store := &fakeQueryStore{query: &models.Query{
		ID:       primitive.NewObjectID(),
		Question: models.Question{Question: "original", StudentID: author.ID.Hex()},
	}}
	svc := NewForumService(store)

	if err := svc.EditQuestion(context.Background(), author, store.query.ID.Hex(), "edited text here"); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if store.updatedQuestion != "edited text here" {
		t.Errorf("expected the question to be replaced, got %q", store.updatedQuestion)
	}
}

func TestEditQuestionMissing(t *testing.T) {
	svc := NewForumService(&fakeQueryStore{})

	err := svc.EditQuestion(context.Background(), &models.Student{ID: primitive.NewObjectID()}, primitive.NewObjectID().Hex(), "edited text here")
	assertAppError(t, err, http.StatusNotFound, "Query not found")
}

func TestAnswerRecordsDesignation(t *testing.T) {
	store := &fakeQueryStore{query: &models.Query{ID: primitive.NewObjectID()}}
	svc := NewForumService(store)

	if err := svc.Answer(context.Background(), "Chairperson", store.query.ID.Hex(), "Next week."); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if store.updatedAnswer == nil || store.updatedAnswer.Designation != "Chairperson" {
		t.Fatalf("expected the designation on the answer, got %+v", store.updatedAnswer)
	}
}

func TestAnswerMissingQuery(t *testing.T) {
	svc := NewForumService(&fakeQueryStore{})

	err := svc.Answer(context.Background(), "Chairperson", primitive.NewObjectID().Hex(), "Next week.")
	assertAppError(t, err, http.StatusNotFound, "Query not found")
}
