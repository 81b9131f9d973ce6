package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
)

func renderError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/anything", nil)
	HandleError(c, err)
	return w
}

func TestHandleErrorTyped(t *testing.T) {
	w := renderError(apperrors.NewConflict("Student with this Email ID already exists"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "error" {
		t.Errorf("expected status error, got %q", body.Status)
	}
	if body.StatusCode != http.StatusConflict {
		t.Errorf("expected statusCode 409, got %d", body.StatusCode)
	}
	if body.Message != "Student with this Email ID already exists" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	w := renderError(errors.New("connection reset by peer"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "Internal Server Error" {
		t.Errorf("internal details must not leak, got %q", body.Message)
	}
}

func TestNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.NoRoute(NotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "Requested url does not exist" {
		t.Errorf("unexpected message %q", body.Message)
	}
}
