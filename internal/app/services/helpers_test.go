package services

import (
	"errors"
	"testing"

	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func assertAppError(t *testing.T, err error, statusCode int, message string) {
	t.Helper()
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %v", err)
	}
	if appErr.StatusCode != statusCode {
		t.Errorf("expected status %d, got %d", statusCode, appErr.StatusCode)
	}
	if appErr.Message != message {
		t.Errorf("expected message %q, got %q", message, appErr.Message)
	}
}
