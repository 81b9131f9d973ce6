package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
)

type fakeStudentLoader struct {
	student *models.Student
}

func (f *fakeStudentLoader) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if f.student != nil && f.student.ID.Hex() == id {
		return f.student, nil
	}
	return nil, mongo.ErrNoDocuments
}

type fakeExecomLoader struct {
	execom *models.Execom
}

func (f *fakeExecomLoader) GetByID(ctx context.Context, id string) (*models.Execom, error) {
	if f.execom != nil && f.execom.ID.Hex() == id {
		return f.execom, nil
	}
	return nil, mongo.ErrNoDocuments
}

const testAdminID = "placement-admin"

func newGateRouter(t *testing.T, jwt *auth.JWTService, students studentLoader, execoms execomLoader, role models.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gate := NewAuthMiddleware(jwt, students, execoms, testAdminID, false)
	router := gin.New()
	router.GET("/protected", gate.Require(role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(CurrentPrincipal(c).Role)})
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestGateMissingCookie(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleStudent)

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "token missing" {
		t.Errorf("expected %q, got %q", "token missing", msg)
	}
}

func TestGateInvalidToken(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleStudent)

	w := doRequest(router, "garbage")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "token invalid" {
		t.Errorf("expected %q, got %q", "token invalid", msg)
	}
}

func TestGateForeignSignature(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleStudent)

	token, err := auth.NewJWTService("other-secret").Sign(models.RoleStudent, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestGateRoleMismatch(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleAdmin)

	token, err := jwt.Sign(models.RoleStudent, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "forbidden route" {
		t.Errorf("expected %q, got %q", "forbidden route", msg)
	}
}

func TestGateAdminIdentityMismatch(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleAdmin)

	token, err := jwt.Sign(models.RoleAdmin, "someone-else")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "token expired" {
		t.Errorf("expected %q, got %q", "token expired", msg)
	}
}

func TestGateAdminSuccess(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleAdmin)

	token, err := jwt.Sign(models.RoleAdmin, testAdminID)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGateDeletedStudent(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{}, models.RoleStudent)

	token, err := jwt.Sign(models.RoleStudent, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "principal does not exist" {
		t.Errorf("expected %q, got %q", "principal does not exist", msg)
	}
}

func TestGateStudentSuccess(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	student := &models.Student{ID: primitive.NewObjectID(), RegisterNumber: "LBT18CS042"}
	router := newGateRouter(t, jwt, &fakeStudentLoader{student: student}, &fakeExecomLoader{}, models.RoleStudent)

	token, err := jwt.Sign(models.RoleStudent, student.ID.Hex())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGateExecomSuccess(t *testing.T) {
	jwt := auth.NewJWTService("secret")
	execom := &models.Execom{ID: primitive.NewObjectID(), Designation: "Chairperson"}
	router := newGateRouter(t, jwt, &fakeStudentLoader{}, &fakeExecomLoader{execom: execom}, models.RoleExecom)

	token, err := jwt.Sign(models.RoleExecom, execom.ID.Hex())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	w := doRequest(router, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
