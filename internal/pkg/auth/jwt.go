// Package auth provides the session token and password primitives.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Session cookie expiry horizons per role.
const (
	AdminSessionDays = 30
	UserSessionDays  = 60
)

// Claims is the content of a session token: a role tag plus an identity
// reference. For student and execom tokens the identity is the record's
// storage id; for admin it is the configured administrator identity.
type Claims struct {
	UserType string `json:"userType"`
	UserID   string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWTService with the server signing secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// SessionDays returns the cookie expiry horizon for a role.
func SessionDays(role models.Role) int {
	if role == models.RoleAdmin {
		return AdminSessionDays
	}
	return UserSessionDays
}

// Sign creates a session token for the given role and identity, expiring with
// the role's cookie horizon.
func (s *JWTService) Sign(role models.Role, userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserType: string(role),
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.AddDate(0, 0, SessionDays(role))),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a session token, returning its claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserType == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
