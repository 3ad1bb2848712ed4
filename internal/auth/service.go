package auth

import (
	"fmt"

	"campus-placement-backend/internal/database/models"
	apperrors "campus-placement-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims issued by the account service
type AuthClaims struct {
	AccountID            string             `json:"account_id" example:"4b7c2a8e-7d1e-4f6a-9a43-2f5d6c1e8b90"`
	AccountKind          models.AccountKind `json:"account_kind" example:"enterprise"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Caller is the authenticated account behind a request
type Caller struct {
	AccountID uuid.UUID          `json:"account_id"`
	Kind      models.AccountKind `json:"account_kind"`
}

// OrganizationKind returns the organization class of enterprise and teacher callers
func (c *Caller) OrganizationKind() (models.OrganizationKind, bool) {
	return c.Kind.OrganizationKind()
}

// IsAdmin reports whether the caller is an administrator
func (c *Caller) IsAdmin() bool {
	return c.Kind == models.AccountKindAdmin
}

// IsStudent reports whether the caller is a student
func (c *Caller) IsStudent() bool {
	return c.Kind == models.AccountKindStudent
}

// Caller converts validated claims into a Caller
func (c *AuthClaims) Caller() (*Caller, error) {
	id, err := uuid.Parse(c.AccountID)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("token account_id is not a valid UUID")
	}
	switch c.AccountKind {
	case models.AccountKindEnterprise, models.AccountKindTeacher, models.AccountKindStudent, models.AccountKindAdmin:
	default:
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("token account_kind %q is not recognized", c.AccountKind))
	}
	return &Caller{AccountID: id, Kind: c.AccountKind}, nil
}

// AuthService validates bearer tokens. Tokens are issued elsewhere.
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
