// Package auth issues and verifies the HS256 tokens that let an instructor
// change the catalog. Reads are public; only writes carry a token.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RoleInstructor is the only role allowed to modify forms.
const RoleInstructor = "instructor"

// ErrNotInstructor is returned for valid tokens that carry another role.
var ErrNotInstructor = errors.New("token is not an instructor token")

// Instructor is the identity extracted from a valid token.
type Instructor struct {
	ID   uuid.UUID
	Name string
}

// JWTManager handles instructor token generation and validation.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// instructorClaims extends standard JWT claims with the display name and role.
type instructorClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

// GenerateToken creates a signed HS256 JWT with the instructor ID as subject.
func (m *JWTManager) GenerateToken(id uuid.UUID, name string) (string, error) {
	if id == uuid.Nil {
		return "", fmt.Errorf("instructor id is required")
	}

	now := m.now()
	claims := instructorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Name: name,
		Role: RoleInstructor,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates an instructor token.
func (m *JWTManager) ValidateToken(tokenString string) (Instructor, error) {
	if tokenString == "" {
		return Instructor{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &instructorClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Instructor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*instructorClaims)
	if !ok || !token.Valid {
		return Instructor{}, fmt.Errorf("invalid token claims")
	}
	if claims.Role != RoleInstructor {
		return Instructor{}, ErrNotInstructor
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Instructor{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return Instructor{ID: id, Name: claims.Name}, nil
}
