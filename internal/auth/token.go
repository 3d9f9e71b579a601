package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller decoded from a verified credential.
// It is never trusted from the request body.
type Identity struct {
	SubjectID string
	Username  string
	Email     string
	Role      string
}

// Claims is the JWT payload carried by a session credential.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session credentials with a process-wide
// HS256 secret and a fixed expiry.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager builds a token manager. The secret is required.
func NewTokenManager(secret string, expiry time.Duration) (*TokenManager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token signing secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &TokenManager{secret: []byte(secret), expiry: expiry}, nil
}

// Issue signs a credential embedding the identity.
func (m *TokenManager) Issue(ident Identity) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: ident.Username,
		Email:    ident.Email,
		Role:     ident.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Any failure (bad signature, expired, malformed) is an invalid-token error.
func (m *TokenManager) Verify(token string) (Identity, error) {
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("verify token: %w", err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Identity{}, errors.New("invalid token")
	}
	return Identity{
		SubjectID: claims.Subject,
		Username:  claims.Username,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}
