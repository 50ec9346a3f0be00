package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the signed session credential. Subject holds the user id.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IssuedToken is a freshly signed session token.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

func GenerateToken(userID, email, role, secret string, ttl time.Duration) (*IssuedToken, error) {
	if secret == "" {
		return nil, errors.New("secret not configured")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	now := time.Now()
	expTime := now.Add(ttl)
	jti := uuid.NewString()

	claims := SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &IssuedToken{Token: signed, ID: jti, ExpiresAt: expTime}, nil
}

func VerifyToken(tokenStr, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, errors.New("secret not configured")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))

	var claims SessionClaims

	_, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		return nil, errors.New("token expired")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &claims, nil
}
