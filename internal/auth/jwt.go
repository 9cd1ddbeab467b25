package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hemanthreddy-komma/Legal-IT/internal/domain"
)

// TokenTTL is the fixed session lifetime. Tokens are stateless; expiry is the
// only server-side control besides the signing secret.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the verified content of a session token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 session token carrying the user's id, email and
// name, valid for ttl from now.
func GenerateToken(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded identity.
// Every failure mode (empty, malformed, bad signature, expired) comes back as
// an error; callers must treat any error as "anonymous", not as a fault.
func ParseToken(tokenStr string, secret []byte) (Identity, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return Identity{}, ErrInvalidToken
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrInvalidToken
	}
	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
