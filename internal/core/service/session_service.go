package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionTTLHours = 24

// SessionService issues and verifies the signed session tokens that
// correlate requests to an authenticated user id. There is no invalidate
// operation: sessions end when the token expires or the cookie is dropped.
type SessionService struct {
	secret    string
	algorithm string
}

func NewSessionService(secret, algorithm string) *SessionService {
	return &SessionService{
		secret:    secret,
		algorithm: algorithm,
	}
}

// Issue creates a session token bound to the user id.
func (s *SessionService) Issue(userID int64) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTLHours * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "enroll",
		},
	}

	var signingMethod jwt.SigningMethod
	switch s.algorithm {
	case "HS256":
		signingMethod = jwt.SigningMethodHS256
	case "HS384":
		signingMethod = jwt.SigningMethodHS384
	case "HS512":
		signingMethod = jwt.SigningMethodHS512
	default:
		signingMethod = jwt.SigningMethodHS256
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a session token and returns its claims.
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.algorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// SessionClaims represents the session token claims
type SessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}
