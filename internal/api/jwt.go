package api

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the caller identity. Subject is the email.
type SessionClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// SessionVerifier validates HS256 session tokens issued by the login
// service. It can also issue tokens for local development and tests.
type SessionVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewSessionVerifier builds a verifier for secret. An empty secret makes a
// random in-memory one, so tokens only survive until restart.
func NewSessionVerifier(secret string) (*SessionVerifier, error) {
	key := []byte(secret)
	if secret == "" {
		key = make([]byte, 32)
		if _, err := crand.Read(key); err != nil {
			return nil, errors.New("failed to generate dev session secret")
		}
	}
	return &SessionVerifier{secret: key, now: time.Now}, nil
}

// Issue signs a session token for email valid for ttl.
func (v *SessionVerifier) Issue(email, name string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name: name,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// Parse validates token and returns its claims.
func (v *SessionVerifier) Parse(token string) (*SessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("empty token")
	}
	var claims SessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("session has no subject")
	}
	return &claims, nil
}
