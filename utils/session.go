package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "pizza_session"

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrRevokedSession = errors.New("session token has been revoked")
)

type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionTokens signs and verifies session tokens and remembers the ones
// revoked by logout. Sessions carry no expiry.
type SessionTokens struct {
	secret []byte

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewSessionTokens(secret string) *SessionTokens {
	return &SessionTokens{
		secret:  []byte(secret),
		revoked: make(map[string]time.Time),
	}
}

func (s *SessionTokens) Issue(userID uint, role string) (string, error) {
	claims := &SessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "pizzapasta",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionTokens) Parse(tokenString string) (*SessionClaims, error) {
	if s.IsRevoked(tokenString) {
		return nil, ErrRevokedSession
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (s *SessionTokens) Revoke(tokenString string) {
	if tokenString == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenString] = time.Now()
}

func (s *SessionTokens) IsRevoked(tokenString string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[tokenString]
	return ok
}
