package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid auth token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTStrategy implements token creation/verification using HS256 signed JWTs.
// Access and refresh tokens share a secret but carry a type claim, so a
// refresh token can never pass as an access token or vice versa.
type JWTStrategy struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	accessTTL := opts.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := opts.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &JWTStrategy{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssuePair generates a fresh access/refresh token pair for the subject.
func (s *JWTStrategy) IssuePair(subject string) (TokenPair, error) {
	access, err := s.issue(subject, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.issue(subject, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess generates a standalone access token for the subject.
func (s *JWTStrategy) IssueAccess(subject string) (string, error) {
	return s.issue(subject, tokenTypeAccess, s.accessTTL)
}

// ParseAccess validates an access token and returns the encoded subject.
func (s *JWTStrategy) ParseAccess(token string) (string, error) {
	return s.parse(token, tokenTypeAccess)
}

// ParseRefresh validates a refresh token and returns the encoded subject.
func (s *JWTStrategy) ParseRefresh(token string) (string, error) {
	return s.parse(token, tokenTypeRefresh)
}

func (s *JWTStrategy) Name() string {
	return "jwt"
}

func (s *JWTStrategy) issue(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *JWTStrategy) parse(token, wantType string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if c.TokenType != wantType || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
