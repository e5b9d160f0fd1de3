package test

import (
	"errors"

	pkgAuth "github.com/ivolkoff/pizzeria/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides. By default
// tokens carry the subject with a type prefix so parse round-trips work.
type StrategyStub struct {
	IssuePairFn    func(string) (pkgAuth.TokenPair, error)
	IssueAccessFn  func(string) (string, error)
	ParseAccessFn  func(string) (string, error)
	ParseRefreshFn func(string) (string, error)
	NameVal        string
}

// IssuePair returns deterministic tokens for tests.
func (s StrategyStub) IssuePair(subject string) (pkgAuth.TokenPair, error) {
	if s.IssuePairFn != nil {
		return s.IssuePairFn(subject)
	}
	return pkgAuth.TokenPair{
		AccessToken:  "access:" + subject,
		RefreshToken: "refresh:" + subject,
	}, nil
}

// IssueAccess returns a deterministic access token.
func (s StrategyStub) IssueAccess(subject string) (string, error) {
	if s.IssueAccessFn != nil {
		return s.IssueAccessFn(subject)
	}
	return "access:" + subject, nil
}

// ParseAccess parses previously issued access tokens.
func (s StrategyStub) ParseAccess(token string) (string, error) {
	if s.ParseAccessFn != nil {
		return s.ParseAccessFn(token)
	}
	return parsePrefixed(token, "access:")
}

// ParseRefresh parses previously issued refresh tokens.
func (s StrategyStub) ParseRefresh(token string) (string, error) {
	if s.ParseRefreshFn != nil {
		return s.ParseRefreshFn(token)
	}
	return parsePrefixed(token, "refresh:")
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

func parsePrefixed(token, prefix string) (string, error) {
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[len(prefix):], nil
}
