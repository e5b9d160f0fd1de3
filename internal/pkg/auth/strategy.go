package auth

import "time"

// TokenPair carries the two credentials issued at login: a short-lived access
// token and a longer-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Strategy issues and validates tokens bound to a username.
type Strategy interface {
	IssuePair(subject string) (TokenPair, error)
	IssueAccess(subject string) (string, error)
	ParseAccess(token string) (string, error)
	ParseRefresh(token string) (string, error)
	Name() string
}

type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}
