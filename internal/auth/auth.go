package auth

import (
	"errors"
	"net/http"
)

var (
	ErrMissingCredentials = errors.New("missing or malformed basic credentials")
	ErrUnknownUsername    = errors.New("unknown username")
	ErrWrongPassword      = errors.New("wrong password")
)

// Credentials is the single static API key / password pair the mock accepts.
type Credentials struct {
	Username string
	Password string
}

// Verify reports why a username/password pair is rejected, or nil.
// Comparison is plain string equality; this is a test double.
func (c Credentials) Verify(username, password string) error {
	if username != c.Username {
		return ErrUnknownUsername
	}
	if password != c.Password {
		return ErrWrongPassword
	}
	return nil
}

// CheckRequest validates the Basic Authorization header of r and returns the
// accepted username.
func (c Credentials) CheckRequest(r *http.Request) (string, error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return "", ErrMissingCredentials
	}
	if err := c.Verify(username, password); err != nil {
		return "", err
	}
	return username, nil
}
