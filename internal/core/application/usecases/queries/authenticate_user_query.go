package queries

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials is returned for any failed login. The caller
	// cannot tell an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateUserQuery checks a username/password pair against the stored
// accounts.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	q := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUsername(username),
		q.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the presented login name.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the presented clear-text password.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	q.username = username
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateUserQueryResponse is the identity of a successfully
// authenticated user.
type AuthenticateUserQueryResponse struct {
	Username string
	FullName string
	Role     string
}
