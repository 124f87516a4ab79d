package queries

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials against the
// stored bcrypt hashes. Every failure path returns ErrInvalidCredentials so
// responses do not leak which part of the credential was wrong.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a handler for login checks.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the credential check.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	var resp AuthenticateUserQueryResponse
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			username,
			full_name,
			role,
			password_hash
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	if err := row.Scan(&resp.Username, &resp.FullName, &resp.Role, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
		}
		return AuthenticateUserQueryResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	return resp, nil
}
