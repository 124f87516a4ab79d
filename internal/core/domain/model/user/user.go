package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// Password length bounds. The upper bound is bcrypt's 72-byte input cap.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// Domain errors for user operations.
var (
	// ErrUsernameIsRequired is returned when attempting to create a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrFullNameIsRequired is returned when attempting to create a user without a full name.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("full name")
	// ErrPasswordHashIsRequired is returned when restoring a user without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
	// ErrPasswordLengthIsOutOfRange is returned when a password is shorter than
	// the minimum or longer than bcrypt can hash.
	ErrPasswordLengthIsOutOfRange = errs.NewValueIsOutOfRangeError("password length", "password", minPasswordLength, maxPasswordLength)
	// ErrPasswordMismatch is returned when a presented password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an account in the system.
// It is an aggregate root that manages account identity, the assigned role,
// and the password credential. Passwords are stored only as bcrypt hashes.
//
// Business rules:
//   - User must have a valid UUID, non-empty username, and non-empty full name
//   - Username is the stable identity recorded on orders and dispatch records
//   - Role is one of Sales, Dispatch, Accounts, Admin
//   - Passwords must be at least 8 characters and are never stored in clear
type User struct {
	// id uniquely identifies the account
	id kernel.UUID
	// username is the login name, unique across the system
	username string
	// fullName is the human-readable display name
	fullName string
	// role decides which operations the account may perform
	role Role
	// passwordHash is the bcrypt hash of the account password
	passwordHash string
	// guard ensures the user was properly constructed
	guard guard.ConstructorGuard
}

// NewUser creates a new User with the specified parameters, hashing the
// given clear-text password. This is the only way to create a fresh account.
//
// Parameters:
//   - id: Unique identifier for the account (must be valid UUID)
//   - username: Login name (must be non-empty)
//   - fullName: Display name (must be non-empty)
//   - role: Assigned role (must be valid)
//   - password: Clear-text password (at least 8 characters)
//
// Returns the created user, or a validation error if any parameter is
// invalid (aggregated errors for multiple issues).
func NewUser(id kernel.UUID, username, fullName string, role Role, password string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setFullName(fullName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistent storage.
// Unlike NewUser, the password arrives already hashed.
func RestoreUser(id kernel.UUID, username, fullName string, role Role, passwordHash string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setFullName(fullName),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// IsEqual compares two users for equality based on their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	if other == nil {
		return false
	}
	return u.id.IsEqual(other.id)
}

// Validate checks if the User was properly constructed using the NewUser
// constructor. The zero value of User is invalid and will fail this validation.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the unique identifier of the account.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name of the account.
func (u *User) Username() string {
	return u.username
}

// FullName returns the display name of the account.
func (u *User) FullName() string {
	return u.fullName
}

// Role returns the role assigned to the account.
func (u *User) Role() Role {
	return u.role
}

// PasswordHash returns the stored bcrypt hash of the account password.
// Used by the persistence layer only.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// SetPassword replaces the account password with a bcrypt hash of the
// given clear-text password.
//
// Business rules:
//   - The password must be at least 8 characters long
//   - The password must not exceed 72 bytes, bcrypt's input limit
func (u *User) SetPassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrPasswordLengthIsOutOfRange
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.passwordHash = string(hash)
	return nil
}

// CheckPassword compares a presented clear-text password against the stored
// hash. Returns ErrPasswordMismatch when they do not match.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// setID sets the account's unique identifier with validation.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	u.id = id
	return nil
}

// setUsername sets the login name with validation.
func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	u.username = username
	return nil
}

// setFullName sets the display name with validation.
func (u *User) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	u.fullName = fullName
	return nil
}

// setRole sets the role with validation.
func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	u.role = role
	return nil
}

// setPasswordHash sets the stored hash during restoration.
func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	u.passwordHash = passwordHash
	return nil
}
