package user

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Role represents the responsibility a user carries in the system.
// It is a value object consulted by the access policy to decide which
// operations a user may perform.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleSales creates and edits orders. Sales users see their own orders.
	RoleSales

	// RoleDispatch fulfils order lines and sees the dispatch queue.
	RoleDispatch

	// RoleAccounts has read-only visibility over all orders for billing.
	RoleAccounts

	// RoleAdmin can perform every operation, including user management.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleSales:    "Sales",
		RoleDispatch: "Dispatch",
		RoleAccounts: "Accounts",
		RoleAdmin:    "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleSales:    "Sales",
		RoleDispatch: "Dispatch",
		RoleAccounts: "Accounts",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role name into a Role value.
// The match is exact, e.g. "Sales" parses and "sales" does not.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Sales, Dispatch, Accounts, Admin. RoleUnknown (0) and any
// other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for invalid role values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
