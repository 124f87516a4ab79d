// Package user implements the User aggregate for the order management system.
// It provides account identity, role assignment, and password handling.
//
// The package includes:
//   - User: The aggregate root for an account with a bcrypt password credential
//   - Role: A value object naming the four responsibilities in the system
//     (Sales, Dispatch, Accounts, Admin)
//
// Roles are consulted by the access policy in the services package; this
// package only guarantees that every account carries exactly one valid role.
package user
