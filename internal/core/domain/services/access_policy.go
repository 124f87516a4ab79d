package services

import (
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"
)

// Operation names a guarded action in the system. The access policy maps
// each operation to the roles allowed to perform it.
type Operation string

// Guarded operations.
const (
	OpCreateOrder   Operation = "create order"
	OpEditOrder     Operation = "edit order"
	OpSetUrgency    Operation = "set order urgency"
	OpDispatchOrder Operation = "dispatch order"
	OpListAllOrders Operation = "list all orders"
	OpViewReports   Operation = "view reports"
	OpManageUsers   Operation = "manage users"
)

// AccessPolicy is a domain service deciding which roles may perform which
// operations.
//
// The role table:
//   - Sales creates and edits its own orders and sees only those
//   - Dispatch fulfils order lines and sees every order
//   - Accounts has read-only visibility over every order and the reports
//   - Admin may perform every operation, including user management
//
// Ownership checks (a sales user editing only their own orders) are layered
// on top of the role table via AuthorizeOwned.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// getAllowedRoles returns the role table of the policy.
func getAllowedRoles() map[Operation][]user.Role {
	return map[Operation][]user.Role{
		OpCreateOrder:   {user.RoleSales, user.RoleAdmin},
		OpEditOrder:     {user.RoleSales, user.RoleAdmin},
		OpSetUrgency:    {user.RoleSales, user.RoleAdmin},
		OpDispatchOrder: {user.RoleDispatch, user.RoleAdmin},
		OpListAllOrders: {user.RoleDispatch, user.RoleAccounts, user.RoleAdmin},
		OpViewReports:   {user.RoleDispatch, user.RoleAccounts, user.RoleAdmin},
		OpManageUsers:   {user.RoleAdmin},
	}
}

// Authorize checks whether the given role may perform the operation.
// Returns an UnauthorizedError if it may not.
func (p AccessPolicy) Authorize(role user.Role, op Operation) error {
	for _, allowed := range getAllowedRoles()[op] {
		if role == allowed {
			return nil
		}
	}

	return errs.NewUnauthorizedError(role.String(), string(op))
}

// AuthorizeOwned checks an operation that is further restricted to the
// actor's own records. Admin passes regardless of ownership; Sales passes
// only when the actor is the owner.
func (p AccessPolicy) AuthorizeOwned(role user.Role, op Operation, actor, owner string) error {
	if err := p.Authorize(role, op); err != nil {
		return err
	}

	if role == user.RoleAdmin {
		return nil
	}

	if actor != owner {
		return errs.NewUnauthorizedError(role.String(), string(op))
	}

	return nil
}

// CanSeeAllOrders reports whether the role sees every order, as opposed to
// the own-orders scope a sales user gets.
func (p AccessPolicy) CanSeeAllOrders(role user.Role) bool {
	return p.Authorize(role, OpListAllOrders) == nil
}
