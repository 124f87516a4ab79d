package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves every account. Admin only.
type ListUsersQuery struct { //nolint:recvcheck //using for validation
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a query to list accounts.
func NewListUsersQuery(actorRole user.Role) (ListUsersQuery, error) {
	q := ListUsersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setActorRole(actorRole); err != nil {
		return ListUsersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// ActorRole returns the role of the requesting user.
func (q ListUsersQuery) ActorRole() user.Role {
	return q.actorRole
}

func (q *ListUsersQuery) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorRole = actorRole
	return nil
}

// ListUsersQueryResponse is one account in the listing.
// Password hashes are never exposed through queries.
type ListUsersQueryResponse struct {
	ID       kernel.UUID
	Username string
	FullName string
	Role     string
}
