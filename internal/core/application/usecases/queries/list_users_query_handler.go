package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
)

// ListUsersQueryHandler reads the account list from the database.
type ListUsersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListUsersQueryHandler creates a handler for account listings.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the listing. Only Admin may list accounts.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(query.ActorRole(), services.OpManageUsers); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			full_name,
			role
		FROM users
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]ListUsersQueryResponse, 0)
	for rows.Next() {
		var resp ListUsersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Username, &resp.FullName, &resp.Role); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID
		users = append(users, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
