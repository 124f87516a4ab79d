package cmd

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/user"
)

// EnsureAdminAccount seeds the first admin account when the users table is
// empty. User management is admin only, so a fresh deployment needs one
// account to exist before anyone can log in. Does nothing when any account
// already exists or when no admin password is configured.
func (c *CompositionRoot) EnsureAdminAccount(ctx context.Context) error {
	if c.config.AdminPassword == "" {
		return nil
	}

	uow := c.uowFactory.Create()

	existing, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	admin, err := user.NewUser(
		kernel.NewUUID(),
		c.config.AdminUsername,
		c.config.AdminFullName,
		user.RoleAdmin,
		c.config.AdminPassword,
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.UserRepository().Add(ctx, admin); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
