package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetOrderUrgencyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored, _ := makeStoredOrder(t, "sales.user")
	cmd, _ := commands.NewSetOrderUrgencyCommand(stored.ID(), true, "sales.user", user.RoleSales)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderUrgencyCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, stored.IsUrgent())
}

func TestSetOrderUrgencyCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	stored, _ := makeStoredOrder(t, "other.sales")
	cmd, _ := commands.NewSetOrderUrgencyCommand(stored.ID(), true, "sales.user", user.RoleSales)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderUrgencyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.False(t, stored.IsUrgent())
}

func TestSetOrderUrgencyCommandHandler_Handle_PartiallyDispatched(t *testing.T) {
	ctx := t.Context()
	stored, itemID := makeStoredOrder(t, "sales.user")
	require.NoError(t, stored.DispatchItem(itemID, 10, "dispatch.user", time.Now()))
	cmd, _ := commands.NewSetOrderUrgencyCommand(stored.ID(), true, "sales.user", user.RoleSales)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetOrderUrgencyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
