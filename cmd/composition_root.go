package cmd

import (
	"log/slog"

	"orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
// It is the only place that knows both the infrastructure and the
// application layer.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	authToken  *token.AuthToken
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		authToken:  token.NewAuthToken([]byte(config.AuthTokenKey), config.AuthTokenTTL),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderItemCommandHandler() commands.EditOrderItemCommandHandler {
	return commands.NewEditOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderItemCommandHandler() commands.DispatchOrderItemCommandHandler {
	return commands.NewDispatchOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderUrgencyCommandHandler() commands.SetOrderUrgencyCommandHandler {
	return commands.NewSetOrderUrgencyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserPasswordCommandHandler() commands.ChangeUserPasswordCommandHandler {
	return commands.NewChangeUserPasswordCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.config.DispatchVisibilityOwnOnly)
}

func (c *CompositionRoot) CreateDispatchQueueQueryHandler() queries.DispatchQueueQueryHandler {
	return queries.NewDispatchQueueQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductDemandQueryHandler() queries.ProductDemandQueryHandler {
	return queries.NewProductDemandQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDispatchedSummaryQueryHandler() queries.DispatchedSummaryQueryHandler {
	return queries.NewDispatchedSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the inbound HTTP adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateEditOrderItemCommandHandler(),
		c.CreateDispatchOrderItemCommandHandler(),
		c.CreateSetOrderUrgencyCommandHandler(),
		c.CreateCreateUserCommandHandler(),
		c.CreateDeleteUserCommandHandler(),
		c.CreateChangeUserPasswordCommandHandler(),
		c.CreateAuthenticateUserQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateDispatchQueueQueryHandler(),
		c.CreateListUsersQueryHandler(),
		c.CreateProductDemandQueryHandler(),
		c.CreateDispatchedSummaryQueryHandler(),
		c.authToken,
	)
}

// CreateJobManager builds the scheduled report jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchedSummaryQueryHandler(),
		c.CreateProductDemandQueryHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
