package http

import (
	"net/http"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// Server exposes the order desk use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	editOrderItemHandler      commands.EditOrderItemCommandHandler
	dispatchOrderItemHandler  commands.DispatchOrderItemCommandHandler
	setOrderUrgencyHandler    commands.SetOrderUrgencyCommandHandler
	createUserHandler         commands.CreateUserCommandHandler
	deleteUserHandler         commands.DeleteUserCommandHandler
	changeUserPasswordHandler commands.ChangeUserPasswordCommandHandler

	// Query handlers
	authenticateUserHandler  queries.AuthenticateUserQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	dispatchQueueHandler     queries.DispatchQueueQueryHandler
	listUsersHandler         queries.ListUsersQueryHandler
	productDemandHandler     queries.ProductDemandQueryHandler
	dispatchedSummaryHandler queries.DispatchedSummaryQueryHandler

	auth *token.AuthToken
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderItemHandler commands.EditOrderItemCommandHandler,
	dispatchOrderItemHandler commands.DispatchOrderItemCommandHandler,
	setOrderUrgencyHandler commands.SetOrderUrgencyCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	changeUserPasswordHandler commands.ChangeUserPasswordCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	dispatchQueueHandler queries.DispatchQueueQueryHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	productDemandHandler queries.ProductDemandQueryHandler,
	dispatchedSummaryHandler queries.DispatchedSummaryQueryHandler,
	auth *token.AuthToken,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		editOrderItemHandler:      editOrderItemHandler,
		dispatchOrderItemHandler:  dispatchOrderItemHandler,
		setOrderUrgencyHandler:    setOrderUrgencyHandler,
		createUserHandler:         createUserHandler,
		deleteUserHandler:         deleteUserHandler,
		changeUserPasswordHandler: changeUserPasswordHandler,
		authenticateUserHandler:   authenticateUserHandler,
		listOrdersHandler:         listOrdersHandler,
		dispatchQueueHandler:      dispatchQueueHandler,
		listUsersHandler:          listUsersHandler,
		productDemandHandler:      productDemandHandler,
		dispatchedSummaryHandler:  dispatchedSummaryHandler,
		auth:                      auth,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
// Login and health are public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.POST("/api/v1/auth/login", s.Login)

	api := e.Group("/api/v1", AuthMiddleware(s.auth))
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/dispatch/queue", s.DispatchQueue)
	api.PUT("/orders/:orderId/urgency", s.SetOrderUrgency)
	api.PUT("/orders/items/:itemId", s.EditOrderItem)
	api.POST("/orders/items/:itemId/dispatch", s.DispatchOrderItem)
	api.POST("/users", s.CreateUser)
	api.GET("/users", s.ListUsers)
	api.DELETE("/users/:userId", s.DeleteUser)
	api.PUT("/users/:userId/password", s.ChangeUserPassword)
	api.GET("/reports/demand", s.ProductDemandReport)
	api.GET("/reports/dispatched", s.DispatchedReport)
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	identity, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	signed, err := s.auth.Create(identity.Username, identity.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:    signed,
		Username: identity.Username,
		FullName: identity.FullName,
		Role:     identity.Role,
	})
}

// CreateOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()
	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLine{
			ItemID:      kernel.NewUUID(),
			ProductName: line.ProductName,
			Qty:         line.Qty,
			Unit:        line.Unit,
			UnitPrice:   line.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.CustomerName,
		req.Urgent,
		req.Currency,
		req.Address,
		req.TaxID,
		lines,
		actor.Username,
		actor.Role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists orders in dispatch queue
// sequence, scoped to the actor's role. An optional status query parameter
// ("Pending" or "Dispatched") narrows the listing by line status.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := statusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewListOrdersQuery(actor.Username, actor.Role, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, OrderItemResponse{
				ID:            item.ID.String(),
				ProductName:   item.ProductName,
				OrderedQty:    item.OrderedQty,
				Unit:          item.Unit,
				UnitPrice:     item.UnitPrice,
				Status:        item.Status,
				DispatchedQty: item.DispatchedQty,
				DispatchedAt:  item.DispatchedAt,
				DispatchedBy:  item.DispatchedBy,
			})
		}

		response = append(response, OrderResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			CreatedBy:    o.CreatedBy,
			CreatedAt:    o.CreatedAt,
			Urgent:       o.Urgent,
			Currency:     o.Currency,
			Address:      o.Address,
			TaxID:        o.TaxID,
			Items:        items,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DispatchQueue handles GET /api/v1/dispatch/queue - lists every pending
// line in fulfillment sequence.
func (s *Server) DispatchQueue(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewDispatchQueueQuery(actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	lines, err := s.dispatchQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DispatchQueueLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, DispatchQueueLineResponse{
			ItemID:       line.ItemID.String(),
			OrderID:      line.OrderID.String(),
			CustomerName: line.CustomerName,
			Urgent:       line.Urgent,
			CreatedAt:    line.CreatedAt,
			ProductName:  line.ProductName,
			OrderedQty:   line.OrderedQty,
			Unit:         line.Unit,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// EditOrderItem handles PUT /api/v1/orders/items/:itemId - overwrites the
// mutable fields of a pending line.
func (s *Server) EditOrderItem(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req EditOrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewEditOrderItemCommand(
		itemID,
		req.ProductName,
		req.Qty,
		req.Unit,
		req.UnitPrice,
		actor.Username,
		actor.Role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.editOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrderItem handles POST /api/v1/orders/items/:itemId/dispatch -
// marks a pending line as fulfilled with the given quantity.
func (s *Server) DispatchOrderItem(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req DispatchOrderItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDispatchOrderItemCommand(itemID, req.Qty, actor.Username, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.dispatchOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderUrgency handles PUT /api/v1/orders/:orderId/urgency - flips the
// urgency flag while every line of the order is still pending.
func (s *Server) SetOrderUrgency(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetOrderUrgencyRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetOrderUrgencyCommand(orderID, req.Urgent, actor.Username, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setOrderUrgencyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateUser handles POST /api/v1/users - registers a new account. Admin only.
func (s *Server) CreateUser(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	var req CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(
		userID,
		req.Username,
		req.FullName,
		role,
		req.Password,
		actor.Username,
		actor.Role,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateUserResponse{ID: userID.String()})
}

// ListUsers handles GET /api/v1/users - lists every account. Admin only.
func (s *Server) ListUsers(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	query, err := queries.NewListUsersQuery(actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	users, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, UserResponse{
			ID:       u.ID.String(),
			Username: u.Username,
			FullName: u.FullName,
			Role:     u.Role,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteUser handles DELETE /api/v1/users/:userId - removes an account. Admin only.
func (s *Server) DeleteUser(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(userID, actor.Username, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeUserPassword handles PUT /api/v1/users/:userId/password - resets an
// account's password. Admin only.
func (s *Server) ChangeUserPassword(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeUserPasswordCommand(userID, req.Password, actor.Username, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeUserPasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProductDemandReport handles GET /api/v1/reports/demand - ranks products by
// ordered quantity over a date range. Query parameters: from, to (RFC 3339
// dates), top (list size, default 5).
func (s *Server) ProductDemandReport(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	from, to, err := parseDateRange(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	topN := 5
	if raw := ctx.QueryParam("top"); raw != "" {
		parsed, parseErr := parsePositiveInt(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		topN = parsed
	}

	query, err := queries.NewProductDemandQuery(from, to, topN, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	demand, err := s.productDemandHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProductDemandResponse{
		Highest: toDemandRows(demand.Highest),
		Lowest:  toDemandRows(demand.Lowest),
	})
}

// DispatchedReport handles GET /api/v1/reports/dispatched - lists every line
// dispatched within a date range. Query parameters: from, to (RFC 3339 dates).
func (s *Server) DispatchedReport(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return echo.ErrUnauthorized
	}

	from, to, err := parseDateRange(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewDispatchedSummaryQuery(from, to, actor.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	lines, err := s.dispatchedSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DispatchedLineResponse, 0, len(lines))
	for _, line := range lines {
		response = append(response, DispatchedLineResponse{
			ItemID:        line.ItemID.String(),
			OrderID:       line.OrderID.String(),
			CustomerName:  line.CustomerName,
			ProductName:   line.ProductName,
			OrderedQty:    line.OrderedQty,
			DispatchedQty: line.DispatchedQty,
			Unit:          line.Unit,
			DispatchedAt:  line.DispatchedAt,
			DispatchedBy:  line.DispatchedBy,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func toDemandRows(rows []queries.ProductDemandRow) []ProductDemandRowResponse {
	out := make([]ProductDemandRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProductDemandRowResponse{
			ProductName: row.ProductName,
			TotalQty:    row.TotalQty,
			OrderCount:  row.OrderCount,
		})
	}
	return out
}

// parseDateRange reads the from/to query parameters. Both default to a
// window covering the last 30 days when omitted.
func parseDateRange(ctx echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}

	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}

	return from, to, nil
}
