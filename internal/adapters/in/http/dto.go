package http

import "time"

// LoginRequest carries credentials for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the signed token and the authenticated identity.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// OrderLineRequest is one product line in a create order request.
type OrderLineRequest struct {
	ProductName string  `json:"productName"`
	Qty         int     `json:"qty"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CreateOrderRequest carries the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Urgent       bool               `json:"urgent"`
	Currency     string             `json:"currency"`
	Address      string             `json:"address"`
	TaxID        string             `json:"taxId"`
	Lines        []OrderLineRequest `json:"lines"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// EditOrderItemRequest carries the body of PUT /api/v1/orders/items/:itemId.
type EditOrderItemRequest struct {
	ProductName string  `json:"productName"`
	Qty         int     `json:"qty"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

// DispatchOrderItemRequest carries the body of
// POST /api/v1/orders/items/:itemId/dispatch.
type DispatchOrderItemRequest struct {
	Qty int `json:"qty"`
}

// SetOrderUrgencyRequest carries the body of PUT /api/v1/orders/:orderId/urgency.
type SetOrderUrgencyRequest struct {
	Urgent bool `json:"urgent"`
}

// OrderItemResponse is one product line in an order listing.
type OrderItemResponse struct {
	ID            string     `json:"id"`
	ProductName   string     `json:"productName"`
	OrderedQty    int        `json:"orderedQty"`
	Unit          string     `json:"unit"`
	UnitPrice     float64    `json:"unitPrice"`
	Status        string     `json:"status"`
	DispatchedQty *int       `json:"dispatchedQty,omitempty"`
	DispatchedAt  *time.Time `json:"dispatchedAt,omitempty"`
	DispatchedBy  *string    `json:"dispatchedBy,omitempty"`
}

// OrderResponse is one order in a listing, in dispatch queue sequence.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customerName"`
	CreatedBy    string              `json:"createdBy"`
	CreatedAt    time.Time           `json:"createdAt"`
	Urgent       bool                `json:"urgent"`
	Currency     string              `json:"currency"`
	Address      string              `json:"address,omitempty"`
	TaxID        string              `json:"taxId,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// DispatchQueueLineResponse is one pending line in the dispatch queue, in
// fulfillment sequence.
type DispatchQueueLineResponse struct {
	ItemID       string    `json:"itemId"`
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Urgent       bool      `json:"urgent"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductName  string    `json:"productName"`
	OrderedQty   int       `json:"orderedQty"`
	Unit         string    `json:"unit"`
}

// CreateUserRequest carries the body of POST /api/v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// CreateUserResponse returns the identifier of the created account.
type CreateUserResponse struct {
	ID string `json:"id"`
}

// ChangePasswordRequest carries the body of PUT /api/v1/users/:userId/password.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// UserResponse is one account in the user listing.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ProductDemandRowResponse is one product's aggregate demand.
type ProductDemandRowResponse struct {
	ProductName string `json:"productName"`
	TotalQty    int    `json:"totalQty"`
	OrderCount  int    `json:"orderCount"`
}

// ProductDemandResponse ranks products by ordered quantity over a date range.
type ProductDemandResponse struct {
	Highest []ProductDemandRowResponse `json:"highest"`
	Lowest  []ProductDemandRowResponse `json:"lowest"`
}

// DispatchedLineResponse is one dispatched line in the dispatched report.
type DispatchedLineResponse struct {
	ItemID        string    `json:"itemId"`
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	ProductName   string    `json:"productName"`
	OrderedQty    int       `json:"orderedQty"`
	DispatchedQty int       `json:"dispatchedQty"`
	Unit          string    `json:"unit"`
	DispatchedAt  time.Time `json:"dispatchedAt"`
	DispatchedBy  string    `json:"dispatchedBy"`
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
