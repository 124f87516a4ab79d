package queries

import "orderdesk/internal/core/domain/model/order"

// statusString renders a stored status value for query responses.
func statusString(status int) string {
	return order.Status(status).String()
}
