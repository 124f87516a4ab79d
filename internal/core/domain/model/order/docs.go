// Package order implements the Order aggregate for the order management
// system. It provides the domain model for customer orders and their product
// lines, following Domain-Driven Design principles.
//
// The package includes:
//   - Order: The aggregate root managing the order header and its lines
//   - Item: A product line with quantity, price, and a dispatch record
//   - Status: The line lifecycle state machine (Pending -> Dispatched)
//
// Lines are created together with the order and are never added or removed
// afterwards. A Pending line can be edited; dispatching is one-shot and
// terminal, even when the dispatched quantity is short of the ordered one.
// Urgency is an order-level flag that can only change while every line is
// still Pending.
package order
