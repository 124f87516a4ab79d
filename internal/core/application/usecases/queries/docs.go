// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures; they never mutate state and never load full aggregates.
package queries
