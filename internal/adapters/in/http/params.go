package http

import (
	"fmt"
	"strconv"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// statusFromString parses a line status query parameter.
// Accepts the exact names "Pending" and "Dispatched".
func statusFromString(raw string) (order.Status, error) {
	switch raw {
	case order.Pending.String():
		return order.Pending, nil
	case order.Dispatched.String():
		return order.Dispatched, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid status", raw),
		)
	}
}

// parsePositiveInt parses a positive integer query parameter.
func parsePositiveInt(raw string) (int, error) {
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"top is invalid",
			fmt.Errorf("%q is not a positive integer", raw),
		)
	}
	return parsed, nil
}

// parseDate parses a date query parameter. Accepts RFC 3339 timestamps and
// plain dates in YYYY-MM-DD form.
func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed, nil
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"date is invalid",
		fmt.Errorf("%q is not an RFC 3339 timestamp or YYYY-MM-DD date", raw),
	)
}
