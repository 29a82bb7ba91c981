package rowsource

import (
	"context"
	"fmt"
	"time"

	"sales-analytics/internal/model"
)

// DateRange restricts a sales fetch to order dates within [From, To].
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Source is read-only access to the cleaned entity tables. Fetches
// return an empty slice, not an error, when no rows match; a
// *DataAccessError when the backing store fails.
type Source interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	Products(ctx context.Context) ([]model.Product, error)
	Sales(ctx context.Context, r *DateRange) ([]model.SaleLine, error)
}

// DataAccessError wraps a storage failure. It is the only error class
// the analytics pipeline propagates.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("data access: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func accessErr(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}
