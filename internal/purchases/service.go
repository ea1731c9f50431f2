// Package purchases implements the purchase query engine: filtering,
// sorting, pagination and analytics aggregation over a user's in-memory
// purchase collection, persisted through the user data store.
package purchases

import (
	"context"
	"errors"
	"time"

	"budget-tracker/internal/models"
)

// ErrPurchaseNotFound is returned when an id lookup misses.
var ErrPurchaseNotFound = errors.New("purchase not found")

// ErrValidation is returned when a create request is missing required
// fields or carries an invalid amount.
var ErrValidation = errors.New("invalid purchase request")

// Service is the query surface consumed by the UI. A future real backend
// would satisfy the same contract.
type Service interface {
	List(ctx context.Context, filters *models.Filters, sort *models.SortOptions, pagination *models.Pagination) (*models.PaginatedPurchases, error)
	Get(ctx context.Context, id string) (*models.Purchase, error)
	Create(ctx context.Context, req models.CreatePurchaseRequest) (*models.Purchase, error)
	Update(ctx context.Context, id string, req models.UpdatePurchaseRequest) (*models.Purchase, error)
	Delete(ctx context.Context, id string) error
	Analytics(ctx context.Context, filters *models.Filters) (*models.Analytics, error)
}

// Latency holds the artificial per-operation delays that stand in for
// network round-trips. Zero values disable the delay.
type Latency struct {
	List      time.Duration
	Get       time.Duration
	Create    time.Duration
	Update    time.Duration
	Delete    time.Duration
	Analytics time.Duration
}

// DefaultLatency returns the simulated round-trip times.
func DefaultLatency() Latency {
	return Latency{
		List:      100 * time.Millisecond,
		Get:       50 * time.Millisecond,
		Create:    200 * time.Millisecond,
		Update:    150 * time.Millisecond,
		Delete:    100 * time.Millisecond,
		Analytics: 300 * time.Millisecond,
	}
}

const (
	// DefaultPage and DefaultLimit apply when no pagination is given.
	DefaultPage  = 1
	DefaultLimit = 20
)
