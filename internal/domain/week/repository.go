package week

import (
	"context"
	"time"
)

type ListFilter struct {
	SeasonID   *int64
	DivisionID *int64
	// From and To bound the date, inclusive, when non-zero.
	From time.Time
	To   time.Time
	// Dates restricts to these exact dates when non-empty.
	Dates         []time.Time
	CancelledOnly bool
}

type Repository interface {
	GetByID(ctx context.Context, weekID int64) (Week, bool, error)
	ListByIDs(ctx context.Context, weekIDs []int64) ([]Week, error)
	// List orders by date, division, then id.
	List(ctx context.Context, filter ListFilter) ([]Week, error)
	// NextDates returns up to limit distinct dates on or after from (after, when strict).
	NextDates(ctx context.Context, from time.Time, strict bool, limit int) ([]time.Time, error)
	Create(ctx context.Context, w Week) (Week, error)
	// Toggle flips is_cancelled and returns the updated week.
	Toggle(ctx context.Context, weekID int64) (Week, error)
	SetCancelled(ctx context.Context, weekIDs []int64, cancelled bool) (int, error)
	SetCancelledOnDate(ctx context.Context, date time.Time, cancelled bool) (int, error)
}
