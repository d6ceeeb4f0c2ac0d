package season

import "context"

type Repository interface {
	// List returns every season, newest first.
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	ListByIDs(ctx context.Context, seasonIDs []int64) ([]Season, error)
	// Current returns the first season flagged current.
	Current(ctx context.Context) (Season, bool, error)
	// CurrentForDivision returns the newest season that has a team in the division.
	CurrentForDivision(ctx context.Context, divisionID int64) (Season, bool, error)
	FindByYearType(ctx context.Context, year int, seasonType Type) (Season, bool, error)
	Create(ctx context.Context, s Season) (Season, error)
	SetCurrent(ctx context.Context, seasonID int64) error
}
