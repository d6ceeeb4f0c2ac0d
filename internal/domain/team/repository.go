package team

import "context"

type ListFilter struct {
	SeasonID   *int64
	DivisionID *int64
	ActiveOnly bool
	// CurrentSeasonOnly keeps teams whose season is flagged current.
	CurrentSeasonOnly bool
	ChampionsOnly     bool
}

type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	ListByIDs(ctx context.Context, teamIDs []int64) ([]Team, error)
	GetActiveByAccessCode(ctx context.Context, code string) (Team, bool, error)
	// List orders by division number then team name.
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) error
}
