package matchup

import (
	"context"
	"time"
)

type ListFilter struct {
	SeasonID   *int64
	DivisionID *int64
	WeekIDs    []int64
	TeamID     *int64
	// FromDate keeps matchups whose week date is on or after it.
	FromDate time.Time
}

// Result is a game with goal totals derived from recorded stats.
type Result struct {
	MatchUpID      int64
	WeekID         int64
	Date           time.Time
	DivisionID     int64
	AwayTeamID     int64
	HomeTeamID     int64
	AwayGoals      int
	HomeGoals      int
	HasStats       bool
	IsPostseason   bool
	WentToOvertime bool
}

type ResultFilter struct {
	SeasonID   int64
	DivisionID *int64
	// Postseason nil means both.
	Postseason *bool
	PlayedOnly bool
}

type Repository interface {
	GetByID(ctx context.Context, matchupID int64) (MatchUp, bool, error)
	// List orders by week date then time.
	List(ctx context.Context, filter ListFilter) ([]MatchUp, error)
	ListResults(ctx context.Context, filter ResultFilter) ([]Result, error)
	Create(ctx context.Context, m MatchUp) (MatchUp, error)
	Update(ctx context.Context, m MatchUp) error
	UpdateGoalie(ctx context.Context, matchupID int64, side Side, goalieID *int64, status GoalieStatus) error
}
