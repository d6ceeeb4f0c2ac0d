package stat

import "context"

type Repository interface {
	ListByMatchup(ctx context.Context, matchupID int64) ([]Stat, error)
	// ReplaceForMatchup swaps every stat line of the matchup atomically.
	ReplaceForMatchup(ctx context.Context, matchupID int64, stats []Stat) error
}
