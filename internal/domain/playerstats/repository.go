package playerstats

import "context"

type Repository interface {
	// ListSeasonLines aggregates every roster line of teams in the season.
	ListSeasonLines(ctx context.Context, seasonID int64, scope Scope) ([]Line, error)
	// ListPlayerSeasons returns per-season totals ordered by year then season type.
	ListPlayerSeasons(ctx context.Context, playerID int64, scope Scope) ([]SeasonLine, error)
	CountSeasonsRostered(ctx context.Context, playerID int64) (int, error)
	CareerLeaders(ctx context.Context, scope Scope, metric Metric, limit int) ([]CareerLine, error)
}
