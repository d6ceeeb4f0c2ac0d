package teamstat

import "context"

// Record is a team's summed record with its name for display.
type Record struct {
	TeamStat
	TeamName string
}

type Repository interface {
	// ListRecords sums rows per team for the season, optionally one division.
	ListRecords(ctx context.Context, seasonID int64, divisionID *int64) ([]Record, error)
	Upsert(ctx context.Context, s TeamStat) (TeamStat, error)
	// ReplaceForDivision upserts the division's rows for the season and drops
	// rows of teams not in rows.
	ReplaceForDivision(ctx context.Context, seasonID, divisionID int64, rows []TeamStat) error
}
