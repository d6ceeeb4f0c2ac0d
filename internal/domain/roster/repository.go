package roster

import "context"

// PlayerSeason is one roster appearance with its season, newest first when listed.
type PlayerSeason struct {
	EntryID    int64
	TeamID     int64
	TeamName   string
	SeasonID   int64
	SeasonYear int
	SeasonType int
	IsCaptain  bool
}

type Repository interface {
	GetByID(ctx context.Context, entryID int64) (Entry, bool, error)
	// ListByTeams returns entries ordered by id.
	ListByTeams(ctx context.Context, teamIDs []int64) ([]Entry, error)
	ListSeasonsByPlayer(ctx context.Context, playerID int64, limit int) ([]PlayerSeason, error)
	CountByPlayers(ctx context.Context, playerIDs []int64) (map[int64]int, error)
	// CurrentSeasonPlayerIDs returns players on a roster in a current season.
	CurrentSeasonPlayerIDs(ctx context.Context) ([]int64, error)
	Create(ctx context.Context, e Entry) (Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, entryID int64) error
}
