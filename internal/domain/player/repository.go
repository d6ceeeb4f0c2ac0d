package player

import "context"

// GoalieQuery selects players ever rostered at goalie.
type GoalieQuery struct {
	// Name filters on first or last name, case-insensitive substring.
	Name string
	// ActiveOnly keeps only active players.
	ActiveOnly bool
	// RosteredSinceYear, when > 0, also admits inactive players rostered
	// in a season with year >= RosteredSinceYear.
	RosteredSinceYear int
}

// DeactivationCandidate carries the last season year a player was rostered.
type DeactivationCandidate struct {
	Player
	LastRosteredYear *int
	IsGoalie         bool
}

type Repository interface {
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	ListByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	Search(ctx context.Context, name string, limit int) ([]Player, error)
	ListGoalies(ctx context.Context, query GoalieQuery) ([]Player, error)
	// ListStatCandidates returns players rostered on teamIDs in seasonID plus
	// anyone ever rostered at goalie, ordered by last then first name.
	ListStatCandidates(ctx context.Context, teamIDs []int64, seasonID int64) ([]Player, error)
	// FindByName matches first and last name exactly.
	FindByName(ctx context.Context, firstName, lastName string) (Player, bool, error)
	// ListByLastName matches case-insensitively, ordered by last then first
	// name. An empty lastName lists every player.
	ListByLastName(ctx context.Context, lastName string) ([]Player, error)
	// ListDeactivationCandidates returns every active player.
	ListDeactivationCandidates(ctx context.Context) ([]DeactivationCandidate, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) error
	Deactivate(ctx context.Context, playerIDs []int64) (int, error)
}
