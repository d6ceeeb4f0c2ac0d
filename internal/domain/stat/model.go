package stat

import "github.com/riskibarqy/street-hockey-league/internal/domain/validation"

// Stat is one player's line in one matchup.
type Stat struct {
	ID           int64
	PlayerID     int64
	TeamID       int64
	MatchUpID    int64
	Goals        int
	Assists      int
	GoalsAgainst int
	EmptyNet     int
}

func (s Stat) Points() int {
	return s.Goals + s.Assists
}

func (s Stat) Validate() error {
	var errs validation.Errors
	if s.PlayerID <= 0 {
		errs.Add("player", "player is required")
	}
	if s.TeamID <= 0 {
		errs.Add("team", "team is required")
	}
	if s.Goals < 0 || s.Assists < 0 || s.GoalsAgainst < 0 || s.EmptyNet < 0 {
		errs.Add("goals", "stat values cannot be negative")
	}
	return errs.Err()
}
