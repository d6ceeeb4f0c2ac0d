package roster

import (
	"fmt"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

type Position int

const (
	PositionCenter  Position = 1
	PositionWing    Position = 2
	PositionDefense Position = 3
	PositionGoalie  Position = 4
)

func (p Position) String() string {
	switch p {
	case PositionCenter:
		return "Center"
	case PositionWing:
		return "Wing"
	case PositionDefense:
		return "Defense"
	case PositionGoalie:
		return "Goalie"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

func (p Position) Valid() bool {
	return p >= PositionCenter && p <= PositionGoalie
}

// Entry places a player on a team for that team's season.
type Entry struct {
	ID              int64
	PlayerID        int64
	TeamID          int64
	Position1       Position
	Position2       *Position
	PlayerNumber    *int
	IsCaptain       bool
	IsSubstitute    bool
	IsPrimaryGoalie bool
}

// PlaysGoalie reports whether either position is goalie.
func (e Entry) PlaysGoalie() bool {
	return e.Position1 == PositionGoalie || (e.Position2 != nil && *e.Position2 == PositionGoalie)
}

func (e Entry) Validate() error {
	var errs validation.Errors
	if e.PlayerID <= 0 {
		errs.Add("player", "player is required")
	}
	if e.TeamID <= 0 {
		errs.Add("team", "team is required")
	}
	if !e.Position1.Valid() {
		errs.Add("position1", "position1 must be between 1 and 4")
	}
	if e.Position2 != nil && !e.Position2.Valid() {
		errs.Add("position2", "position2 must be between 1 and 4")
	}
	if e.PlayerNumber != nil && (*e.PlayerNumber < 0 || *e.PlayerNumber > 99) {
		errs.Add("player_number", "player number must be between 0 and 99")
	}
	return errs.Err()
}

// RosterGoalie picks the team's regular goalie from its roster entries.
// Substitutes never qualify. A primary goalie wins; otherwise the first
// goalie entry in roster order is used.
func RosterGoalie(entries []Entry) (Entry, bool) {
	var (
		first Entry
		found bool
	)
	for _, e := range entries {
		if e.IsSubstitute || !e.PlaysGoalie() {
			continue
		}
		if e.IsPrimaryGoalie {
			return e, true
		}
		if !found {
			first, found = e, true
		}
	}
	return first, found
}

// ValidatePrimaryGoalie rejects a second primary goalie on the same team.
// teamEntries are the entries currently stored for candidate.TeamID.
func ValidatePrimaryGoalie(candidate Entry, teamEntries []Entry) error {
	if !candidate.IsPrimaryGoalie {
		return nil
	}
	for _, e := range teamEntries {
		if e.ID == candidate.ID || e.TeamID != candidate.TeamID {
			continue
		}
		if e.IsPrimaryGoalie {
			return validation.NewFieldError("is_primary_goalie",
				"only one primary goalie is allowed per team")
		}
	}
	return nil
}
