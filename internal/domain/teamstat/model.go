package teamstat

import "github.com/riskibarqy/street-hockey-league/internal/domain/validation"

// TeamStat is a team's record within a season and division.
type TeamStat struct {
	ID           int64
	TeamID       int64
	DivisionID   int64
	SeasonID     int64
	Win          int
	OTW          int
	OTL          int
	Loss         int
	Tie          int
	GoalsFor     int
	GoalsAgainst int
}

// Points: 3 per regulation win, 2 per OT win, 1 per tie or OT loss.
func (s TeamStat) Points() int {
	return s.Win*3 + s.OTW*2 + s.Tie + s.OTL
}

func (s TeamStat) RegulationWins() int {
	return s.Win
}

func (s TeamStat) TotalWins() int {
	return s.Win + s.OTW
}

func (s TeamStat) GoalDifferential() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (s TeamStat) GamesPlayed() int {
	return s.Win + s.OTW + s.OTL + s.Loss + s.Tie
}

// AddResult records one finished game from this team's perspective.
func (s *TeamStat) AddResult(goalsFor, goalsAgainst int, overtime bool) {
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor == goalsAgainst:
		s.Tie++
	case goalsFor > goalsAgainst && overtime:
		s.OTW++
	case goalsFor > goalsAgainst:
		s.Win++
	case overtime:
		s.OTL++
	default:
		s.Loss++
	}
}

func (s TeamStat) Validate() error {
	var errs validation.Errors
	if s.TeamID <= 0 {
		errs.Add("team", "team is required")
	}
	if s.DivisionID <= 0 {
		errs.Add("division", "division is required")
	}
	if s.SeasonID <= 0 {
		errs.Add("season", "season is required")
	}
	counts := []struct {
		field string
		value int
	}{
		{"win", s.Win}, {"otw", s.OTW}, {"otl", s.OTL}, {"loss", s.Loss}, {"tie", s.Tie},
		{"goals_for", s.GoalsFor}, {"goals_against", s.GoalsAgainst},
	}
	for _, c := range counts {
		if c.value < 0 {
			errs.Add(c.field, "value cannot be negative")
		}
	}
	return errs.Err()
}
