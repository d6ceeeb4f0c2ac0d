package standing

import "github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"

// Row is one team's line in a division table.
type Row struct {
	Rank       int
	TeamID     int64
	TeamName   string
	DivisionID int64
	Record     teamstat.TeamStat
}

func (r Row) Points() int           { return r.Record.Points() }
func (r Row) RegulationWins() int   { return r.Record.RegulationWins() }
func (r Row) GoalDifferential() int { return r.Record.GoalDifferential() }

// Game is a played regular-season game used for head-to-head lookups.
type Game struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeGoals  int
	AwayGoals  int
}
