package playerstats

import (
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/street-hockey-league/internal/domain/roster"
)

// Scope selects which games feed a stat line.
type Scope string

const (
	ScopeRegular    Scope = "regular"
	ScopePostseason Scope = "postseason"
	ScopeCombined   Scope = "combined"
)

// NormalizeScope maps unknown or empty input to the regular season.
func NormalizeScope(raw string) Scope {
	switch Scope(strings.ToLower(strings.TrimSpace(raw))) {
	case ScopePostseason:
		return ScopePostseason
	case ScopeCombined:
		return ScopeCombined
	default:
		return ScopeRegular
	}
}

// Postseason is the is_postseason filter for the scope; nil means all games.
func (s Scope) Postseason() *bool {
	switch s {
	case ScopePostseason:
		v := true
		return &v
	case ScopeCombined:
		return nil
	default:
		v := false
		return &v
	}
}

// Line is one player's totals for one roster team in a season.
type Line struct {
	PlayerID     int64
	FirstName    string
	LastName     string
	TeamID       int64
	TeamName     string
	DivisionID   *int64
	SeasonID     int64
	Position1    roster.Position
	Position2    *roster.Position
	IsCaptain    bool
	Goals        int
	Assists      int
	GoalsAgainst int
	GamesPlayed  int
}

func (l Line) Points() int {
	return l.Goals + l.Assists
}

func (l Line) PlaysGoalie() bool {
	return l.Position1 == roster.PositionGoalie || (l.Position2 != nil && *l.Position2 == roster.PositionGoalie)
}

// GAA is goals against per game played, rounded to two places.
func (l Line) GAA() float64 {
	return GoalsAgainstAverage(l.GoalsAgainst, l.GamesPlayed)
}

func GoalsAgainstAverage(goalsAgainst, games int) float64 {
	if games <= 0 {
		return 0
	}
	return Round2(float64(goalsAgainst) / float64(games))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Leaders splits eligible lines into offensive and goalie leader boards.
// Lines without a game are dropped. Both boards sort by GAA ascending,
// then points, goals and assists descending.
func Leaders(lines []Line) (offense, goalies []Line) {
	for _, l := range lines {
		if l.GamesPlayed < 1 {
			continue
		}
		if l.PlaysGoalie() {
			goalies = append(goalies, l)
			continue
		}
		if l.Points() > 0 {
			offense = append(offense, l)
		}
	}
	sortLeaders(offense)
	sortLeaders(goalies)
	return offense, goalies
}

func sortLeaders(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.GAA() != b.GAA() {
			return a.GAA() < b.GAA()
		}
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		if a.Goals != b.Goals {
			return a.Goals > b.Goals
		}
		return a.Assists > b.Assists
	})
}

// SeasonLine is a player's totals for one season, for trends and profiles.
type SeasonLine struct {
	SeasonID     int64
	Year         int
	SeasonType   int
	TeamID       int64
	TeamName     string
	Goals        int
	Assists      int
	GoalsAgainst int
	GamesPlayed  int
}

func (s SeasonLine) Points() int {
	return s.Goals + s.Assists
}

func (s SeasonLine) GAA() float64 {
	return GoalsAgainstAverage(s.GoalsAgainst, s.GamesPlayed)
}

// Totals sums season lines.
type Totals struct {
	Goals        int
	Assists      int
	GoalsAgainst int
	GamesPlayed  int
}

func Sum(lines []SeasonLine) Totals {
	var t Totals
	for _, l := range lines {
		t.Goals += l.Goals
		t.Assists += l.Assists
		t.GoalsAgainst += l.GoalsAgainst
		t.GamesPlayed += l.GamesPlayed
	}
	return t
}

// Averages are per-season rates over every season the player was rostered.
type Averages struct {
	SeasonsPlayed    int
	GoalsPerSeason   float64
	AssistsPerSeason float64
}

func AveragesFor(t Totals, seasonsPlayed int) Averages {
	avg := Averages{SeasonsPlayed: seasonsPlayed}
	if seasonsPlayed <= 0 {
		return avg
	}
	avg.GoalsPerSeason = Round2(float64(t.Goals) / float64(seasonsPlayed))
	avg.AssistsPerSeason = Round2(float64(t.Assists) / float64(seasonsPlayed))
	return avg
}

// Metric ranks career leader boards.
type Metric string

const (
	MetricGoals   Metric = "goals"
	MetricAssists Metric = "assists"
	MetricPoints  Metric = "points"
)

// CareerLine is a player's all-time totals.
type CareerLine struct {
	PlayerID      int64
	FirstName     string
	LastName      string
	Goals         int
	Assists       int
	GamesPlayed   int
	SeasonsPlayed int
}

func (c CareerLine) Points() int {
	return c.Goals + c.Assists
}
