package matchup

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

type GoalieStatus int

const (
	GoalieConfirmed   GoalieStatus = 1
	GoalieSubNeeded   GoalieStatus = 2
	GoalieUnconfirmed GoalieStatus = 3
)

func (s GoalieStatus) String() string {
	switch s {
	case GoalieConfirmed:
		return "Confirmed"
	case GoalieSubNeeded:
		return "Sub Needed"
	case GoalieUnconfirmed:
		return "Unconfirmed"
	default:
		return fmt.Sprintf("GoalieStatus(%d)", int(s))
	}
}

func (s GoalieStatus) Valid() bool {
	return s >= GoalieConfirmed && s <= GoalieUnconfirmed
}

// StatusChoice is one selectable goalie status.
type StatusChoice struct {
	Value GoalieStatus
	Label string
}

func StatusChoices() []StatusChoice {
	return []StatusChoice{
		{Value: GoalieConfirmed, Label: GoalieConfirmed.String()},
		{Value: GoalieSubNeeded, Label: GoalieSubNeeded.String()},
		{Value: GoalieUnconfirmed, Label: GoalieUnconfirmed.String()},
	}
}

type Side string

const (
	SideAway Side = "away"
	SideHome Side = "home"
)

// MatchUp is a single scheduled game.
type MatchUp struct {
	ID               int64
	WeekID           int64
	Time             time.Time
	AwayTeamID       int64
	HomeTeamID       int64
	Ref1ID           *int64
	Ref2ID           *int64
	IsPostseason     bool
	WentToOvertime   bool
	Notes            string
	AwayGoalieID     *int64
	HomeGoalieID     *int64
	AwayGoalieStatus GoalieStatus
	HomeGoalieStatus GoalieStatus
}

// SideOf returns the side teamID plays on.
func (m MatchUp) SideOf(teamID int64) (Side, bool) {
	switch teamID {
	case m.HomeTeamID:
		return SideHome, true
	case m.AwayTeamID:
		return SideAway, true
	default:
		return "", false
	}
}

func (m MatchUp) TeamID(side Side) int64 {
	if side == SideHome {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}

func (m MatchUp) OpponentID(side Side) int64 {
	if side == SideHome {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

func (m MatchUp) Goalie(side Side) (*int64, GoalieStatus) {
	if side == SideHome {
		return m.HomeGoalieID, m.HomeGoalieStatus
	}
	return m.AwayGoalieID, m.AwayGoalieStatus
}

// SetGoalie applies a goalie and status to one side. Sub Needed clears the goalie.
func (m *MatchUp) SetGoalie(side Side, goalieID *int64, status GoalieStatus) {
	if status == GoalieSubNeeded {
		goalieID = nil
	}
	if side == SideHome {
		m.HomeGoalieID, m.HomeGoalieStatus = goalieID, status
		return
	}
	m.AwayGoalieID, m.AwayGoalieStatus = goalieID, status
}

// NeedsSub reports whether either side is looking for a substitute goalie.
func (m MatchUp) NeedsSub() bool {
	return m.AwayGoalieStatus == GoalieSubNeeded || m.HomeGoalieStatus == GoalieSubNeeded
}

func (m MatchUp) Validate() error {
	var errs validation.Errors
	if m.WeekID <= 0 {
		errs.Add("week", "week is required")
	}
	if m.AwayTeamID <= 0 {
		errs.Add("awayteam", "away team is required")
	}
	if m.HomeTeamID <= 0 {
		errs.Add("hometeam", "home team is required")
	}
	if m.AwayTeamID > 0 && m.AwayTeamID == m.HomeTeamID {
		errs.Add("hometeam", "home and away team must differ")
	}
	if !m.AwayGoalieStatus.Valid() {
		errs.Add("away_goalie_status", "invalid goalie status")
	}
	if !m.HomeGoalieStatus.Valid() {
		errs.Add("home_goalie_status", "invalid goalie status")
	}
	if m.AwayGoalieStatus == GoalieSubNeeded && m.AwayGoalieID != nil {
		errs.Add("away_goalie", "clear the away goalie when status is Sub Needed")
	}
	if m.HomeGoalieStatus == GoalieSubNeeded && m.HomeGoalieID != nil {
		errs.Add("home_goalie", "clear the home goalie when status is Sub Needed")
	}
	return errs.Err()
}

const (
	timeLayout12 = "03:04 PM"
	timeLayout24 = "15:04:05"
)

var timeInputLayouts = []string{timeLayout12, "3:04 PM", "3:04PM", timeLayout24, "15:04"}

// ParseTime accepts 12-hour ("03:04 PM") and 24-hour ("15:04:05") input.
func ParseTime(raw string) (time.Time, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range timeInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid game time %q", raw)
}

// FormatTime renders a game time as "03:04 PM".
func FormatTime(t time.Time) string {
	return t.Format(timeLayout12)
}

// ClockString renders a game time for a SQL time column.
func ClockString(t time.Time) string {
	return t.Format(timeLayout24)
}
