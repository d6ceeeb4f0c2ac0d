package matchup

import (
	"testing"
	"time"

	"github.com/riskibarqy/street-hockey-league/internal/domain/validation"
)

func id(v int64) *int64 { return &v }

func TestMatchUpValidate_GoalieStatusRules(t *testing.T) {
	t.Parallel()

	base := MatchUp{WeekID: 1, AwayTeamID: 2, HomeTeamID: 3, AwayGoalieStatus: GoalieUnconfirmed, HomeGoalieStatus: GoalieUnconfirmed}

	tests := []struct {
		name       string
		mutate     func(*MatchUp)
		wantFields []string
	}{
		{name: "unconfirmed without goalie", mutate: func(*MatchUp) {}},
		{name: "unconfirmed with goalie", mutate: func(m *MatchUp) { m.HomeGoalieID = id(9) }},
		{name: "confirmed with goalie", mutate: func(m *MatchUp) {
			m.AwayGoalieStatus = GoalieConfirmed
			m.AwayGoalieID = id(9)
		}},
		{name: "sub needed without goalie", mutate: func(m *MatchUp) { m.HomeGoalieStatus = GoalieSubNeeded }},
		{name: "sub needed with away goalie", mutate: func(m *MatchUp) {
			m.AwayGoalieStatus = GoalieSubNeeded
			m.AwayGoalieID = id(9)
		}, wantFields: []string{"away_goalie"}},
		{name: "sub needed with both goalies", mutate: func(m *MatchUp) {
			m.AwayGoalieStatus, m.HomeGoalieStatus = GoalieSubNeeded, GoalieSubNeeded
			m.AwayGoalieID, m.HomeGoalieID = id(9), id(10)
		}, wantFields: []string{"away_goalie", "home_goalie"}},
		{name: "same team twice", mutate: func(m *MatchUp) { m.HomeTeamID = m.AwayTeamID }, wantFields: []string{"hometeam"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := base
			tc.mutate(&m)
			fields := validation.Fields(m.Validate())
			if len(fields) != len(tc.wantFields) {
				t.Fatalf("fields = %v, want %v", fields, tc.wantFields)
			}
			for i, f := range fields {
				if f.Field != tc.wantFields[i] {
					t.Fatalf("field[%d] = %s, want %s", i, f.Field, tc.wantFields[i])
				}
			}
		})
	}
}

func TestSetGoalie_SubNeededClearsGoalie(t *testing.T) {
	t.Parallel()

	m := MatchUp{AwayTeamID: 1, HomeTeamID: 2}
	m.SetGoalie(SideHome, id(7), GoalieSubNeeded)
	if m.HomeGoalieID != nil || m.HomeGoalieStatus != GoalieSubNeeded {
		t.Fatalf("expected cleared home goalie with sub needed, got %+v", m)
	}
	m.SetGoalie(SideAway, id(8), GoalieConfirmed)
	if m.AwayGoalieID == nil || *m.AwayGoalieID != 8 {
		t.Fatalf("expected away goalie 8, got %+v", m.AwayGoalieID)
	}
	if !m.NeedsSub() {
		t.Fatalf("expected NeedsSub")
	}
}

func TestParseAndFormatTime(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"07:30 PM", "7:30 pm", "19:30:00", "19:30"} {
		got, err := ParseTime(raw)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", raw, err)
		}
		if got.Hour() != 19 || got.Minute() != 30 {
			t.Fatalf("ParseTime(%q) = %v", raw, got)
		}
		if FormatTime(got) != "07:30 PM" {
			t.Fatalf("FormatTime = %q", FormatTime(got))
		}
	}
	if _, err := ParseTime("noon"); err == nil {
		t.Fatalf("expected error for invalid time")
	}

	clock := time.Date(0, 1, 1, 9, 5, 0, 0, time.UTC)
	if ClockString(clock) != "09:05:00" {
		t.Fatalf("ClockString = %q", ClockString(clock))
	}
}
