package teamstat

import "testing"

func TestTeamStatMetrics(t *testing.T) {
	t.Parallel()

	s := TeamStat{Win: 5, OTW: 2, OTL: 1, Loss: 3, Tie: 2, GoalsFor: 40, GoalsAgainst: 31}
	if got := s.Points(); got != 5*3+2*2+2+1 {
		t.Fatalf("points = %d", got)
	}
	if s.RegulationWins() != 5 || s.TotalWins() != 7 {
		t.Fatalf("wins = %d/%d", s.RegulationWins(), s.TotalWins())
	}
	if s.GoalDifferential() != 9 {
		t.Fatalf("goal diff = %d", s.GoalDifferential())
	}
	if s.GamesPlayed() != 13 {
		t.Fatalf("games played = %d", s.GamesPlayed())
	}
}

func TestAddResult(t *testing.T) {
	t.Parallel()

	var s TeamStat
	s.AddResult(4, 2, false)
	s.AddResult(3, 2, true)
	s.AddResult(1, 2, true)
	s.AddResult(0, 5, false)
	s.AddResult(3, 3, false)

	want := TeamStat{Win: 1, OTW: 1, OTL: 1, Loss: 1, Tie: 1, GoalsFor: 11, GoalsAgainst: 14}
	if s != want {
		t.Fatalf("got %+v, want %+v", s, want)
	}
}
