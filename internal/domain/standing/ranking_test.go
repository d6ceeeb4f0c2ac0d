package standing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/riskibarqy/street-hockey-league/internal/domain/teamstat"
)

func row(id int64, name string, win, otw, otl, loss, tie, gf, ga int) Row {
	return Row{
		TeamID:   id,
		TeamName: name,
		Record: teamstat.TeamStat{
			TeamID: id, Win: win, OTW: otw, OTL: otl, Loss: loss, Tie: tie,
			GoalsFor: gf, GoalsAgainst: ga,
		},
	}
}

func names(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.TeamName)
	}
	return out
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  []Row
		games []Game
		want  []string
	}{
		{
			name: "points order",
			rows: []Row{
				row(4, "Team D", 5, 0, 0, 0, 0, 35, 50),
				row(2, "Team B", 8, 2, 0, 0, 0, 45, 35),
				row(1, "Team A", 10, 0, 0, 0, 0, 50, 30),
				row(3, "Team C", 6, 1, 0, 0, 2, 40, 40),
			},
			want: []string{"Team A", "Team B", "Team C", "Team D"},
		},
		{
			name: "regulation wins break equal points",
			rows: []Row{
				row(2, "Team B", 6, 3, 0, 0, 0, 45, 35),
				row(1, "Team A", 8, 0, 0, 0, 0, 50, 30),
			},
			want: []string{"Team A", "Team B"},
		},
		{
			name: "four teams on 21 points ordered by regulation wins",
			rows: []Row{
				row(4, "Team D", 4, 1, 7, 0, 0, 45, 35),
				row(3, "Team C", 5, 0, 6, 0, 0, 40, 35),
				row(2, "Team B", 6, 1, 1, 0, 0, 55, 35),
				row(1, "Team A", 7, 0, 0, 0, 0, 50, 35),
			},
			want: []string{"Team A", "Team B", "Team C", "Team D"},
		},
		{
			name: "goal differential when teams never met",
			rows: []Row{
				row(2, "Team B", 7, 0, 0, 0, 0, 45, 35),
				row(1, "Team A", 7, 0, 0, 0, 0, 50, 30),
				row(3, "Team C", 7, 0, 0, 0, 0, 40, 35),
			},
			want: []string{"Team A", "Team B", "Team C"},
		},
		{
			name: "head to head beats goal differential",
			rows: []Row{
				row(1, "Team A", 8, 0, 0, 0, 0, 50, 30),
				row(2, "Team B", 8, 0, 0, 0, 0, 40, 50),
			},
			games: []Game{
				{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 4},
			},
			want: []string{"Team B", "Team A"},
		},
		{
			name: "even series falls back to goal differential",
			rows: []Row{
				row(2, "Team B", 8, 0, 0, 0, 0, 40, 50),
				row(1, "Team A", 8, 0, 0, 0, 0, 50, 30),
			},
			games: []Game{
				{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 4},
				{HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 3},
			},
			want: []string{"Team A", "Team B"},
		},
		{
			name: "regulation wins outrank head to head",
			rows: []Row{
				row(1, "Team A", 7, 0, 0, 0, 0, 50, 35),
				row(2, "Team B", 6, 1, 1, 0, 0, 45, 40),
			},
			games: []Game{
				{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 1, AwayGoals: 5},
			},
			want: []string{"Team A", "Team B"},
		},
		{
			name: "single pass moves a team up at most one place",
			rows: []Row{
				row(3, "Team C", 7, 0, 0, 0, 0, 40, 35),
				row(2, "Team B", 7, 0, 0, 0, 0, 45, 35),
				row(1, "Team A", 7, 0, 0, 0, 0, 50, 30),
			},
			want: []string{"Team B", "Team A", "Team C"},
		},
		{
			name: "all metrics tied keeps order",
			rows: []Row{
				row(2, "Team B", 7, 0, 0, 0, 0, 40, 35),
				row(1, "Team A", 7, 0, 0, 0, 0, 40, 35),
			},
			want: []string{"Team B", "Team A"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Rank(tc.rows, NewHeadToHead(tc.games))
			if diff := cmp.Diff(tc.want, names(got)); diff != "" {
				t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
			}
			for i, r := range got {
				if r.Rank != i+1 {
					t.Fatalf("row %d has rank %d", i, r.Rank)
				}
			}
		})
	}
}

func TestHeadToHead(t *testing.T) {
	t.Parallel()

	h := NewHeadToHead([]Game{
		{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 3, AwayGoals: 3},
		{HomeTeamID: 3, AwayTeamID: 1, HomeGoals: 2, AwayGoals: 1},
	})

	if !h.Played(2, 1) {
		t.Fatalf("expected 1 and 2 to have played")
	}
	if _, ok := h.Winner(1, 2); ok {
		t.Fatalf("tie must not produce a winner")
	}
	if w, ok := h.Winner(1, 3); !ok || w != 3 {
		t.Fatalf("winner = %d/%v, want 3", w, ok)
	}
	if h.Played(2, 3) {
		t.Fatalf("2 and 3 never played")
	}
}
