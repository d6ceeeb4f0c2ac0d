package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation weeks does not exist")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestNullableConversions(t *testing.T) {
	t.Parallel()

	if got := nullInt64Ptr(sql.NullInt64{}); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}
	id := int64(42)
	if got := nullInt64Ptr(int64PtrToNull(&id)); got == nil || *got != 42 {
		t.Fatalf("unexpected round trip: %v", got)
	}
	number := 9
	if got := nullIntPtr(intPtrToNull(&number)); got == nil || *got != 9 {
		t.Fatalf("unexpected int round trip: %v", got)
	}
	if optionalString("") != nil {
		t.Fatalf("expected empty string to be nil")
	}
}

func TestDateArgKeepsCalendarDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EDT", -4*60*60)
	sunday := time.Date(2025, 6, 8, 23, 30, 0, 0, loc)
	if got := dateArg(sunday); got != "2025-06-08" {
		t.Fatalf("dateArg = %q", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestStaleTeamStatsQuery(t *testing.T) {
	t.Parallel()

	query, args, err := staleTeamStatsQuery(30, 2, []int64{11, 12})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "DELETE FROM team_stats WHERE season_id = $1 AND division_id = $2 AND NOT (team_id = ANY($3))"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 3 || args[0] != int64(30) || args[1] != int64(2) {
		t.Fatalf("unexpected args: %v", args)
	}

	query, args, err = staleTeamStatsQuery(30, 2, nil)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if query != "DELETE FROM team_stats WHERE season_id = $1 AND division_id = $2" || len(args) != 2 {
		t.Fatalf("empty division must clear every row: %q %v", query, args)
	}
}
