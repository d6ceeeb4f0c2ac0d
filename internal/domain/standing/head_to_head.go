package standing

type pairKey struct {
	low, high int64
}

func keyOf(a, b int64) pairKey {
	if a < b {
		return pairKey{low: a, high: b}
	}
	return pairKey{low: b, high: a}
}

type pairRecord struct {
	played   int
	lowWins  int
	highWins int
}

// HeadToHead answers whether two teams met and who owns the series.
type HeadToHead struct {
	pairs map[pairKey]*pairRecord
}

func NewHeadToHead(games []Game) HeadToHead {
	h := HeadToHead{pairs: make(map[pairKey]*pairRecord)}
	for _, g := range games {
		if g.HomeTeamID == g.AwayTeamID {
			continue
		}
		key := keyOf(g.HomeTeamID, g.AwayTeamID)
		rec, ok := h.pairs[key]
		if !ok {
			rec = &pairRecord{}
			h.pairs[key] = rec
		}
		rec.played++

		var winner int64
		switch {
		case g.HomeGoals > g.AwayGoals:
			winner = g.HomeTeamID
		case g.AwayGoals > g.HomeGoals:
			winner = g.AwayTeamID
		default:
			continue
		}
		if winner == key.low {
			rec.lowWins++
		} else {
			rec.highWins++
		}
	}
	return h
}

// Played reports whether a and b met at least once.
func (h HeadToHead) Played(a, b int64) bool {
	rec, ok := h.pairs[keyOf(a, b)]
	return ok && rec.played > 0
}

// Winner returns the team with more wins against the other. ok is false
// when they never met or the series is even.
func (h HeadToHead) Winner(a, b int64) (winner int64, ok bool) {
	rec, found := h.pairs[keyOf(a, b)]
	if !found || rec.played == 0 || rec.lowWins == rec.highWins {
		return 0, false
	}
	key := keyOf(a, b)
	if rec.lowWins > rec.highWins {
		return key.low, true
	}
	return key.high, true
}
