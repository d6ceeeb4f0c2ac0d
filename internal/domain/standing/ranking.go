package standing

import "sort"

// Rank orders a division table and assigns 1-based ranks.
//
// Rows are sorted by points then regulation wins. A single adjacent pass
// then settles pairs still level on both: the head-to-head series winner
// goes first when the teams met and the series is not even, otherwise the
// better goal differential. Fully tied rows keep their incoming order.
func Rank(rows []Row, h2h HeadToHead) []Row {
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points() != out[j].Points() {
			return out[i].Points() > out[j].Points()
		}
		return out[i].RegulationWins() > out[j].RegulationWins()
	})

	for i := 0; i+1 < len(out); i++ {
		if swapAdjacent(out[i], out[i+1], h2h) {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// swapAdjacent reports whether lower should be placed above upper.
func swapAdjacent(upper, lower Row, h2h HeadToHead) bool {
	if upper.Points() != lower.Points() || upper.RegulationWins() != lower.RegulationWins() {
		return false
	}
	if h2h.Played(upper.TeamID, lower.TeamID) {
		if winner, ok := h2h.Winner(upper.TeamID, lower.TeamID); ok {
			return winner == lower.TeamID
		}
	}
	return lower.GoalDifferential() > upper.GoalDifferential()
}
