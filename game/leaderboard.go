package game

import "sort"

// BuildLeaderboard ranks seats by score, breaking ties by earlier join order
// and then by lower question index. Ranks are 1-based. The input is never
// reordered.
func BuildLeaderboard(seats []*playerSeat) []LeaderboardEntry {
	ordered := make([]*playerSeat, len(seats))
	copy(ordered, seats)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.state.Score != b.state.Score {
			return a.state.Score > b.state.Score
		}
		if a.joinOrder != b.joinOrder {
			return a.joinOrder < b.joinOrder
		}
		return a.state.CurrentQuestionIndex < b.state.CurrentQuestionIndex
	})

	entries := make([]LeaderboardEntry, 0, len(ordered))
	for i, seat := range ordered {
		entries = append(entries, LeaderboardEntry{
			PlayerId: seat.state.Id,
			Rank:     i + 1,
			Username: seat.state.Username,
			Score:    seat.state.Score,
		})
	}
	return entries
}
