package leaderboard_repo

import (
	"sort"

	"slot_machine/internal/model"
)

// insertScore добавляет запись и оставляет model.LeaderboardSize лучших.
// Сортировка стабильная: при равных очках выше остается более ранняя запись
func insertScore(entries []model.LeaderboardEntry, entry model.LeaderboardEntry) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, 0, len(entries)+1)
	out = append(out, entries...)
	out = append(out, entry)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > model.LeaderboardSize {
		out = out[:model.LeaderboardSize]
	}
	return out
}
