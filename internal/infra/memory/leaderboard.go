package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"geobattle-service/internal/domain"
)

// Leaderboard is the in-memory implementation of game.LeaderboardStore,
// used when no backing store is configured and throughout the tests.
type Leaderboard struct {
	size int
	now  func() time.Time

	mu      sync.Mutex
	entries []domain.LeaderboardEntry
}

func NewLeaderboard(size int) *Leaderboard {
	return NewLeaderboardWithClock(size, time.Now)
}

// NewLeaderboardWithClock allows deterministic timestamps in tests.
func NewLeaderboardWithClock(size int, now func() time.Time) *Leaderboard {
	if size < 1 {
		size = 1
	}
	return &Leaderboard{size: size, now: now}
}

func (l *Leaderboard) Record(_ context.Context, players map[string]domain.Player) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	recordedAt := l.now()
	for _, p := range players {
		l.entries = append(l.entries, domain.LeaderboardEntry{
			Name:       p.Name,
			Score:      p.Score,
			RecordedAt: recordedAt,
		})
	}
	SortEntries(l.entries)
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
	return nil
}

func (l *Leaderboard) Top(_ context.Context) ([]domain.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	top := make([]domain.LeaderboardEntry, len(l.entries))
	copy(top, l.entries)
	return top, nil
}

// SortEntries orders a board by score descending, breaking ties toward
// whoever reached the score earlier, then by name.
func SortEntries(entries []domain.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].RecordedAt.Before(entries[j].RecordedAt)
		}
		return entries[i].Name < entries[j].Name
	})
}
