package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"geobattle-service/internal/domain"
)

const leaderboardKey = "geobattle:leaderboard"

// entry is the sorted-set member format. The id keeps members unique
// when two games produce the same name/score in the same instant.
type entry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Leaderboard keeps the global top list in a Redis sorted set scored by
// points, trimmed to size on every write. Reads go through singleflight
// so simultaneous game endings across rooms collapse to one fetch.
type Leaderboard struct {
	client *redis.Client
	size   int
	now    func() time.Time
	sf     singleflight.Group
}

func NewLeaderboard(client *redis.Client, size int) *Leaderboard {
	if size < 1 {
		size = 1
	}
	return &Leaderboard{client: client, size: size, now: time.Now}
}

func (l *Leaderboard) Record(ctx context.Context, players map[string]domain.Player) error {
	recordedAt := l.now()
	pipe := l.client.TxPipeline()
	for _, p := range players {
		member, err := json.Marshal(entry{
			ID:         uuid.NewString(),
			Name:       p.Name,
			Score:      p.Score,
			RecordedAt: recordedAt,
		})
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		pipe.ZAdd(ctx, leaderboardKey, redis.Z{Score: float64(p.Score), Member: string(member)})
	}
	// keep only the highest `size` ranks
	pipe.ZRemRangeByRank(ctx, leaderboardKey, 0, int64(-(l.size + 1)))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record leaderboard: %w", err)
	}
	return nil
}

func (l *Leaderboard) Top(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	result, err, _ := l.sf.Do(leaderboardKey, func() (interface{}, error) {
		members, err := l.client.ZRevRange(ctx, leaderboardKey, 0, int64(l.size-1)).Result()
		if err != nil {
			return nil, fmt.Errorf("read leaderboard: %w", err)
		}
		top := make([]domain.LeaderboardEntry, 0, len(members))
		for _, member := range members {
			var e entry
			if err := json.Unmarshal([]byte(member), &e); err != nil {
				return nil, fmt.Errorf("unmarshal entry: %w", err)
			}
			top = append(top, domain.LeaderboardEntry{Name: e.Name, Score: e.Score, RecordedAt: e.RecordedAt})
		}
		return top, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LeaderboardEntry), nil
}
