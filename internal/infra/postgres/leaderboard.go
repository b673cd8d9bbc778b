package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"geobattle-service/internal/domain"
)

// Leaderboard persists the global top list in Postgres. Each write runs
// in one transaction that appends the game's entries and prunes
// everything below the cutoff, so concurrent game endings serialize at
// the database.
type Leaderboard struct {
	pool *pgxpool.Pool
	size int
}

func NewLeaderboard(pool *pgxpool.Pool, size int) *Leaderboard {
	if size < 1 {
		size = 1
	}
	return &Leaderboard{pool: pool, size: size}
}

func (l *Leaderboard) Record(ctx context.Context, players map[string]domain.Player) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range players {
		if _, err := tx.Exec(ctx,
			`INSERT INTO leaderboard_entries (name, score) VALUES ($1, $2)`,
			p.Name, p.Score,
		); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, `
		DELETE FROM leaderboard_entries
		WHERE id NOT IN (
			SELECT id FROM leaderboard_entries
			ORDER BY score DESC, recorded_at ASC
			LIMIT $1
		)`, l.size,
	); err != nil {
		return fmt.Errorf("trim leaderboard: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (l *Leaderboard) Top(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := l.pool.Query(ctx, `
		SELECT name, score, recorded_at FROM leaderboard_entries
		ORDER BY score DESC, recorded_at ASC
		LIMIT $1`, l.size,
	)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	defer rows.Close()

	var top []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Score, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		top = append(top, e)
	}
	return top, rows.Err()
}
