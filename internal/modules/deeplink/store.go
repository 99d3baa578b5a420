// README: Click analytics store backed by PostgreSQL.
package deeplink

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) AppendClick(ctx context.Context, e ClickEvent) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO deeplink_clicks (provider, status, occurred_at)
		VALUES ($1, $2, $3)`,
		e.Provider, e.Status, e.OccurredAt,
	)
	return err
}

// CountByProvider returns click totals per status for provider.
func (s *Store) CountByProvider(ctx context.Context, provider string) (map[string]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT status, COUNT(*)
		FROM deeplink_clicks
		WHERE provider = $1
		GROUP BY status`, provider,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
