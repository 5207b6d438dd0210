// Package studysession implements study activity queries in PostgreSQL.
package studysession

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Repo provides study session queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new study session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Sessions are bucketed by calendar day in the user's timezone ($3).
const getStudyDaysSQL = `
SELECT
    (created_at AT TIME ZONE $3)::date AS study_date,
    count(*) AS session_count
FROM study_sessions
WHERE user_id = $1 AND created_at >= $2
GROUP BY study_date
ORDER BY study_date DESC
LIMIT $4`

// GetStudyDays returns daily session counts, most recent day first, covering
// the lastNDays days before dayStart plus the current day. dayStart is the
// start of the user's current day in UTC; timezone is an IANA name.
func (r *Repo) GetStudyDays(ctx context.Context, userID uuid.UUID, dayStart time.Time, lastNDays int, timezone string) ([]domain.DayStudyCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	from := dayStart.AddDate(0, 0, -lastNDays)

	rows, err := querier.Query(ctx, getStudyDaysSQL, userID, from, timezone, lastNDays+1)
	if err != nil {
		return nil, fmt.Errorf("get study days: %w", err)
	}
	defer rows.Close()

	counts := []domain.DayStudyCount{}
	for rows.Next() {
		var dc domain.DayStudyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan study day: %w", err)
		}
		counts = append(counts, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study days: %w", err)
	}

	return counts, nil
}
