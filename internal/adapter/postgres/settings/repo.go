// Package settings implements user_settings persistence in PostgreSQL.
package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByUserIDSQL = `
SELECT user_id, timezone, updated_at
FROM user_settings
WHERE user_id = $1`

// GetByUserID returns the user's settings.
// Returns domain.ErrNotFound if none are stored.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	var s domain.UserSettings
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, getByUserIDSQL, userID).
		Scan(&s.UserID, &s.Timezone, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_settings", userID)
	}
	return &s, nil
}
