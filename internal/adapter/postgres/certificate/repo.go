// Package certificate implements read access to trade certificates in PostgreSQL.
package certificate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// Repo provides certificate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new certificate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listByUserSQL = `
SELECT id, user_id, name, category, expiry_date
FROM certificates
WHERE user_id = $1
ORDER BY expiry_date ASC NULLS LAST, name, id`

// ListByUser returns the user's certificates, soonest expiry first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Certificate, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "certificates of user", userID)
	}

	certs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Certificate, error) {
		var c domain.Certificate
		if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Category, &c.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		return &c, nil
	})
	if err != nil {
		return nil, postgres.MapError(err, "certificates of user", userID)
	}
	return certs, nil
}
