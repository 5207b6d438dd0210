package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// SQLSTATE codes with a domain meaning.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"53300": domain.ErrUnavailable,   // too_many_connections
	"57P01": domain.ErrUnavailable,   // admin_shutdown
	"57P03": domain.ErrUnavailable,   // cannot_connect_now
}

// MapError translates a pgx error into a domain error, prefixed with the
// entity and key it concerns. Context errors keep their identity so callers
// can tell cancellation apart from failure. Unknown errors are wrapped as is.
func MapError(err error, entity string, key fmt.Stringer) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", entity, key, classify(err))
}

func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrNotFound
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return mapped
		}
		// Class 08: connection exception.
		if strings.HasPrefix(pgErr.Code, "08") {
			return domain.ErrUnavailable
		}
	}

	return err
}
