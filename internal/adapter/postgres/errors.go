package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
//
//   - pgx.ErrNoRows becomes domain.ErrNotFound.
//   - Failures that mean the store could not answer (cancelled or timed out
//     context, statement_timeout, connection loss, server shutdown) become
//     domain.ErrStoreUnavailable, keeping the original error in the chain.
//   - Any other server error is wrapped as-is.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && !unavailableCode(pgErr.Code) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrStoreUnavailable, err)
}

// unavailableCode reports SQLSTATE codes that mean the query did not run to
// completion for reasons outside the query itself.
func unavailableCode(code string) bool {
	switch code {
	case "57014", // query_canceled (statement_timeout)
		"57P01", // admin_shutdown
		"57P02", // crash_shutdown
		"57P03", // cannot_connect_now
		"53300": // too_many_connections
		return true
	}
	// Class 08: connection exception.
	return len(code) == 5 && code[:2] == "08"
}
