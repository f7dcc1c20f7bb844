package helpers

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is the store's unique-constraint
// signal. The constraint, not a pre-check, is the authority on duplicates.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}
