package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres class 23 integrity violation for duplicate keys
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation surfaced through the pgx driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
