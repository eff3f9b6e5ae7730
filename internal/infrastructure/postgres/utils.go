package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err, o alguno de los errores que envuelve, es una
// violación de constraint único del motor.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
