package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert loses to a storage-level
// unique constraint. The constraints back the system's two central
// invariants: one inspection cycle per (person, month) and one audit
// signoff per quarter.
var ErrDuplicate = errors.New("duplicate row violates unique constraint")

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	// SQLite (modernc driver) reports constraint failures by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
