package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a commit-time constraint rejected the write,
	// e.g. the reservation overlap exclusion index.
	ErrConflict = errors.New("storage conflict")
	// ErrSerialization means the transaction lost a serialization race
	// and may be retried.
	ErrSerialization = errors.New("serialization failure")
)

// overlapConstraint is the reservations exclusion constraint installed
// by Migrate on Postgres. A 23P01 naming it means the slot was taken at
// commit time.
const overlapConstraint = "idx_no_overlap"

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01": // exclusion_violation
			if pgErr.ConstraintName == overlapConstraint {
				return ErrConflict
			}
		case "23505": // unique_violation
			return ErrConflict
		case "40001": // serialization_failure
			return ErrSerialization
		}
	}
	return err
}
