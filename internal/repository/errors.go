package repository

import (
	"errors"
	"strings"

	apperrors "rental-marketplace-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes surfaced by constraint failures. Anything else
// passes through untouched and is reported as a generic storage error.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translatePGError maps a Postgres constraint violation onto the domain error
// taxonomy. exists is returned for unique violations, since only the calling
// repository knows which entity the conflicting key belongs to.
func translatePGError(err error, exists error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return exists
	case pgForeignKeyViolation:
		return referencedEntityError(pgErr.ConstraintName)
	case pgNotNullViolation, pgCheckViolation:
		return apperrors.NewValidationError(pgErr.ColumnName, pgErr.Message)
	}
	return err
}

// referencedEntityError resolves a foreign-key violation to the missing entity
// by the constraint name GORM generates (fk_<table>_<reference>).
func referencedEntityError(constraint string) error {
	switch {
	case strings.Contains(constraint, "customer"):
		return apperrors.ErrCustomerNotFound
	case strings.Contains(constraint, "owner"):
		return apperrors.ErrOwnerNotFound
	case strings.Contains(constraint, "apartment"):
		return apperrors.ErrApartmentNotFound
	}
	return apperrors.ErrReferencedRecordNotFound
}
