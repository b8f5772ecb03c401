package db

import (
	"errors"
	"strings"

	pkgerrors "github.com/MathieuSchaff/tdah-habit-tracket/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes raised by the habit-tracking constraints.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
	// Raised when a label is not part of a Postgres enum type.
	sqlStateInvalidTextRepresentation = "22P02"
)

// violation is the driver-independent view of a storage error.
type violation struct {
	sqlState   string
	constraint string
	sqlite     sqlite3.ErrNoExtended
	message    string
}

func inspect(err error) (violation, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return violation{sqlState: pgxErr.Code, constraint: pgxErr.ConstraintName, message: pgxErr.Message}, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return violation{sqlState: string(pqErr.Code), constraint: pqErr.Constraint, message: pqErr.Message}, true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return violation{sqlite: liteErr.ExtendedCode, message: liteErr.Error()}, true
	}
	return violation{}, false
}

// IsUniqueViolation reports whether the provided error references a unique
// violation. When constraintName is provided, the helper also requires the
// constraint to match: by name on Postgres, by message text elsewhere (SQLite
// reports "table.column" rather than the index name).
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if v, ok := inspect(err); ok {
		if v.sqlState != sqlStateUniqueViolation &&
			v.sqlite != sqlite3.ErrConstraintUnique &&
			v.sqlite != sqlite3.ErrConstraintPrimaryKey {
			return false
		}
		if constraintName == "" {
			return true
		}
		return v.constraint == constraintName || strings.Contains(v.message, constraintName)
	}

	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a missing-parent (or
// restricted-delete) foreign key failure.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if v, ok := inspect(err); ok {
		return v.sqlState == sqlStateForeignKeyViolation || v.sqlite == sqlite3.ErrConstraintForeignKey
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed") ||
		strings.Contains(err.Error(), "violates foreign key constraint")
}

// IsCheckViolation reports whether err is a CHECK failure or, on Postgres, a
// value outside an enum type.
func IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	if v, ok := inspect(err); ok {
		return v.sqlState == sqlStateCheckViolation ||
			v.sqlState == sqlStateInvalidTextRepresentation ||
			v.sqlite == sqlite3.ErrConstraintCheck
	}
	return strings.Contains(err.Error(), "CHECK constraint failed") ||
		strings.Contains(err.Error(), "violates check constraint")
}

// IsNotNullViolation reports whether a required column was written as NULL.
func IsNotNullViolation(err error) bool {
	if err == nil {
		return false
	}
	if v, ok := inspect(err); ok {
		return v.sqlState == sqlStateNotNullViolation || v.sqlite == sqlite3.ErrConstraintNotNull
	}
	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}

// ClassifyWriteError maps a storage error to a coded error. Errors that are
// already coded pass through unchanged.
func ClassifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}

	details := map[string]string{}
	if v, ok := inspect(err); ok && v.constraint != "" {
		details["constraint"] = v.constraint
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "record not found")
	case IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "record already exists").WithDetails(details)
	case IsForeignKeyViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeConstraint, err, "referenced record does not exist").WithDetails(details)
	case IsCheckViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeConstraint, err, "value outside the allowed domain").WithDetails(details)
	case IsNotNullViolation(err):
		return pkgerrors.Wrap(pkgerrors.CodeConstraint, err, "required column missing").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "database write failed")
}
