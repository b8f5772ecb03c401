package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrorDump is a log-friendly expansion of an error chain. Driver fields are
// filled for whichever backend raised the error.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`
	Retryable  bool   `json:"retryable"`

	Chain []string `json:"chain,omitempty"`

	Backend string `json:"backend,omitempty"`

	PGCode       string `json:"pg_code,omitempty"`
	PGConstraint string `json:"pg_constraint,omitempty"`
	PGTable      string `json:"pg_table,omitempty"`
	PGColumn     string `json:"pg_column,omitempty"`
	PGDetail     string `json:"pg_detail,omitempty"`
	PGMessage    string `json:"pg_message,omitempty"`

	SQLiteCode         int    `json:"sqlite_code,omitempty"`
	SQLiteExtendedCode int    `json:"sqlite_extended_code,omitempty"`
	SQLiteMessage      string `json:"sqlite_message,omitempty"`
}

const (
	backendPostgres = "postgres"
	backendSQLite   = "sqlite"
)

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error()}

	if te := As(err); te != nil {
		d.Code = te.Code()
		d.Retryable = MetadataFor(te.Code()).Retryable
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if !dumpPgx(err, &d) && !dumpPq(err, &d) {
		dumpSQLite(err, &d)
	}
	return d
}

func dumpPgx(err error, d *ErrorDump) bool {
	var pgxErr *pgconn.PgError
	if !errors.As(err, &pgxErr) {
		return false
	}
	d.Backend = backendPostgres
	d.PGCode = pgxErr.Code
	d.PGConstraint = pgxErr.ConstraintName
	d.PGTable = pgxErr.TableName
	d.PGColumn = pgxErr.ColumnName
	d.PGDetail = pgxErr.Detail
	d.PGMessage = pgxErr.Message
	return true
}

func dumpPq(err error, d *ErrorDump) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	d.Backend = backendPostgres
	d.PGCode = string(pqErr.Code)
	d.PGConstraint = pqErr.Constraint
	d.PGTable = pqErr.Table
	d.PGColumn = pqErr.Column
	d.PGDetail = pqErr.Detail
	d.PGMessage = pqErr.Message
	return true
}

// dumpSQLite records the primary and extended result codes, e.g. 19 / 787
// for a foreign key failure.
func dumpSQLite(err error, d *ErrorDump) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	d.Backend = backendSQLite
	d.SQLiteCode = int(liteErr.Code)
	d.SQLiteExtendedCode = int(liteErr.ExtendedCode)
	d.SQLiteMessage = liteErr.Error()
	return true
}
