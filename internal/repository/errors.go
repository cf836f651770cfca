// Package repository defines error types that are reused across multiple
// repositories.  The failures callers actually branch on are a small closed
// set of sentinels so handlers can map them to proper HTTP statuses instead
// of guessing from message text.
package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a row does not exist, including inserts that
// fail because a referenced row is missing.  Handlers should translate this
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write collides with existing state, such
// as inserting a junction pair that is already present.  Handlers should
// translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrDuplicateListName is returned when a user already has a saved list
// with the requested name.
var ErrDuplicateListName = errors.New("list name already exists for user")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers should translate this into an HTTP
// 403 response.
var ErrForbidden = errors.New("forbidden")

// MySQL server error numbers the repositories classify.
const (
	mysqlErrDuplicateEntry  = 1062 // unique or primary key violation
	mysqlErrNoReferencedRow = 1452 // foreign key target missing
)

// classify maps driver errors onto the sentinel set.  Anything the caller
// cannot act on is passed through unchanged.
func classify(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDuplicateEntry:
			return ErrConflict
		case mysqlErrNoReferencedRow:
			return ErrNotFound
		}
	}
	return err
}
