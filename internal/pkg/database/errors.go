package database

import (
	"errors"

	"github.com/lib/pq"
)

const codeForeignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err is a FK violation on constraint.
// An empty constraint matches any FK violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return isPQError(err, codeForeignKeyViolation, constraint)
}

func isPQError(err error, code, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if string(pqErr.Code) != code {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
