package sqlxrepos

import (
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// constraintErr maps a pq unique-violation on the named constraint to a
// domain error; any other error passes through unchanged.
func constraintErr(err error, constraints map[string]error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != uniqueViolation {
		return err
	}
	if domErr, ok := constraints[pqErr.Constraint]; ok {
		return domErr
	}
	return err
}
