package dberrors

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// keyDetail matches the DETAIL of a unique violation: Key (number)=(5551234567) already exists.
var keyDetail = regexp.MustCompile(`\(([^)]*)\)=\((.*)\) already exists`)

// Constraint names declared in migrations/001_create_alumnos.sql
const (
	PhoneNumberConstraint = "phones_number_key"
	AlumnoEmailConstraint = "alumnos_correo_key"
	PhoneOwnerConstraint  = "alumno_telefonos_phone_id_key"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports any unique violation regardless of the constraint
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// DuplicateValue extracts the conflicting value from a unique violation, or "" when unavailable
func DuplicateValue(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return ""
	}
	m := keyDetail.FindStringSubmatch(pgErr.Detail)
	if m == nil {
		return ""
	}
	return m[2]
}
