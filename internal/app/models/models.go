package models

// Status of an alumno record
type Status string

const (
	StatusActivo   Status = "activo"
	StatusInactivo Status = "inactivo"
)

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	return s == StatusActivo || s == StatusInactivo
}
