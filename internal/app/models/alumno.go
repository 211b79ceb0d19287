package models

import (
	"time"

	"github.com/google/uuid"
)

// Alumno is a student record. PhoneIDs keeps the order in which numbers were submitted.
type Alumno struct {
	ID         uuid.UUID   `json:"_id" db:"id"`
	Status     Status      `json:"status" db:"status"`
	Nombre     string      `json:"nombre" db:"nombre"`
	Apellidos  string      `json:"apellidos" db:"apellidos"`
	Calle      string      `json:"calle" db:"calle"`
	Colonia    string      `json:"colonia" db:"colonia"`
	Correo     string      `json:"correo" db:"correo"`
	Fotografia string      `json:"fotografia" db:"fotografia"`
	PhoneIDs   []uuid.UUID `json:"-" db:"-"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`

	// Telefonos holds the resolved phone records (populated when needed)
	Telefonos []Phone `json:"telefonos"`
}

// AlumnoInput carries the editable fields of create and update requests
type AlumnoInput struct {
	Status     Status   `json:"status" validate:"required,oneof=activo inactivo"`
	Nombre     string   `json:"nombre" validate:"required,noquotes"`
	Apellidos  string   `json:"apellidos" validate:"required,noquotes"`
	Calle      string   `json:"calle" validate:"required,noquotes"`
	Colonia    string   `json:"colonia" validate:"required,noquotes"`
	Correo     string   `json:"correo" validate:"required,alumnoemail,noquotes"`
	Fotografia string   `json:"fotografia" validate:"required,noquotes"`
	Telefonos  []string `json:"telefonos" validate:"required,min=1,unique,dive,required,phone10"`
}

// Apply copies the editable fields of in onto a
func (a *Alumno) Apply(in AlumnoInput) {
	a.Status = in.Status
	a.Nombre = in.Nombre
	a.Apellidos = in.Apellidos
	a.Calle = in.Calle
	a.Colonia = in.Colonia
	a.Correo = in.Correo
	a.Fotografia = in.Fotografia
}

// AlumnoListItem is one row of the list query: the alumno with its numbers resolved
type AlumnoListItem struct {
	ID               uuid.UUID     `json:"_id"`
	Status           Status        `json:"status"`
	Nombre           string        `json:"nombre"`
	Apellidos        string        `json:"apellidos"`
	Calle            string        `json:"calle"`
	Colonia          string        `json:"colonia"`
	Correo           string        `json:"correo"`
	Fotografia       string        `json:"fotografia"`
	TelefonosDetails []PhoneNumber `json:"telefonosDetails"`
}
