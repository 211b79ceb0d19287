package dto

import (
	"strings"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
)

// AlumnoRequest is the body of createAlumno and updateAlumno
type AlumnoRequest struct {
	Status     string   `json:"status" example:"activo" enums:"activo,inactivo"`
	Nombre     string   `json:"nombre" example:"Ana"`
	Apellidos  string   `json:"apellidos" example:"López Pérez"`
	Calle      string   `json:"calle" example:"Av. Juárez 120"`
	Colonia    string   `json:"colonia" example:"Centro"`
	Correo     string   `json:"correo" example:"ana@x.com"`
	Fotografia string   `json:"fotografia" example:"/uploads/2b1f0c8e.png"`
	Telefonos  []string `json:"telefonos" example:"5551234567"`
}

// ToInput trims the request fields into the service input
func (r AlumnoRequest) ToInput() models.AlumnoInput {
	telefonos := make([]string, 0, len(r.Telefonos))
	for _, t := range r.Telefonos {
		telefonos = append(telefonos, strings.TrimSpace(t))
	}
	return models.AlumnoInput{
		Status:     models.Status(strings.TrimSpace(r.Status)),
		Nombre:     strings.TrimSpace(r.Nombre),
		Apellidos:  strings.TrimSpace(r.Apellidos),
		Calle:      strings.TrimSpace(r.Calle),
		Colonia:    strings.TrimSpace(r.Colonia),
		Correo:     strings.TrimSpace(r.Correo),
		Fotografia: strings.TrimSpace(r.Fotografia),
		Telefonos:  telefonos,
	}
}

// AlumnosListResponse is returned by getAlumnos
type AlumnosListResponse struct {
	Success bool                     `json:"success" example:"true"`
	Alumnos []*models.AlumnoListItem `json:"alumnos"`
}

// AlumnoResponse is returned by createAlumno and editAlumno
type AlumnoResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Alumno creado"`
	Alumno  *models.Alumno `json:"alumno"`
}

// MessageResponse is returned by operations without a payload
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Datos actualizados"`
}
