package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/app/services"
	"github.com/mikerosasdev/crud-alumnos/internal/middleware"
)

// Success messages shown by the UI
const (
	MsgAlumnoCreado      = "Alumno creado"
	MsgDatosActualizados = "Datos actualizados"
	MsgAlumnoEliminado   = "Alumno eliminado"
)

// AlumnoController handles the /api/alumnos endpoints used by the panel
type AlumnoController struct {
	alumnoService services.AlumnoService
}

// NewAlumnoController creates a new AlumnoController
func NewAlumnoController(alumnoService services.AlumnoService) *AlumnoController {
	return &AlumnoController{
		alumnoService: alumnoService,
	}
}

func bindAlumno(ctx *gin.Context) (dto.AlumnoRequest, bool) {
	var req dto.AlumnoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Formato de solicitud inválido").
			WithSeverity(dto.ErrorSeverityWarning)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return req, false
	}
	return req, true
}

// GetAlumnos lists every alumno
// @Summary List alumnos
// @Description Returns every alumno with its phone numbers resolved
// @Tags alumnos
// @Produce json
// @Success 200 {object} dto.AlumnosListResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumnos/getAlumnos [get]
func (c *AlumnoController) GetAlumnos(ctx *gin.Context) {
	alumnos, err := c.alumnoService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnosListResponse{
		Success: true,
		Alumnos: alumnos,
	})
}

// EditAlumno returns one alumno for the edit form
// @Summary Get alumno for edit
// @Description Returns the alumno with its full phone records
// @Tags alumnos
// @Produce json
// @Param id path string true "Alumno ID" Format(uuid)
// @Success 200 {object} dto.AlumnoResponse
// @Failure 404 {object} dto.ErrorResponse "Alumno no encontrado"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumnos/editAlumno/{id} [get]
func (c *AlumnoController) EditAlumno(ctx *gin.Context) {
	alumno, err := c.alumnoService.GetForEdit(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnoResponse{
		Success: true,
		Alumno:  alumno,
	})
}

// CreateAlumno registers a new alumno and its phone numbers
// @Summary Create alumno
// @Description Creates the alumno; fails when any phone number is already registered
// @Tags alumnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AlumnoRequest true "Alumno data"
// @Success 200 {object} dto.AlumnoResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate phone/email"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumnos/createAlumno [post]
func (c *AlumnoController) CreateAlumno(ctx *gin.Context) {
	req, ok := bindAlumno(ctx)
	if !ok {
		return
	}

	alumno, err := c.alumnoService.Create(ctx.Request.Context(), req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AlumnoResponse{
		Success: true,
		Message: MsgAlumnoCreado,
		Alumno:  alumno,
	})
}

// UpdateAlumno rewrites an alumno and reconciles its phone numbers
// @Summary Update alumno
// @Description Replaces the alumno fields and phone list
// @Tags alumnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alumno ID" Format(uuid)
// @Param request body dto.AlumnoRequest true "Alumno data"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate phone/email"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Alumno no encontrado"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumnos/updateAlumno/{id} [put]
func (c *AlumnoController) UpdateAlumno(ctx *gin.Context) {
	req, ok := bindAlumno(ctx)
	if !ok {
		return
	}

	if err := c.alumnoService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToInput()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: MsgDatosActualizados,
	})
}

// DeleteAlumno removes an alumno and its phone numbers
// @Summary Delete alumno
// @Tags alumnos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alumno ID" Format(uuid)
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Alumno no encontrado"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumnos/deleteAlumno/{id} [delete]
func (c *AlumnoController) DeleteAlumno(ctx *gin.Context) {
	if err := c.alumnoService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: MsgAlumnoEliminado,
	})
}
