package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/app/controllers"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/middleware"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Alumno *controllers.AlumnoController
	Upload *controllers.UploadController
	Auth   *controllers.AuthController
	Health *controllers.HealthController
	View   *controllers.ViewController
	// Events is optional; without it no change feed is mounted
	Events *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrls Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Pages ---
	router.GET("/", ctrls.View.Alumnos)
	router.GET("/alumnos", ctrls.View.Alumnos)

	api := router.Group("/api")

	api.GET("/health", ctrls.Health.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login",
			middleware.ValidateRequest(func() interface{} { return &dto.LoginRequest{} }),
			ctrls.Auth.Login)
	}

	// --- Alumnos: reads are public, writes need the admin token when auth is enabled ---
	alumnos := api.Group("/alumnos")
	{
		alumnos.GET("/getAlumnos", ctrls.Alumno.GetAlumnos)
		alumnos.GET("/editAlumno/:id", ctrls.Alumno.EditAlumno)
		if ctrls.Events != nil {
			alumnos.GET("/ws", ctrls.Events.HandleConnection)
		}
	}

	protected := api.Group("")
	protected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		protected.POST("/alumnos/createAlumno", ctrls.Alumno.CreateAlumno)
		protected.PUT("/alumnos/updateAlumno/:id", ctrls.Alumno.UpdateAlumno)
		protected.DELETE("/alumnos/deleteAlumno/:id", ctrls.Alumno.DeleteAlumno)
		protected.POST("/files/upload", ctrls.Upload.UploadPhoto)
	}

	router.NoRoute(func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Ruta no encontrada")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
	})
}
