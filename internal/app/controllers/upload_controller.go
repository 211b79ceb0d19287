package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
	"github.com/mikerosasdev/crud-alumnos/internal/app/services"
	"github.com/mikerosasdev/crud-alumnos/internal/middleware"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
)

// UploadController handles photo uploads from the alumno form
type UploadController struct {
	uploadService services.UploadService
	maxBytes      int64
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService, maxBytes int64) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		maxBytes:      maxBytes,
	}
}

// UploadPhoto stores the multipart "file" field and returns its public URL
// @Summary Upload alumno photo
// @Description Stores a JPG/PNG/GIF/WEBP photo; 350x350 pixels when dimension checks are enabled
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Photo"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or invalid image"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /files/upload [post]
func (c *UploadController) UploadPhoto(ctx *gin.Context) {
	// multipart overhead is small next to the photo itself
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBytes+1<<20)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Selecciona una fotografía"))
		return
	}
	if fileHeader.Size > c.maxBytes {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrFileTooLarge, "La fotografía es demasiado grande"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	photo, err := c.uploadService.UploadPhoto(ctx.Request.Context(), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Success: true,
		URL:     photo.URL,
		Width:   photo.Width,
		Height:  photo.Height,
	})
}
