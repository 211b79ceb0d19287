package controllers

import (
	"context"
	"io"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models/dto"
)

type mockAlumnoService struct {
	listFn       func(ctx context.Context) ([]*models.AlumnoListItem, error)
	getForEditFn func(ctx context.Context, id string) (*models.Alumno, error)
	createFn     func(ctx context.Context, in models.AlumnoInput) (*models.Alumno, error)
	updateFn     func(ctx context.Context, id string, in models.AlumnoInput) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockAlumnoService) List(ctx context.Context) ([]*models.AlumnoListItem, error) {
	return m.listFn(ctx)
}

func (m *mockAlumnoService) GetForEdit(ctx context.Context, id string) (*models.Alumno, error) {
	return m.getForEditFn(ctx, id)
}

func (m *mockAlumnoService) Create(ctx context.Context, in models.AlumnoInput) (*models.Alumno, error) {
	return m.createFn(ctx, in)
}

func (m *mockAlumnoService) Update(ctx context.Context, id string, in models.AlumnoInput) error {
	return m.updateFn(ctx, id, in)
}

func (m *mockAlumnoService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAlumnoService) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockUploadService struct {
	uploadFn func(ctx context.Context, content io.Reader) (*models.Photo, error)
}

func (m *mockUploadService) UploadPhoto(ctx context.Context, content io.Reader) (*models.Photo, error) {
	return m.uploadFn(ctx, content)
}

func (m *mockUploadService) ReleasePhoto(url string) {}

type mockAuthService struct {
	loginFn func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginFn(ctx, req)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}
