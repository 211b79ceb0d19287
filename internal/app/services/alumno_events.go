package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
)

// Actions reported to a ChangeNotifier
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeNotifier is told about every alumno write that committed
type ChangeNotifier interface {
	AlumnoChanged(action string, id uuid.UUID)
}

// ChangeNotifierFunc adapts a function to ChangeNotifier
type ChangeNotifierFunc func(action string, id uuid.UUID)

// AlumnoChanged calls f(action, id)
func (f ChangeNotifierFunc) AlumnoChanged(action string, id uuid.UUID) {
	f(action, id)
}

type notifyingAlumnoService struct {
	AlumnoService
	notifier ChangeNotifier
}

// NewNotifyingAlumnoService wraps inner so successful writes are reported to notifier.
// Failed writes are not reported.
func NewNotifyingAlumnoService(inner AlumnoService, notifier ChangeNotifier) AlumnoService {
	return &notifyingAlumnoService{
		AlumnoService: inner,
		notifier:      notifier,
	}
}

func (s *notifyingAlumnoService) Create(ctx context.Context, in models.AlumnoInput) (*models.Alumno, error) {
	alumno, err := s.AlumnoService.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.notifier.AlumnoChanged(ActionCreated, alumno.ID)
	return alumno, nil
}

func (s *notifyingAlumnoService) Update(ctx context.Context, id string, in models.AlumnoInput) error {
	if err := s.AlumnoService.Update(ctx, id, in); err != nil {
		return err
	}
	s.notify(ActionUpdated, id)
	return nil
}

func (s *notifyingAlumnoService) Delete(ctx context.Context, id string) error {
	if err := s.AlumnoService.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ActionDeleted, id)
	return nil
}

// notify reports a write identified by the raw id the caller passed; it parsed, or the write would have failed
func (s *notifyingAlumnoService) notify(action, rawID string) {
	if id, err := uuid.Parse(rawID); err == nil {
		s.notifier.AlumnoChanged(action, id)
	}
}
