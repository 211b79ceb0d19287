package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mikerosasdev/crud-alumnos/internal/app/models"
	"github.com/mikerosasdev/crud-alumnos/internal/app/repositories"
	"github.com/mikerosasdev/crud-alumnos/internal/pkg/apperrors"
)

// memDB is an in-memory stand-in for the two registries with the same unique constraints
type memDB struct {
	mu      sync.Mutex
	phones  map[uuid.UUID]models.Phone
	alumnos map[uuid.UUID]*models.Alumno
	order   []uuid.UUID

	// failAlumnoWrite makes the next alumno Create/Update fail after phones were written
	failAlumnoWrite error
}

func newMemDB() *memDB {
	return &memDB{
		phones:  map[uuid.UUID]models.Phone{},
		alumnos: map[uuid.UUID]*models.Alumno{},
	}
}

func (db *memDB) repos() *repositories.Repositories {
	return &repositories.Repositories{
		AlumnoRepository: &memAlumnoStore{db: db},
		PhoneRepository:  &memPhoneStore{db: db},
	}
}

type memSnapshot struct {
	phones  map[uuid.UUID]models.Phone
	alumnos map[uuid.UUID]*models.Alumno
	order   []uuid.UUID
}

func (db *memDB) snapshot() memSnapshot {
	db.mu.Lock()
	defer db.mu.Unlock()
	s := memSnapshot{
		phones:  make(map[uuid.UUID]models.Phone, len(db.phones)),
		alumnos: make(map[uuid.UUID]*models.Alumno, len(db.alumnos)),
		order:   append([]uuid.UUID(nil), db.order...),
	}
	for k, v := range db.phones {
		s.phones[k] = v
	}
	for k, v := range db.alumnos {
		cp := *v
		cp.PhoneIDs = append([]uuid.UUID(nil), v.PhoneIDs...)
		s.alumnos[k] = &cp
	}
	return s
}

func (db *memDB) restore(s memSnapshot) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.phones, db.alumnos, db.order = s.phones, s.alumnos, s.order
}

func (db *memDB) phoneNumbers() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []string
	for _, p := range db.phones {
		out = append(out, p.Number)
	}
	sort.Strings(out)
	return out
}

func (db *memDB) phoneCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.phones)
}

// memTx rolls the memDB back when the unit of work fails
type memTx struct {
	db    *memDB
	calls int
}

func (t *memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos *repositories.Repositories) error) error {
	t.calls++
	snap := t.db.snapshot()
	if err := fn(ctx, t.db.repos()); err != nil {
		t.db.restore(snap)
		return err
	}
	return nil
}

type memPhoneStore struct {
	db *memDB
}

func (s *memPhoneStore) FindByNumbers(ctx context.Context, numbers []string) ([]models.Phone, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	want := map[string]bool{}
	for _, n := range numbers {
		want[n] = true
	}
	out := []models.Phone{}
	for _, p := range s.db.phones {
		if want[p.Number] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *memPhoneStore) CreateMany(ctx context.Context, numbers []string) ([]models.Phone, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	out := make([]models.Phone, len(numbers))
	for i, n := range numbers {
		for _, p := range s.db.phones {
			if p.Number == n {
				return nil, apperrors.NewDuplicatePhoneError([]string{n})
			}
		}
		out[i] = models.Phone{ID: uuid.New(), Number: n}
		s.db.phones[out[i].ID] = out[i]
	}
	return out, nil
}

func (s *memPhoneStore) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	gone := map[uuid.UUID]bool{}
	for _, id := range ids {
		delete(s.db.phones, id)
		gone[id] = true
	}
	for _, a := range s.db.alumnos {
		kept := a.PhoneIDs[:0]
		for _, id := range a.PhoneIDs {
			if !gone[id] {
				kept = append(kept, id)
			}
		}
		a.PhoneIDs = kept
	}
	return nil
}

type memAlumnoStore struct {
	db *memDB
}

func (s *memAlumnoStore) resolve(a *models.Alumno) *models.Alumno {
	cp := *a
	cp.PhoneIDs = append([]uuid.UUID(nil), a.PhoneIDs...)
	cp.Telefonos = make([]models.Phone, 0, len(a.PhoneIDs))
	for _, id := range a.PhoneIDs {
		cp.Telefonos = append(cp.Telefonos, s.db.phones[id])
	}
	return &cp
}

func (s *memAlumnoStore) List(ctx context.Context) ([]*models.AlumnoListItem, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	items := make([]*models.AlumnoListItem, 0, len(s.db.order))
	for _, id := range s.db.order {
		a := s.resolve(s.db.alumnos[id])
		item := &models.AlumnoListItem{
			ID: a.ID, Status: a.Status, Nombre: a.Nombre, Apellidos: a.Apellidos,
			Calle: a.Calle, Colonia: a.Colonia, Correo: a.Correo, Fotografia: a.Fotografia,
			TelefonosDetails: []models.PhoneNumber{},
		}
		for _, p := range a.Telefonos {
			item.TelefonosDetails = append(item.TelefonosDetails, models.PhoneNumber{Number: p.Number})
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *memAlumnoStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Alumno, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	a, ok := s.db.alumnos[id]
	if !ok {
		return nil, apperrors.ErrAlumnoNotFound
	}
	return s.resolve(a), nil
}

func (s *memAlumnoStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Alumno, error) {
	return s.GetByID(ctx, id)
}

func (s *memAlumnoStore) emailTaken(correo string, except uuid.UUID) bool {
	for id, a := range s.db.alumnos {
		if id != except && a.Correo == correo {
			return true
		}
	}
	return false
}

func (s *memAlumnoStore) Create(ctx context.Context, alumno *models.Alumno) error {
	s.db.mu.Lock()
	if err := s.db.failAlumnoWrite; err != nil {
		s.db.failAlumnoWrite = nil
		s.db.mu.Unlock()
		return err
	}
	if s.emailTaken(alumno.Correo, uuid.Nil) {
		s.db.mu.Unlock()
		return apperrors.ErrDuplicateEmail
	}
	if alumno.ID == uuid.Nil {
		alumno.ID = uuid.New()
	}
	cp := *alumno
	cp.Telefonos = nil
	s.db.alumnos[cp.ID] = &cp
	s.db.order = append(s.db.order, cp.ID)
	s.db.mu.Unlock()
	return s.SetPhones(ctx, alumno.ID, alumno.Telefonos)
}

func (s *memAlumnoStore) Update(ctx context.Context, alumno *models.Alumno) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.failAlumnoWrite; err != nil {
		s.db.failAlumnoWrite = nil
		return err
	}
	stored, ok := s.db.alumnos[alumno.ID]
	if !ok {
		return apperrors.ErrAlumnoNotFound
	}
	if s.emailTaken(alumno.Correo, alumno.ID) {
		return apperrors.ErrDuplicateEmail
	}
	phoneIDs := stored.PhoneIDs
	cp := *alumno
	cp.Telefonos = nil
	cp.PhoneIDs = phoneIDs
	s.db.alumnos[alumno.ID] = &cp
	return nil
}

func (s *memAlumnoStore) SetPhones(ctx context.Context, alumnoID uuid.UUID, phones []models.Phone) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for id, a := range s.db.alumnos {
		if id == alumnoID {
			continue
		}
		for _, owned := range a.PhoneIDs {
			for _, p := range phones {
				if owned == p.ID {
					return apperrors.NewDuplicatePhoneError([]string{p.Number})
				}
			}
		}
	}
	a, ok := s.db.alumnos[alumnoID]
	if !ok {
		return apperrors.ErrAlumnoNotFound
	}
	a.PhoneIDs = models.IDs(phones)
	return nil
}

func (s *memAlumnoStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.alumnos[id]; !ok {
		return apperrors.ErrAlumnoNotFound
	}
	delete(s.db.alumnos, id)
	for i, o := range s.db.order {
		if o == id {
			s.db.order = append(s.db.order[:i], s.db.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memAlumnoStore) Count(ctx context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.alumnos)), nil
}

// recordingReleaser remembers released photo URLs
type recordingReleaser struct {
	released []string
}

func (r *recordingReleaser) ReleasePhoto(url string) {
	r.released = append(r.released, url)
}
