package service_test

import (
	"context"
	"sort"
	"testing"

	"vedacare/cmd/internal/domain/entity"
	"vedacare/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("calendardate", validators.IsCalendarDate); err != nil {
		t.Fatal(err)
	}
	if err := v.RegisterValidation("clocktime", validators.IsClockTime); err != nil {
		t.Fatal(err)
	}
	return v
}

// In-memory repositories mirroring the sqlite ones, including the
// nil-on-not-found convention.

type memUserRepo struct {
	seq     int
	users   map[int]*entity.User
	saveErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int]*entity.User)}
}

func (m *memUserRepo) FindByID(id int) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) ExistsByEmail(email string) (bool, error) {
	u, _ := m.FindByEmail(email)
	return u != nil, nil
}

func (m *memUserRepo) Save(user *entity.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if user.ID == 0 {
		m.seq++
		user.ID = m.seq
	}
	m.users[user.ID] = user
	return nil
}

type memTreatmentRepo struct {
	seq        int
	treatments map[int]*entity.Treatment
}

func newMemTreatmentRepo() *memTreatmentRepo {
	return &memTreatmentRepo{treatments: make(map[int]*entity.Treatment)}
}

func (m *memTreatmentRepo) FindAll() ([]*entity.Treatment, error) {
	out := make([]*entity.Treatment, 0, len(m.treatments))
	for _, tr := range m.treatments {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memTreatmentRepo) FindByID(id int) (*entity.Treatment, error) {
	return m.treatments[id], nil
}

func (m *memTreatmentRepo) Save(treatment *entity.Treatment) error {
	if treatment.ID == 0 {
		m.seq++
		treatment.ID = m.seq
	}
	m.treatments[treatment.ID] = treatment
	return nil
}

type memApptRepo struct {
	seq   int
	appts map[int]*entity.Appointment
}

func newMemApptRepo() *memApptRepo {
	return &memApptRepo{appts: make(map[int]*entity.Appointment)}
}

func (m *memApptRepo) FindByID(id int) (*entity.Appointment, error) {
	return m.appts[id], nil
}

func (m *memApptRepo) FindAllByDate() ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].TimeOfDay < out[j].TimeOfDay
	})
	return out, nil
}

func (m *memApptRepo) Save(appointment *entity.Appointment) error {
	if appointment.ID == 0 {
		m.seq++
		appointment.ID = m.seq
	}
	m.appts[appointment.ID] = appointment
	return nil
}

type fakeUploader struct {
	baseURL string
	err     error
	calls   int
	lastKey string
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, _ string, key string) (string, error) {
	f.calls++
	f.lastKey = key
	if f.err != nil {
		return "", f.err
	}
	return f.baseURL + "/" + key, nil
}
