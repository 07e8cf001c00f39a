package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"vedacare/cmd/internal/domain/entity"
	"vedacare/cmd/internal/routes"
	"vedacare/cmd/internal/service"
	"vedacare/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	testSecret         = "routes-test-secret"
	testMaxUploadBytes = 1 << 20
)

type memUserRepo struct {
	seq   int
	users map[int]*entity.User
}

func (m *memUserRepo) FindByID(id int) (*entity.User, error) { return m.users[id], nil }

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

func (m *memApptRepo) FindByID(id int) (*entity.Appointment, error) { return m.appts[id], nil }

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
	err   error
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, _ string, key string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.test/" + key, nil
}

type testServer struct {
	e        *echo.Echo
	userRepo *memUserRepo
	apptRepo *memApptRepo
	uploader *fakeUploader
}

// newTestServer builds the same route table main.go does, on in-memory
// repositories and a fake photo host.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	validate := validator.New()
	if err := validate.RegisterValidation("calendardate", validators.IsCalendarDate); err != nil {
		t.Fatal(err)
	}
	if err := validate.RegisterValidation("clocktime", validators.IsClockTime); err != nil {
		t.Fatal(err)
	}

	userRepo := &memUserRepo{users: make(map[int]*entity.User)}
	treatmentRepo := &memTreatmentRepo{treatments: make(map[int]*entity.Treatment)}
	apptRepo := &memApptRepo{appts: make(map[int]*entity.Appointment)}
	uploader := &fakeUploader{}

	userSvc := service.NewUserService(userRepo, validate, uploader, testSecret, time.Hour, testMaxUploadBytes)
	treatmentSvc := service.NewTreatmentService(treatmentRepo, validate)
	apptSvc := service.NewAppointmentService(apptRepo, validate)

	userRoutes := routes.NewUserDefault(userSvc, testMaxUploadBytes)
	treatmentRoutes := routes.NewTreatmentDefault(treatmentSvc)
	apptRoutes := routes.NewAppointmentDefault(apptSvc)

	e := echo.New()
	e.GET("/api/treatments", treatmentRoutes.GetTreatments)
	e.POST("/api/treatments", treatmentRoutes.CreateTreatment)
	e.PUT("/api/treatments/:id", treatmentRoutes.UpdateTreatment)
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.PATCH("/api/appointments/:id", apptRoutes.UpdateStatus)
	e.POST("/api/register", userRoutes.Register)
	e.POST("/api/login", userRoutes.Login)

	requireAuth := routes.RequireAuth(testSecret)
	e.GET("/api/profile", userRoutes.GetProfile, requireAuth)
	e.POST("/api/upload-profile-photo", userRoutes.UploadProfilePhoto, requireAuth)

	return &testServer{e: e, userRepo: userRepo, apptRepo: apptRepo, uploader: uploader}
}

func (ts *testServer) doJSON(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, want, rec.Body.String())
	}
}
