package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lojinha/models"
	"lojinha/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApptRepo struct {
	appts  []models.Appointment
	nextID uint
}

func (f *fakeApptRepo) FindConflicting(_ context.Context, date, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date && a.Time >= from && a.Time <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) Insert(_ context.Context, appt *models.Appointment) error {
	f.nextID++
	appt.ID = f.nextID
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeApptRepo) ListByDate(_ context.Context, date string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, a := range f.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func newAppointmentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAppointmentHandler(&scheduling.DefaultSchedulingService{Repo: &fakeApptRepo{}})

	r := gin.New()
	r.POST("/api/appointments", h.CreateAppointment)
	r.GET("/api/appointments", h.ListAppointments)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentScenario(t *testing.T) {
	r := newAppointmentRouter()

	// Ana books 15:30.
	w := postJSON(r, "/api/appointments", `{"customer_name":"Ana","date":"2025-03-10","time":"15:30"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Ana", created.CustomerName)
	assert.Equal(t, "2025-03-10", created.Date)
	assert.Equal(t, "15:30:00", created.Time)

	// Bob tries 16:10, 40 minutes later: inside the spacing window.
	w = postJSON(r, "/api/appointments", `{"customer_name":"Bob","date":"2025-03-10","time":"16:10"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Esse horário já está ocupado."}`, w.Body.String())

	// Same time on another date is fine.
	w = postJSON(r, "/api/appointments", `{"customer_name":"Bob","date":"2025-03-11","time":"16:10"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateAppointmentOutOfHours(t *testing.T) {
	r := newAppointmentRouter()

	w := postJSON(r, "/api/appointments", `{"customer_name":"Ana","date":"2025-03-10","time":"21:00"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Horário fora do expediente."}`, w.Body.String())
}

func TestCreateAppointmentValidation(t *testing.T) {
	r := newAppointmentRouter()

	w := postJSON(r, "/api/appointments", `{"date":"2025-03-10","time":"15:30"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "customer_name")
}

func TestListAppointments(t *testing.T) {
	r := newAppointmentRouter()

	// Missing date parameter.
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"A data é obrigatória."}`, w.Body.String())

	// No bookings yet: empty array, not an error.
	req = httptest.NewRequest(http.MethodGet, "/api/appointments?date=2025-03-10", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// After a booking the list contains it.
	postJSON(r, "/api/appointments", `{"customer_name":"Ana","date":"2025-03-10","time":"15:30"}`)
	req = httptest.NewRequest(http.MethodGet, "/api/appointments?date=2025-03-10", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana", listed[0].CustomerName)
}
