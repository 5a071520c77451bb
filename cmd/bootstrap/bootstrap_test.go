package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-medical-appointment/config"
	"go-medical-appointment/internal/delivery/dto"
	"go-medical-appointment/internal/infrastructure/database"
	"go-medical-appointment/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb_http_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := database.NewSQLiteConnection(dsn, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{Appointment: config.AppointmentConfig{GuardTTL: 10 * time.Second}}
	h, err := NewHTTPHandler(cfg, db, nil, log)
	require.NoError(t, err)
	return h
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func mustSucceed(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, response.StatusSuccess, decodeEnvelope(t, rec).Status)
}

func getDoctors(t *testing.T, h http.Handler, path string) []dto.DoctorResponse {
	t.Helper()
	rec := doRequest(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var page struct {
		Doctors []dto.DoctorResponse `json:"doctors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	return page.Doctors
}

// seedClinic creates speciality 1 and 2, patient 1 and 2, exercise 1
// (speciality 1) and 2 (speciality 2), and doctor 1 (speciality 1, patient 1).
func seedClinic(t *testing.T, h http.Handler) {
	t.Helper()
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/speciality/", map[string]interface{}{"title": "Cardiology"}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/speciality/", map[string]interface{}{"title": "Dermatology"}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/patient/", map[string]interface{}{"name": "Alice"}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/patient/", map[string]interface{}{"name": "Mallory"}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/exercise/", map[string]interface{}{
		"title": "Walk", "description": "Thirty minutes", "frequency": "every_day", "specialisations": []uint{1},
	}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/exercise/", map[string]interface{}{
		"title": "Moisturise", "description": "Twice a day", "specialisations": []uint{2},
	}))
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/doctor/", map[string]interface{}{
		"name": "Dr. Bob", "speciality": 1, "patients": []uint{1},
	}))
}

func TestDoctor_CreateThenGet(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)

	doctors := getDoctors(t, h, "/doctor/1/")
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Bob", doctors[0].Name)
	assert.Equal(t, uint(1), doctors[0].Speciality.ID)
	assert.Equal(t, "Cardiology", doctors[0].Speciality.Title)
}

func TestDoctor_PutPatchDelete(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)

	mustSucceed(t, doRequest(t, h, http.MethodPut, "/doctor/1/", map[string]interface{}{"name": "Dr. Robert", "speciality": 2}))
	mustSucceed(t, doRequest(t, h, http.MethodPatch, "/doctor/1/", map[string]interface{}{"patients": []uint{1, 2}}))

	doctors := getDoctors(t, h, "/doctor/1/")
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Robert", doctors[0].Name)
	assert.Equal(t, "Dermatology", doctors[0].Speciality.Title)
	assert.Len(t, doctors[0].Patients, 2)

	mustSucceed(t, doRequest(t, h, http.MethodDelete, "/doctor/1/", nil))
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, "/doctor/1/", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodDelete, "/doctor/1/", nil).Code)
}

func TestDoctor_UnknownRelationIsValidationError(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/doctor/", map[string]interface{}{"name": "Dr. X", "speciality": 9})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeEnvelope(t, rec)
	assert.Equal(t, response.StatusError, res.Status)
	assert.Equal(t, "Validation failed: speciality: speciality 9 does not exist", res.Message)
}

func TestAppoint_SucceedsThenDuplicate(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)
	body := map[string]interface{}{"patient_id": 1, "exercise_id": 1}

	mustSucceed(t, doRequest(t, h, http.MethodPost, "/doctor/1/appoint/", body))

	rec := doRequest(t, h, http.MethodPost, "/doctor/1/appoint/", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Duplicate appointment", decodeEnvelope(t, rec).Message)

	doctors := getDoctors(t, h, "/doctor/1/exercises/")
	require.Len(t, doctors, 1)
	require.Len(t, doctors[0].Appointments, 1)
	assert.Equal(t, "Alice", doctors[0].Appointments[0].PatientName)

	rec = doRequest(t, h, http.MethodGet, "/patient/1/exercises/", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page struct {
		Patients []dto.PatientResponse `json:"patients"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Patients, 1)
	require.Len(t, page.Patients[0].Appointments, 1)
	assert.Equal(t, "Dr. Bob", page.Patients[0].Appointments[0].DoctorName)
}

func TestAppoint_Errors(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)

	tests := []struct {
		name    string
		path    string
		body    interface{}
		code    int
		message string
	}{
		{"speciality mismatch wins over unassigned patient", "/doctor/1/appoint/", map[string]interface{}{"patient_id": 2, "exercise_id": 2}, http.StatusBadRequest, "Doctor lacks required speciality"},
		{"speciality mismatch with assigned patient", "/doctor/1/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 2}, http.StatusBadRequest, "Doctor lacks required speciality"},
		{"unassigned patient", "/doctor/1/appoint/", map[string]interface{}{"patient_id": 2, "exercise_id": 1}, http.StatusBadRequest, "Doctor not authorized for this patient"},
		{"unknown doctor", "/doctor/9/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 1}, http.StatusNotFound, "Doctor not found"},
		{"unknown exercise", "/doctor/1/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 9}, http.StatusNotFound, "Exercise not found"},
		{"unknown patient", "/doctor/1/appoint/", map[string]interface{}{"patient_id": 9, "exercise_id": 1}, http.StatusNotFound, "Patient not found"},
		{"missing keys", "/doctor/1/appoint/", map[string]interface{}{}, http.StatusBadRequest, ""},
		{"malformed body", "/doctor/1/appoint/", "{not json", http.StatusBadRequest, "Invalid request body"},
		{"invalid doctor id", "/doctor/abc/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 1}, http.StatusBadRequest, "Invalid doctor ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeEnvelope(t, rec).Message)
			}
		})
	}
}

func TestSpecialityDelete_CascadesToAppointments(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/doctor/1/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 1}))
	require.Equal(t, http.StatusOK, doRequest(t, h, http.MethodGet, "/appointment/1/", nil).Code)

	mustSucceed(t, doRequest(t, h, http.MethodDelete, "/speciality/1/", nil))

	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, "/appointment/1/", nil).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, "/doctor/1/", nil).Code)
}

func TestExercise_RejectsUnknownFrequency(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/exercise/", map[string]interface{}{
		"title": "Swim", "description": "Laps", "frequency": "every_year",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeEnvelope(t, rec)
	assert.Contains(t, res.Errors, "frequency")
	assert.Contains(t, res.Message, "frequency")

	rec = doRequest(t, h, http.MethodGet, "/exercise/", nil)
	assert.JSONEq(t, `{"exercises": []}`, rec.Body.String())
}

func TestGet_NonexistentIDIsNotFound(t *testing.T) {
	h := setupTestServer(t)

	for _, path := range []string{"/doctor/5/", "/patient/5/", "/exercise/5/", "/speciality/5/", "/appointment/5/", "/audit-log/5/", "/doctor/5/exercises/", "/patient/5/exercises/"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, doRequest(t, h, http.MethodGet, path, nil).Code)
		})
	}
}

func TestPatient_ValidationAndPatch(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/patient/", map[string]interface{}{"name": strings.Repeat("a", 129)})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "name")

	mustSucceed(t, doRequest(t, h, http.MethodPost, "/patient/", map[string]interface{}{"name": "Alice"}))
	mustSucceed(t, doRequest(t, h, http.MethodPatch, "/patient/1/", map[string]interface{}{}))
	mustSucceed(t, doRequest(t, h, http.MethodPatch, "/patient/1/", map[string]interface{}{"name": "Alicia"}))

	rec = doRequest(t, h, http.MethodGet, "/patient/1/", nil)
	assert.JSONEq(t, `{"patients": [{"id": 1, "name": "Alicia"}]}`, rec.Body.String())

	rec = doRequest(t, h, http.MethodPatch, "/patient/1/", map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuditLog_RecordsMutations(t *testing.T) {
	h := setupTestServer(t)
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/patient/", map[string]interface{}{"name": "Alice"}))
	mustSucceed(t, doRequest(t, h, http.MethodDelete, "/patient/1/", nil))

	rec := doRequest(t, h, http.MethodGet, "/audit-log/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		AuditLogs []dto.AuditLogResponse `json:"audit_logs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.AuditLogs, 2)
	assert.Equal(t, "patient.delete", page.AuditLogs[0].Action)
	assert.Equal(t, "patient.create", page.AuditLogs[1].Action)
	assert.Equal(t, "patient", page.AuditLogs[0].Entity)
	assert.EqualValues(t, 1, page.AuditLogs[0].EntityID)
}

func TestHTMLPages(t *testing.T) {
	h := setupTestServer(t)
	seedClinic(t, h)
	mustSucceed(t, doRequest(t, h, http.MethodPost, "/doctor/1/appoint/", map[string]interface{}{"patient_id": 1, "exercise_id": 1}))

	pages := map[string]string{
		"/":                     "Doctors",
		"/doctor/":              "Dr. Bob",
		"/doctor/1/exercises/":  "Walk",
		"/patient/1/exercises/": "Dr. Bob",
		"/exercise/":            "Every day",
		"/speciality/":          "Dermatology",
		"/appointment/":         "Alice",
		"/audit-log/":           "appointment.create",
	}

	for path, want := range pages {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), want)
		})
	}
}

func TestRouter_Plumbing(t *testing.T) {
	h := setupTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/patient/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = doRequest(t, h, http.MethodGet, "/patient", nil)
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/patient/", rec.Header().Get("Location"))

	rec = doRequest(t, h, http.MethodGet, "/patient/abc/", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid patient ID", decodeEnvelope(t, rec).Message)
}
