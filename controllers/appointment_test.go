package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agendafacil/backend/controllers"
	"github.com/agendafacil/backend/db"
	"github.com/agendafacil/backend/models"
	"github.com/agendafacil/backend/routes"
	"github.com/agendafacil/backend/scheduler"
)

type testData struct {
	company      models.Company
	professional models.Professional
	service      models.Service
}

func setupApp(t *testing.T) (*fiber.App, testData) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Company{},
		&models.Professional{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Appointment{},
	))

	db.DB = gdb
	controllers.Init(scheduler.New(gdb, scheduler.NewMutexLock()))

	app := fiber.New()
	routes.SetupCompanyRoutes(app)
	routes.SetupProfessionalRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupWorkingHourRoutes(app)
	routes.SetupAppointmentRoutes(app)

	data := testData{company: models.Company{Name: "Barbearia do João", TaxID: "12345678901234"}}
	require.NoError(t, gdb.Create(&data.company).Error)
	data.professional = models.Professional{Name: "Carlos", Email: "carlos@example.com", CompanyID: data.company.ID}
	require.NoError(t, gdb.Create(&data.professional).Error)
	data.service = models.Service{CompanyID: data.company.ID, Name: "Corte de Cabelo", Price: 50, Duration: 60}
	require.NoError(t, gdb.Create(&data.service).Error)
	// 2025-10-01 is a Wednesday
	require.NoError(t, gdb.Create(&models.WorkingHours{
		CompanyID: data.company.ID,
		DayOfWeek: models.Wednesday,
		OpenTime:  "09:00",
		CloseTime: "18:00",
	}).Error)

	return app, data
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func bookingBody(d testData, start string) fiber.Map {
	return fiber.Map{
		"company_id":      d.company.ID,
		"professional_id": d.professional.ID,
		"service_id":      d.service.ID,
		"client_name":     "Cliente Teste",
		"start_time":      start,
	}
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	app, data := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:00:00Z"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created models.Appointment
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, data.service.Price, created.Price)
	assert.True(t, created.EndTime.Sub(created.StartTime) == time.Hour)
}

func TestCreateAppointmentEndpoint_Conflict(t *testing.T) {
	app, data := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:00:00Z"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:30:00Z"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var engineErr scheduler.Error
	require.NoError(t, json.Unmarshal(raw, &engineErr))
	assert.Equal(t, scheduler.KindConflict, engineErr.Kind)
}

func TestCreateAppointmentEndpoint_OutOfHours(t *testing.T) {
	app, data := setupApp(t)

	// Sunday: no working hours
	resp, raw := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-05T10:00:00Z"))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var engineErr scheduler.Error
	require.NoError(t, json.Unmarshal(raw, &engineErr))
	assert.Equal(t, scheduler.KindOutOfHours, engineErr.Kind)
}

func TestCreateAppointmentEndpoint_UnknownService(t *testing.T) {
	app, data := setupApp(t)

	body := bookingBody(data, "2025-10-01T10:00:00Z")
	body["service_id"] = "missing"
	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAvailableSlotsEndpoint(t *testing.T) {
	app, data := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:00:00Z"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	path := fmt.Sprintf("/professionals/%s/slots?date=2025-10-01&service_id=%s", data.professional.ID, data.service.ID)
	resp, raw := doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var payload struct {
		Slots []scheduler.Slot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Slots, 9)

	byClock := make(map[string]bool)
	for _, s := range payload.Slots {
		byClock[s.Time.UTC().Format("15:04")] = s.Available
	}
	assert.True(t, byClock["09:00"])
	assert.False(t, byClock["10:00"])
	assert.True(t, byClock["11:00"])
}

func TestGetAvailableSlotsEndpoint_ClosedDay(t *testing.T) {
	app, data := setupApp(t)

	path := fmt.Sprintf("/professionals/%s/slots?date=2025-10-05&service_id=%s", data.professional.ID, data.service.ID)
	resp, raw := doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Slots []scheduler.Slot `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Empty(t, payload.Slots)
}

func TestDeleteAppointmentEndpoint_Cancels(t *testing.T) {
	app, data := setupApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:00:00Z"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Appointment
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = doJSON(t, app, http.MethodDelete, "/appointments/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var canceled models.Appointment
	require.NoError(t, json.Unmarshal(raw, &canceled))
	assert.Equal(t, models.StatusCanceled, canceled.Status)

	// canceled appointments keep blocking their range
	resp, _ = doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, "2025-10-01T10:00:00Z"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateWorkingHourEndpoint_Validation(t *testing.T) {
	app, data := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/working-hours", fiber.Map{
		"company_id":  data.company.ID,
		"day_of_week": 2,
		"open_time":   "9am",
		"close_time":  "18:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/working-hours", fiber.Map{
		"company_id":  data.company.ID,
		"day_of_week": 2,
		"open_time":   "18:00",
		"close_time":  "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/working-hours", fiber.Map{
		"company_id":  data.company.ID,
		"day_of_week": 2,
		"open_time":   "09:00",
		"close_time":  "18:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateWorkingHourEndpoint_DuplicateWeekday(t *testing.T) {
	app, data := setupApp(t)

	// Wednesday already exists from the fixture; the unique index rejects it
	resp, _ := doJSON(t, app, http.MethodPost, "/working-hours", fiber.Map{
		"company_id":  data.company.ID,
		"day_of_week": 3,
		"open_time":   "08:00",
		"close_time":  "12:00",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetAppointmentsRangeFilter(t *testing.T) {
	app, data := setupApp(t)

	for _, start := range []string{"2025-10-01T10:00:00Z", "2025-10-01T14:00:00Z"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/appointments", bookingBody(data, start))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	path := fmt.Sprintf("/appointments?professional_id=%s&from=2025-10-01&to=2025-10-01", data.professional.ID)
	resp, raw := doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var appointments []models.Appointment
	require.NoError(t, json.Unmarshal(raw, &appointments))
	assert.Len(t, appointments, 2)

	path = fmt.Sprintf("/appointments?professional_id=%s&from=2025-10-02&to=2025-10-03", data.professional.ID)
	resp, raw = doJSON(t, app, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	appointments = nil
	require.NoError(t, json.Unmarshal(raw, &appointments))
	assert.Empty(t, appointments)
}
