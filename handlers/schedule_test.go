package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/models"
	"medibook/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScheduleService implements schedule.ScheduleService with pluggable
// behavior per test.
type stubScheduleService struct {
	getFn   func(ctx context.Context, doctorID string) (*models.ScheduleConfig, error)
	saveFn  func(ctx context.Context, doctorID string, cfg models.ScheduleConfig) (*models.ScheduleConfig, error)
	slotsFn func(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)
	datesFn func(ctx context.Context, doctorID string, horizonDays int) ([]models.AvailableDate, error)
}

func (s *stubScheduleService) GetDoctorSchedule(ctx context.Context, doctorID string) (*models.ScheduleConfig, error) {
	return s.getFn(ctx, doctorID)
}

func (s *stubScheduleService) SaveDoctorSchedule(ctx context.Context, doctorID string, cfg models.ScheduleConfig) (*models.ScheduleConfig, error) {
	return s.saveFn(ctx, doctorID, cfg)
}

func (s *stubScheduleService) GetTimeSlots(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	return s.slotsFn(ctx, doctorID, date)
}

func (s *stubScheduleService) GetAvailableDates(ctx context.Context, doctorID string, horizonDays int) ([]models.AvailableDate, error) {
	return s.datesFn(ctx, doctorID, horizonDays)
}

func newTestRouter(svc schedule.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	sh := NewScheduleHandler(svc)
	ah := NewAvailabilityHandler(svc)

	router.GET("/api/doctors/:doctorID/schedule", sh.GetScheduleHandler)
	router.PUT("/api/doctors/:doctorID/schedule", sh.SaveScheduleHandler)
	router.GET("/api/doctors/:doctorID/availability/slots", ah.GetTimeSlotsHandler)
	router.GET("/api/doctors/:doctorID/availability/dates", ah.GetAvailableDatesHandler)
	return router
}

func TestGetScheduleHandler(t *testing.T) {
	svc := &stubScheduleService{
		getFn: func(_ context.Context, doctorID string) (*models.ScheduleConfig, error) {
			cfg := schedule.ValidateScheduleConfig(models.ScheduleConfig{DoctorID: doctorID})
			return &cfg, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/schedule", nil)
	newTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Schedule models.ScheduleConfig `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "doc-1", body.Schedule.DoctorID)
	assert.Len(t, body.Schedule.WorkingHours, 7)
}

func TestSaveScheduleHandler(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		svc := &stubScheduleService{
			saveFn: func(_ context.Context, doctorID string, cfg models.ScheduleConfig) (*models.ScheduleConfig, error) {
				saved := schedule.ValidateScheduleConfig(cfg)
				saved.DoctorID = doctorID
				return &saved, nil
			},
		}

		payload, err := json.Marshal(schedule.ValidateScheduleConfig(models.ScheduleConfig{}))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/doctors/doc-1/schedule", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		svc := &stubScheduleService{
			saveFn: func(context.Context, string, models.ScheduleConfig) (*models.ScheduleConfig, error) {
				return nil, schedule.ErrInvalidSlotDuration
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/doctors/doc-1/schedule", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := &stubScheduleService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/doctors/doc-1/schedule", bytes.NewBufferString(`{broken`))
		req.Header.Set("Content-Type", "application/json")
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTimeSlotsHandler(t *testing.T) {
	t.Run("returns slots", func(t *testing.T) {
		svc := &stubScheduleService{
			slotsFn: func(_ context.Context, _, date string) ([]models.TimeSlot, error) {
				assert.Equal(t, "2026-01-05", date)
				return []models.TimeSlot{
					{Value: "09:00 AM", Label: "09:00 AM"},
					{Value: "09:30 AM", Label: "09:30 AM"},
				}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/slots?date=2026-01-05", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Timeslots []models.TimeSlot `json:"timeslots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Timeslots, 2)
	})

	t.Run("missing date", func(t *testing.T) {
		svc := &stubScheduleService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/slots", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid date maps to 400", func(t *testing.T) {
		svc := &stubScheduleService{
			slotsFn: func(context.Context, string, string) ([]models.TimeSlot, error) {
				return nil, schedule.ErrInvalidDate
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/slots?date=garbage", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAvailableDatesHandler(t *testing.T) {
	t.Run("passes horizon through", func(t *testing.T) {
		svc := &stubScheduleService{
			datesFn: func(_ context.Context, _ string, horizonDays int) ([]models.AvailableDate, error) {
				assert.Equal(t, 14, horizonDays)
				return []models.AvailableDate{{Value: "2026-01-05", Label: "Mon, Jan 5"}}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/dates?horizon=14", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Dates []models.AvailableDate `json:"dates"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Dates, 1)
	})

	t.Run("defaults horizon to zero when absent", func(t *testing.T) {
		svc := &stubScheduleService{
			datesFn: func(_ context.Context, _ string, horizonDays int) ([]models.AvailableDate, error) {
				assert.Zero(t, horizonDays)
				return []models.AvailableDate{}, nil
			},
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/dates", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects non-numeric horizon", func(t *testing.T) {
		svc := &stubScheduleService{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/doctors/doc-1/availability/dates?horizon=soon", nil)
		newTestRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
