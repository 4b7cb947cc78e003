package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/testutil"
	"github.com/tripstitch/tripstitch/internal/travel"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	fleet := testutil.OpenFleet(t)
	require.NoError(t, fleet.Seed(context.Background(), fixedNow))

	clock := testutil.NewFrozenClock(fixedNow)
	service := travel.NewService(fleet, travel.OpaqueAllocator{}, zap.NewNop(),
		travel.WithClock(clock.Now))

	router := chi.NewRouter()
	NewHandler(service, zap.NewNop()).RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListSchedules(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/schedules", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var schedules []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedules))
	assert.Len(t, schedules, 9)
}

func TestPassengerBookings_NestedAggregates(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/passengers/1/bookings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var bookings []struct {
		ID        string          `json:"id"`
		Passenger *map[string]any `json:"passenger"`
		Schedule  *map[string]any `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].Passenger)
	assert.Equal(t, "John Doe", (*bookings[0].Passenger)["name"])
	require.NotNil(t, bookings[0].Schedule)
}

func TestCreateBooking(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/bookings",
		`{"passengerId":"2","scheduleId":"4"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view struct {
		Status    string         `json:"status"`
		Passenger map[string]any `json:"passenger"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "CONFIRMED", view.Status)
	assert.Equal(t, "Jane Smith", view.Passenger["name"])
}

func TestCreateBooking_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/bookings", `{"passengerId":"2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelBooking_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/bookings/B404/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/bookings/1/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "CANCELLED", view.Status)
}

func TestRequestRefund_DanglingBooking(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/refunds",
		`{"bookingId":"B404","reason":"bus never came"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view struct {
		Status  string          `json:"status"`
		Booking *map[string]any `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "PENDING", view.Status)
	assert.Nil(t, view.Booking)
}

func TestRateTravel(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/history/3/rating",
		`{"rating":4.5,"review":"good driver"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Rating *float64 `json:"rating"`
		Review *string  `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.NotNil(t, view.Rating)
	assert.Equal(t, 4.5, *view.Rating)
}

func TestRateTravel_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/history/H404/rating", `{"rating":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRecommendations_DanglingIDsDropped(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []struct {
		ID                   string           `json:"id"`
		RecommendedSchedules []map[string]any `json:"recommendedSchedules"`
		Passenger            map[string]any   `json:"passenger"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Len(t, views[0].RecommendedSchedules, 2)
	assert.Equal(t, "John Doe", views[0].Passenger["name"])
}

func TestPassengerRecommendations_Ephemeral(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/passengers/1/recommendations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		PassengerID          string           `json:"passengerId"`
		RecommendedSchedules []map[string]any `json:"recommendedSchedules"`
		GeneratedAt          string           `json:"generatedAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "1", view.PassengerID)
	assert.Len(t, view.RecommendedSchedules, 3)
	assert.Equal(t, fixedNow.Format(time.RFC3339), view.GeneratedAt)
}
