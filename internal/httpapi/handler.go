// Package httpapi is the JSON façade over the travel service. It assembles
// nested aggregates (booking with passenger and schedule, refund with
// booking, recommendation with passenger) through the service's field
// resolvers; a dangling edge renders as null, never as a failed response.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tripstitch/tripstitch/internal/model"
	"github.com/tripstitch/tripstitch/internal/travel"
)

// requestTimeout bounds store access per request. An abandoned request
// stops issuing further store calls at the next resolver boundary.
const requestTimeout = 10 * time.Second

// Handler serves the travel-booking HTTP API.
type Handler struct {
	service *travel.Service
	logger  *zap.Logger
}

// NewHandler builds the façade over the given service.
func NewHandler(service *travel.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts every endpoint on the router.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/health", h.handleHealth)

	r.Get("/schedules", h.handleListSchedules)
	r.Get("/passengers", h.handleListPassengers)
	r.Get("/passengers/{id}/bookings", h.handlePassengerBookings)
	r.Get("/passengers/{id}/history", h.handlePassengerHistory)
	r.Get("/passengers/{id}/recommendations", h.handlePassengerRecommendations)
	r.Get("/bookings", h.handleListBookings)
	r.Get("/refunds", h.handleListRefunds)
	r.Get("/history", h.handleListHistory)
	r.Get("/recommendations", h.handleListRecommendations)

	r.Post("/bookings", h.handleCreateBooking)
	r.Post("/bookings/{id}/cancel", h.handleCancelBooking)
	r.Post("/refunds", h.handleRequestRefund)
	r.Post("/history/{id}/rating", h.handleRateTravel)
}

// Aggregate views. Embedding flattens the entity's canonical fields next
// to the resolved edges.

type bookingView struct {
	model.Booking
	Passenger *model.Passenger      `json:"passenger"`
	Schedule  *model.TravelSchedule `json:"schedule"`
}

type historyView struct {
	model.TravelHistory
	Passenger *model.Passenger      `json:"passenger"`
	Schedule  *model.TravelSchedule `json:"schedule"`
}

type refundView struct {
	model.RefundRequest
	Booking *model.Booking `json:"booking"`
}

type recommendationView struct {
	travel.Recommendation
	Passenger *model.Passenger `json:"passenger"`
}

func (h *Handler) bookingView(ctx context.Context, b model.Booking) (bookingView, error) {
	passenger, err := h.service.BookingPassenger(ctx, b)
	if err != nil {
		return bookingView{}, err
	}
	schedule, err := h.service.BookingSchedule(ctx, b)
	if err != nil {
		return bookingView{}, err
	}
	return bookingView{Booking: b, Passenger: passenger, Schedule: schedule}, nil
}

func (h *Handler) historyView(ctx context.Context, t model.TravelHistory) (historyView, error) {
	passenger, err := h.service.HistoryPassenger(ctx, t)
	if err != nil {
		return historyView{}, err
	}
	schedule, err := h.service.HistorySchedule(ctx, t)
	if err != nil {
		return historyView{}, err
	}
	return historyView{TravelHistory: t, Passenger: passenger, Schedule: schedule}, nil
}

func (h *Handler) refundView(ctx context.Context, r model.RefundRequest) (refundView, error) {
	booking, err := h.service.RefundBooking(ctx, r)
	if err != nil {
		return refundView{}, err
	}
	return refundView{RefundRequest: r, Booking: booking}, nil
}

func (h *Handler) recommendationView(ctx context.Context, rec travel.Recommendation) (recommendationView, error) {
	passenger, err := h.service.RecommendationPassenger(ctx, rec)
	if err != nil {
		return recommendationView{}, err
	}
	return recommendationView{Recommendation: rec, Passenger: passenger}, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	schedules, err := h.service.ListSchedules(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, schedules)
}

func (h *Handler) handleListPassengers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	passengers, err := h.service.ListPassengers(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, passengers)
}

func (h *Handler) handlePassengerBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	bookings, err := h.service.BookingsByPassenger(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeBookingViews(ctx, w, bookings)
}

func (h *Handler) handleListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	bookings, err := h.service.AllBookings(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeBookingViews(ctx, w, bookings)
}

func (h *Handler) writeBookingViews(ctx context.Context, w http.ResponseWriter, bookings []model.Booking) {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		view, err := h.bookingView(ctx, b)
		if err != nil {
			h.writeError(w, err)
			return
		}
		views = append(views, view)
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handlePassengerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	histories, err := h.service.HistoryByPassenger(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeHistoryViews(ctx, w, histories)
}

func (h *Handler) handleListHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	histories, err := h.service.AllHistory(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeHistoryViews(ctx, w, histories)
}

func (h *Handler) writeHistoryViews(ctx context.Context, w http.ResponseWriter, histories []model.TravelHistory) {
	views := make([]historyView, 0, len(histories))
	for _, t := range histories {
		view, err := h.historyView(ctx, t)
		if err != nil {
			h.writeError(w, err)
			return
		}
		views = append(views, view)
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleListRefunds(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	refunds, err := h.service.AllRefundRequests(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]refundView, 0, len(refunds))
	for _, rr := range refunds {
		view, err := h.refundView(ctx, rr)
		if err != nil {
			h.writeError(w, err)
			return
		}
		views = append(views, view)
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handlePassengerRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	rec, err := h.service.Recommendations(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.recommendationView(ctx, rec)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	recs, err := h.service.AllRecommendations(ctx)
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]recommendationView, 0, len(recs))
	for _, rec := range recs {
		view, err := h.recommendationView(ctx, rec)
		if err != nil {
			h.writeError(w, err)
			return
		}
		views = append(views, view)
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PassengerID string `json:"passengerId"`
		ScheduleID  string `json:"scheduleId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.PassengerID == "" || req.ScheduleID == "" {
		http.Error(w, "passengerId and scheduleId are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	booking, err := h.service.CreateBooking(ctx, req.PassengerID, req.ScheduleID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.bookingView(ctx, booking)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	booking, err := h.service.CancelBooking(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.bookingView(ctx, booking)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleRequestRefund(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID string `json:"bookingId"`
		Reason    string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.BookingID == "" || req.Reason == "" {
		http.Error(w, "bookingId and reason are required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	refund, err := h.service.RequestRefund(ctx, req.BookingID, req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.refundView(ctx, refund)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleRateTravel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating *float64 `json:"rating"`
		Review *string  `json:"review"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Rating == nil {
		http.Error(w, "rating is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	history, err := h.service.RateTravel(ctx, chi.URLParam(r, "id"), *req.Rating, req.Review)
	if err != nil {
		h.writeError(w, err)
		return
	}
	view, err := h.historyView(ctx, history)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, travel.ErrNotFound) {
		status = http.StatusNotFound
	}
	h.logger.Error("request failed", zap.Error(err), zap.Int("status", status))
	http.Error(w, err.Error(), status)
}
