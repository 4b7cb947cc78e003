package model

import "database/sql"

// RowScanner is the subset of *sql.Row and *sql.Rows a scan function needs.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapping binds an entity to its owning table: the table name, the native
// column list in scan order, and the scan function that translates a row
// into the canonical shape. One Mapping exists per entity; it is the single
// place where store-native naming is known.
type Mapping[T any] struct {
	Table   string
	Columns []string
	Scan    func(RowScanner) (T, error)
}

var Passengers = Mapping[Passenger]{
	Table:   "Passenger",
	Columns: []string{"id", "name", "email"},
	Scan: func(r RowScanner) (Passenger, error) {
		var p Passenger
		err := r.Scan(&p.ID, &p.Name, &p.Email)
		return p, err
	},
}

var Schedules = Mapping[TravelSchedule]{
	Table: "TravelSchedule",
	Columns: []string{
		"id", "origin", "destination", "departureTime", "arrivalTime",
		"price", "seatsAvailable", "vehicleType",
	},
	Scan: func(r RowScanner) (TravelSchedule, error) {
		var s TravelSchedule
		var vehicleType sql.NullString
		err := r.Scan(
			&s.ID, &s.Origin, &s.Destination, &s.DepartureTime, &s.ArrivalTime,
			&s.Price, &s.SeatsAvailable, &vehicleType,
		)
		s.VehicleType = vehicleType.String
		return s, err
	},
}

var Bookings = Mapping[Booking]{
	Table:   "Booking",
	Columns: []string{"id", "passengerId", "scheduleId", "bookingTime", "status"},
	Scan: func(r RowScanner) (Booking, error) {
		var b Booking
		var status string
		err := r.Scan(&b.ID, &b.PassengerID, &b.ScheduleID, &b.BookingTime, &status)
		b.Status = BookingStatus(status)
		return b, err
	},
}

var Histories = Mapping[TravelHistory]{
	Table:   "TravelHistory",
	Columns: []string{"id", "passengerId", "scheduleId", "completedAt", "rating", "review"},
	Scan: func(r RowScanner) (TravelHistory, error) {
		var h TravelHistory
		var rating sql.NullFloat64
		var review sql.NullString
		err := r.Scan(&h.ID, &h.PassengerID, &h.ScheduleID, &h.CompletedAt, &rating, &review)
		if rating.Valid {
			h.Rating = &rating.Float64
		}
		if review.Valid {
			h.Review = &review.String
		}
		return h, err
	},
}

var Refunds = Mapping[RefundRequest]{
	Table:   "RefundRequest",
	Columns: []string{"id", "bookingId", "reason", "status", "requestedAt", "processedAt"},
	Scan: func(r RowScanner) (RefundRequest, error) {
		var rr RefundRequest
		var status string
		var processedAt sql.NullString
		err := r.Scan(&rr.ID, &rr.BookingID, &rr.Reason, &status, &rr.RequestedAt, &processedAt)
		rr.Status = RefundStatus(status)
		if processedAt.Valid {
			rr.ProcessedAt = &processedAt.String
		}
		return rr, err
	},
}

var Recommendations = Mapping[RecommendationRow]{
	Table:   "Recommendation",
	Columns: []string{"id", "passengerId", "recommendedSchedules", "generatedAt"},
	Scan: func(r RowScanner) (RecommendationRow, error) {
		var rec RecommendationRow
		err := r.Scan(&rec.ID, &rec.PassengerID, &rec.RecommendedScheduleIDs, &rec.GeneratedAt)
		return rec, err
	},
}
