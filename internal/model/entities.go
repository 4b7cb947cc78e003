package model

// BookingStatus is the lifecycle state of a Booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingRefunded  BookingStatus = "REFUNDED"
)

// RefundStatus is the lifecycle state of a RefundRequest.
//
// Nothing in this layer transitions a request out of PENDING; approval and
// rejection belong to an external processor that mutates the refund store
// directly.
type RefundStatus string

const (
	RefundPending  RefundStatus = "PENDING"
	RefundApproved RefundStatus = "APPROVED"
	RefundRejected RefundStatus = "REJECTED"
)

// Passenger is owned by the passenger store. Immutable in this layer.
type Passenger struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TravelSchedule is owned by the schedule store. Rows are bulk-loaded and
// never mutated here. Timestamps are RFC 3339 text, stored as-is.
type TravelSchedule struct {
	ID             string  `json:"id"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seatsAvailable"`
	VehicleType    string  `json:"vehicleType"`
}

// Booking is owned by the booking store. PassengerID and ScheduleID are
// cross-store references; the booking store cannot enforce them and either
// may dangle if the referenced row was deleted independently.
type Booking struct {
	ID          string        `json:"id"`
	PassengerID string        `json:"passengerId"`
	ScheduleID  string        `json:"scheduleId"`
	BookingTime string        `json:"bookingTime"`
	Status      BookingStatus `json:"status"`
}

// TravelHistory is owned by the history store. Rating and Review are unset
// until RateTravel fills them.
type TravelHistory struct {
	ID          string   `json:"id"`
	PassengerID string   `json:"passengerId"`
	ScheduleID  string   `json:"scheduleId"`
	CompletedAt string   `json:"completedAt"`
	Rating      *float64 `json:"rating"`
	Review      *string  `json:"review"`
}

// RefundRequest is owned by the refund store. BookingID is a cross-store
// reference and is deliberately not validated at creation time.
type RefundRequest struct {
	ID          string       `json:"id"`
	BookingID   string       `json:"bookingId"`
	Reason      string       `json:"reason"`
	Status      RefundStatus `json:"status"`
	RequestedAt string       `json:"requestedAt"`
	ProcessedAt *string      `json:"processedAt"`
}

// RecommendationRow is a persisted recommendation exactly as the
// recommendation store holds it: RecommendedScheduleIDs is the serialized
// id-list blob, not a materialized relationship. The resolve package decodes
// it; the travel package presents the materialized aggregate.
type RecommendationRow struct {
	ID                     string `json:"id"`
	PassengerID            string `json:"passengerId"`
	RecommendedScheduleIDs string `json:"recommendedScheduleIds"`
	GeneratedAt            string `json:"generatedAt"`
}
