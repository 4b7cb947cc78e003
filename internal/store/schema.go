package store

import (
	"context"
	"fmt"
)

// Per-store DDL. Column names are the store-native convention (camelCase);
// the model package owns the translation to canonical shapes.
//
// Note the deliberate absence of cross-store FOREIGN KEY clauses: each
// database only ever sees its own table, so Booking.passengerId and friends
// cannot be enforced by the engine.
const (
	passengerSchema = `
		CREATE TABLE IF NOT EXISTS Passenger (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			email TEXT NOT NULL
		)`

	scheduleSchema = `
		CREATE TABLE IF NOT EXISTS TravelSchedule (
			id             TEXT PRIMARY KEY,
			origin         TEXT NOT NULL,
			destination    TEXT NOT NULL,
			departureTime  TEXT NOT NULL,
			arrivalTime    TEXT NOT NULL,
			price          REAL NOT NULL CHECK (price >= 0),
			seatsAvailable INTEGER NOT NULL CHECK (seatsAvailable >= 0),
			vehicleType    TEXT
		)`

	bookingSchema = `
		CREATE TABLE IF NOT EXISTS Booking (
			id          TEXT PRIMARY KEY,
			passengerId TEXT NOT NULL,
			scheduleId  TEXT NOT NULL,
			bookingTime TEXT NOT NULL,
			status      TEXT NOT NULL CHECK (status IN ('CONFIRMED','CANCELLED','REFUNDED'))
		)`

	historySchema = `
		CREATE TABLE IF NOT EXISTS TravelHistory (
			id          TEXT PRIMARY KEY,
			passengerId TEXT NOT NULL,
			scheduleId  TEXT NOT NULL,
			completedAt TEXT NOT NULL,
			rating      REAL,
			review      TEXT
		)`

	refundSchema = `
		CREATE TABLE IF NOT EXISTS RefundRequest (
			id          TEXT PRIMARY KEY,
			bookingId   TEXT NOT NULL,
			reason      TEXT NOT NULL,
			status      TEXT NOT NULL CHECK (status IN ('PENDING','APPROVED','REJECTED')),
			requestedAt TEXT NOT NULL,
			processedAt TEXT
		)`

	recommendationSchema = `
		CREATE TABLE IF NOT EXISTS Recommendation (
			id                   TEXT PRIMARY KEY,
			passengerId          TEXT NOT NULL,
			recommendedSchedules TEXT NOT NULL,
			generatedAt          TEXT NOT NULL
		)`
)

// InitSchemas creates each store's table if it does not exist. Idempotent.
func (f *Fleet) InitSchemas(ctx context.Context) error {
	schemas := []struct {
		store *Store
		ddl   string
	}{
		{f.Passengers, passengerSchema},
		{f.Schedules, scheduleSchema},
		{f.Bookings, bookingSchema},
		{f.History, historySchema},
		{f.Refunds, refundSchema},
		{f.Recommendations, recommendationSchema},
	}

	for _, s := range schemas {
		if _, err := s.store.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("init %s schema: %w", s.store.Name(), err)
		}
	}

	return nil
}
