package store

import (
	"context"
	"fmt"
	"time"
)

// Seed clears every store and loads a small deterministic fixture set:
// five passengers, nine schedules, a booking per passenger, completed
// history rows, one pending refund, and one persisted recommendation whose
// id list intentionally includes a dangling schedule reference. Sequential
// text ids mirror the bulk-load convention.
//
// Dependent stores are cleared before the stores they reference so a
// half-failed run never leaves more dangling references than it found.
func (f *Fleet) Seed(ctx context.Context, now time.Time) error {
	clears := []struct {
		store *Store
		stmt  string
	}{
		{f.Refunds, `DELETE FROM RefundRequest`},
		{f.History, `DELETE FROM TravelHistory`},
		{f.Bookings, `DELETE FROM Booking`},
		{f.Recommendations, `DELETE FROM Recommendation`},
		{f.Schedules, `DELETE FROM TravelSchedule`},
		{f.Passengers, `DELETE FROM Passenger`},
	}
	for _, c := range clears {
		if _, err := c.store.Exec(ctx, c.stmt); err != nil {
			return fmt.Errorf("seed: clear %s: %w", c.store.Name(), err)
		}
	}

	stamp := func(offset time.Duration) string {
		return now.Add(offset).UTC().Format(time.RFC3339)
	}

	passengers := [][]any{
		{"1", "John Doe", "john@example.com"},
		{"2", "Jane Smith", "jane@example.com"},
		{"3", "Bob Johnson", "bob@example.com"},
		{"4", "Alice Brown", "alice@example.com"},
		{"5", "Charlie Wilson", "charlie@example.com"},
	}
	for _, p := range passengers {
		if _, err := f.Passengers.Exec(ctx,
			`INSERT INTO Passenger (id, name, email) VALUES (?, ?, ?)`, p...); err != nil {
			return fmt.Errorf("seed passengers: %w", err)
		}
	}

	routes := []struct {
		origin, destination, vehicle string
		price                        float64
	}{
		{"Jakarta", "Bandung", "SUV", 150000},
		{"Jakarta", "Bogor", "Van", 80000},
		{"Bandung", "Jakarta", "Minibus", 145000},
		{"Surabaya", "Malang", "Sedan", 95000},
		{"Yogyakarta", "Solo", "Van", 60000},
		{"Semarang", "Yogyakarta", "SUV", 110000},
		{"Jakarta", "Semarang", "Minibus", 210000},
		{"Solo", "Yogyakarta", "Sedan", 60000},
		{"Malang", "Surabaya", "Van", 95000},
	}
	for i, r := range routes {
		depart := time.Duration(24*(i+1)) * time.Hour
		if _, err := f.Schedules.Exec(ctx, `
			INSERT INTO TravelSchedule
			(id, origin, destination, departureTime, arrivalTime, price, seatsAvailable, vehicleType)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			fmt.Sprint(i+1), r.origin, r.destination,
			stamp(depart), stamp(depart+3*time.Hour),
			r.price, 8+i%5, r.vehicle,
		); err != nil {
			return fmt.Errorf("seed schedules: %w", err)
		}
	}

	bookings := [][]any{
		{"1", "1", "1", stamp(-72 * time.Hour), "CONFIRMED"},
		{"2", "2", "3", stamp(-48 * time.Hour), "CONFIRMED"},
		{"3", "3", "5", stamp(-36 * time.Hour), "CANCELLED"},
		{"4", "4", "7", stamp(-24 * time.Hour), "REFUNDED"},
		{"5", "5", "2", stamp(-12 * time.Hour), "CONFIRMED"},
	}
	for _, b := range bookings {
		if _, err := f.Bookings.Exec(ctx, `
			INSERT INTO Booking (id, passengerId, scheduleId, bookingTime, status)
			VALUES (?, ?, ?, ?, ?)`, b...); err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}
	}

	histories := [][]any{
		{"1", "1", "4", stamp(-30 * 24 * time.Hour), 4.5, "Comfortable ride"},
		{"2", "2", "6", stamp(-20 * 24 * time.Hour), 5.0, "Driver was on time"},
		{"3", "3", "8", stamp(-10 * 24 * time.Hour), nil, nil},
	}
	for _, h := range histories {
		if _, err := f.History.Exec(ctx, `
			INSERT INTO TravelHistory (id, passengerId, scheduleId, completedAt, rating, review)
			VALUES (?, ?, ?, ?, ?, ?)`, h...); err != nil {
			return fmt.Errorf("seed history: %w", err)
		}
	}

	if _, err := f.Refunds.Exec(ctx, `
		INSERT INTO RefundRequest (id, bookingId, reason, status, requestedAt, processedAt)
		VALUES (?, ?, ?, ?, ?, ?)`,
		"1", "4", "Schedule changed", "PENDING", stamp(-20*time.Hour), nil,
	); err != nil {
		return fmt.Errorf("seed refunds: %w", err)
	}

	// "99" references no schedule; the codec is expected to drop it silently.
	if _, err := f.Recommendations.Exec(ctx, `
		INSERT INTO Recommendation (id, passengerId, recommendedSchedules, generatedAt)
		VALUES (?, ?, ?, ?)`,
		"1", "1", `["2","5","99"]`, stamp(-6*time.Hour),
	); err != nil {
		return fmt.Errorf("seed recommendations: %w", err)
	}

	return nil
}
