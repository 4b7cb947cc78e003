// Package model defines the canonical entity shapes of the travel-booking
// domain and the per-entity mappings between store-native column names and
// those canonical shapes.
//
// Each entity is owned by exactly one logical store. Foreign-key-shaped
// fields (Booking.PassengerID, RefundRequest.BookingID, ...) point into a
// different store and are never enforced by the owning store's engine; they
// are resolved — or found dangling — at read time by the resolve package.
//
// Column-name translation happens exactly once, at the resolver boundary:
// every Mapping pairs the owning table's native column list (camelCase, as
// the stores persist it) with a scan function producing the canonical Go
// struct. Callers never touch native column names.
package model
