// Package travel exposes the operations of the federated travel-booking
// data layer: listing queries, the four mutations, per-edge field
// resolvers, and the two recommendation paths.
//
// Every operation runs request-parallel against the shared store fleet.
// No operation takes an in-process lock; all coordination is left to the
// individual SQLite stores. The one deliberate exception to safe
// concurrency is SequentialAllocator, which is single-writer only (see its
// doc comment).
//
// The dangling-reference policy is lenient throughout: an edge whose target
// row is gone resolves to nil rather than an error. Only direct by-id
// mutations (CancelBooking, RateTravel) surface ErrNotFound.
package travel
