// Package store provides the SQLite store handles backing the federated
// travel-booking data layer.
//
// Each entity family (passengers, schedules, bookings, travel history,
// refund requests, recommendations) lives in its own independently owned
// SQLite database. There is no cross-store join capability and no
// cross-store foreign-key enforcement: a store knows nothing about the
// rows other stores hold. Referential consistency is an application-level,
// best-effort contract, approximated at read time by the resolve package.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: intra-store integrity only; cross-store references
//     are beyond any pragma's reach
//
// Store handles are long-lived and shared by all requests; no request owns
// exclusive access. A Fleet aggregates the six handles and is injected
// explicitly wherever store access is needed.
package store
