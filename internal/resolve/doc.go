// Package resolve implements cross-store relationship resolution: keyed
// lookups of a single entity, batched lookups of many, and the codec for
// the one relationship persisted as a serialized id list instead of a
// relational link (Recommendation.recommendedSchedules).
//
// Dangling references are expected, not exceptional. The stores cannot
// enforce keys that point across store boundaries, so every resolver here
// treats an unmatched id as absence: One returns nil, Many and Materialize
// simply omit the missing rows. Callers that require presence decide that
// for themselves.
package resolve
