// Package store provides durable storage for pass runs.
//
// Three tables back the history:
//
//   - runs: one row per pipeline run, keyed by the run token
//   - pass_events: one row per executed pass, ordered by seq within a run
//   - snapshots: content-addressed canonical documents, keyed by hash
//
// All writes are idempotent via ON CONFLICT DO NOTHING, so replaying a run
// against an existing database is safe. Snapshots are deduplicated by
// construction: the identity pass produces the same hash as its input and
// stores nothing new.
package store
