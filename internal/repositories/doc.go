// Package repositories implements SQLite persistence for contact snapshots.
//
// The contacts file stays the source of truth. A snapshot is a point-in-time copy of its decoded
// records, written by `contacts export --format sqlite` so the data can be queried with SQL tools.
//
// Key Implementations:
//   - [SnapshotRepository] : creates, reads, lists and deletes snapshots and their contacts
package repositories
