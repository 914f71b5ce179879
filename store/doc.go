// Package store persists filtration runs and their barcode records in SQLite
// (pure-Go driver modernc.org/sqlite, no cgo).
//
// Schema is versioned in schema_migrations and upgraded on Open. Run IDs are
// random UUIDs unless the caller provides one. A run and its records are
// written in one transaction.
package store
