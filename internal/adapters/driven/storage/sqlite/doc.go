// Package sqlite stores site content in a SQLite catalogue.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A catalogue is written with Import (the "content export"
// command) and read back through Load, which makes Store a
// driven.ContentSource selected by the content.database setting.
//
// # Schema
//
// The schema is managed through versioned migrations in migrations/. Each
// migration is a pair of .up.sql and .down.sql files; applied versions are
// recorded in schema_migrations.
//
// # Ordering
//
// Every collection keeps a position column so records load back in the
// order they were imported. The search index depends on that order.
package sqlite
