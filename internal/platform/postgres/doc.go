// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces, using database/sql with the pgx driver. Database errors are
// translated to store sentinel errors via MapError so callers never depend
// on driver-specific error types.
package postgres
