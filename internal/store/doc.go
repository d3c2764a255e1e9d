// Package store defines the persistence interfaces and sentinel errors for
// the application. Concrete implementations live under internal/platform
// (in-memory and PostgreSQL); consumers depend only on the interfaces here
// so backends can be swapped without touching the service or API layers.
package store
