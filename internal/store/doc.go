// Package store defines the persistence interfaces the rest of the
// application programs against, together with the sentinel errors each
// implementation must return. Concrete implementations live under
// internal/platform.
package store
