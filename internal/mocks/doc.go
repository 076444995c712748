// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock exposes function fields for per-test
// behavior and a map-backed default implementation.
package mocks
