// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. All aggregates and entities in the
// production tracker are keyed by kernel.UUID.
package kernel
