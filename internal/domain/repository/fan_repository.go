// Package repository defines the interfaces for the store layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"atlas/internal/domain/entity"
)

// ErrFanNotFound is a domain-specific error returned when a fan is not found.
var ErrFanNotFound = errors.New("fan not found")

// FanRepository defines the standard operations of the fan directory.
// The application layer depends on this interface, not the concrete store.
type FanRepository interface {
	// List returns all fans in insertion order.
	List(ctx context.Context) ([]*entity.Fan, error)

	// FindByID retrieves a single fan by its opaque ID.
	FindByID(ctx context.Context, id string) (*entity.Fan, error)

	// FindByHandle resolves a case-insensitive handle through the
	// directory's secondary handle index.
	FindByHandle(ctx context.Context, handle string) (*entity.Fan, error)

	// Create assigns a new unique ID and defaults, inserts the fan, and
	// returns the stored copy.
	Create(ctx context.Context, fan *entity.Fan) (*entity.Fan, error)

	// Update replaces the stored fan with the given one, keyed by fan.ID.
	Update(ctx context.Context, fan *entity.Fan) (*entity.Fan, error)

	// Search matches the query as a case-insensitive substring of the fan
	// name. An empty query returns the full list.
	Search(ctx context.Context, query string) ([]*entity.Fan, error)

	// RegisterHandle adds a handle alias to the secondary index so the
	// index can grow without code edits.
	RegisterHandle(ctx context.Context, handle, fanID string) error
}
