// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/sharemates/internal/ledger"
	"github.com/mmynk/sharemates/internal/models"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

// Store defines the interface for household storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// Loader covers participant and expense persistence for one household's ledger.
	ledger.Loader

	// CreateHousehold persists a new household.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateHousehold(ctx context.Context, h *models.Household) error

	// GetHousehold retrieves a household by its ID.
	// Returns an error wrapping ErrNotFound if it does not exist.
	GetHousehold(ctx context.Context, householdID string) (*models.Household, error)

	// ListHouseholds returns every household, oldest first.
	ListHouseholds(ctx context.Context) ([]*models.Household, error)

	// Close releases any resources held by the store.
	Close() error
}
