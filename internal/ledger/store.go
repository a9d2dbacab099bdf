package ledger

import (
	"context"

	"github.com/mmynk/sharemates/internal/models"
)

// Store persists ledger mutations for one household.
// The ledger calls it before changing its in-memory state, so a failed write
// leaves the ledger exactly as it was.
type Store interface {
	CreateParticipant(ctx context.Context, householdID string, p *models.Participant) error
	UpdateParticipant(ctx context.Context, householdID string, p *models.Participant) error
	CreateExpense(ctx context.Context, householdID string, e *models.Expense) error
	UpdateExpense(ctx context.Context, householdID string, e *models.Expense) error
}

// Loader is a Store that can also read back a household's state.
type Loader interface {
	Store
	ListParticipants(ctx context.Context, householdID string) ([]*models.Participant, error)
	ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error)
}

// nopStore keeps the ledger purely in memory.
type nopStore struct{}

func (nopStore) CreateParticipant(context.Context, string, *models.Participant) error { return nil }
func (nopStore) UpdateParticipant(context.Context, string, *models.Participant) error { return nil }
func (nopStore) CreateExpense(context.Context, string, *models.Expense) error         { return nil }
func (nopStore) UpdateExpense(context.Context, string, *models.Expense) error         { return nil }
