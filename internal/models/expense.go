package models

import "slices"

// Expense is a shared cost paid by one participant and split equally among
// the members of SplitAmong.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Title is the free-text label (e.g., "Groceries").
	Title string

	// Description is optional extra detail.
	Description string

	// Amount is the total in minor currency units. Always positive.
	Amount int64

	// PaidBy is the participant who paid. Need not be in SplitAmong.
	PaidBy string

	// SplitAmong lists the participants sharing the cost, without duplicates.
	// The first entry absorbs the rounding remainder of the split.
	SplitAmong []string

	// Category tags the expense for filtering.
	Category Category

	// Status is the settlement state.
	Status Status

	// SettledShares lists the participants whose share has been repaid to the payer.
	SettledShares []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Includes reports whether participantID shares this expense.
func (e Expense) Includes(participantID string) bool {
	return slices.Contains(e.SplitAmong, participantID)
}

// ShareSettled reports whether participantID has repaid their share.
func (e Expense) ShareSettled(participantID string) bool {
	return slices.Contains(e.SettledShares, participantID)
}

// Involves reports whether participantID paid for or shares this expense.
func (e Expense) Involves(participantID string) bool {
	return e.PaidBy == participantID || e.Includes(participantID)
}

// Clone returns a copy that shares no slices with e.
func (e Expense) Clone() Expense {
	e.SplitAmong = slices.Clone(e.SplitAmong)
	e.SettledShares = slices.Clone(e.SettledShares)
	return e
}
