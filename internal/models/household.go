package models

// Household is a set of roommates sharing one ledger.
// Every participant and expense belongs to exactly one household.
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name (e.g., "Flat 4B").
	Name string

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}
