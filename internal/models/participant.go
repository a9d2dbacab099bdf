package models

// Participant is a household member who can pay for or share expenses.
//
// Participants are never deleted: expenses keep referring to them by ID.
// Only DisplayName may change after creation.
type Participant struct {
	// ID is the opaque identifier chosen by the caller (unique per household).
	ID string

	// DisplayName is the human-readable name shown in listings.
	DisplayName string

	// CreatedAt is the Unix timestamp when the participant was registered.
	CreatedAt int64
}
