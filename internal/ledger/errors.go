package ledger

import (
	"errors"

	"github.com/mmynk/sharemates/internal/calculator"
)

var (
	ErrDuplicateParticipant = errors.New("participant already registered")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrInvalidParticipant   = errors.New("participant id and display name are required")
	ErrUnknownParticipant   = errors.New("expense references an unknown participant")
	ErrInvalidAmount        = calculator.ErrInvalidAmount
	ErrEmptySplitSet        = calculator.ErrEmptySplitSet
	ErrInvalidCategory      = errors.New("unknown expense category")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrAlreadySettled       = errors.New("expense already settled")
	ErrNotInSplit           = errors.New("participant does not owe a share of this expense")
	ErrShareAlreadySettled  = errors.New("share already settled")
)
