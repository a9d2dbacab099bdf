// Package events publishes ledger changes for downstream collaborators
// such as reminder and notification workers.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Kind names an event; it doubles as the AMQP routing key.
type Kind string

const (
	ParticipantRegistered Kind = "participant.registered"
	ExpenseAdded          Kind = "expense.added"
	ExpenseSettled        Kind = "expense.settled"
	ShareSettled          Kind = "expense.share_settled"
)

// Event is a lightweight notification. Consumers fetch full state from the
// service when they need more than these fields.
type Event struct {
	Kind          Kind      `json:"kind"`
	HouseholdID   string    `json:"household_id"`
	ExpenseID     string    `json:"expense_id,omitempty"`
	ParticipantID string    `json:"participant_id,omitempty"`
	Amount        int64     `json:"amount,omitempty"`
	Status        string    `json:"status,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// New stamps an event with the current time.
func New(kind Kind, householdID string) Event {
	return Event{Kind: kind, HouseholdID: householdID, Timestamp: time.Now().UTC()}
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event.
func FromJSON(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
