package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mmynk/sharemates/internal/models"
)

// Registry holds the members of one household in registration order.
// Participants are never removed, so a successful lookup stays valid.
type Registry struct {
	mu          sync.RWMutex
	householdID string
	store       Store
	now         func() int64
	byID        map[string]int
	members     []models.Participant
}

func newRegistry(householdID string, store Store, now func() int64) *Registry {
	return &Registry{
		householdID: householdID,
		store:       store,
		now:         now,
		byID:        make(map[string]int),
	}
}

// Register adds a participant. The id must be unused in this household.
func (r *Registry) Register(ctx context.Context, id, displayName string) (models.Participant, error) {
	id = strings.TrimSpace(id)
	displayName = strings.TrimSpace(displayName)
	if id == "" || displayName == "" {
		return models.Participant{}, ErrInvalidParticipant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; exists {
		return models.Participant{}, fmt.Errorf("%w: %s", ErrDuplicateParticipant, id)
	}

	p := models.Participant{ID: id, DisplayName: displayName, CreatedAt: r.now()}
	if err := r.store.CreateParticipant(ctx, r.householdID, &p); err != nil {
		return models.Participant{}, fmt.Errorf("failed to persist participant: %w", err)
	}

	r.insert(p)
	return p, nil
}

// Rename changes a participant's display name.
func (r *Registry) Rename(ctx context.Context, id, displayName string) (models.Participant, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return models.Participant{}, ErrInvalidParticipant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.byID[id]
	if !exists {
		return models.Participant{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
	}

	p := r.members[i]
	p.DisplayName = displayName
	if err := r.store.UpdateParticipant(ctx, r.householdID, &p); err != nil {
		return models.Participant{}, fmt.Errorf("failed to persist participant: %w", err)
	}

	r.members[i] = p
	return p, nil
}

// Get looks up a participant by id.
func (r *Registry) Get(id string) (models.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.byID[id]
	if !exists {
		return models.Participant{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, id)
	}
	return r.members[i], nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.byID[id]
	return exists
}

// All returns every participant in registration order.
func (r *Registry) All() []models.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Participant, len(r.members))
	copy(out, r.members)
	return out
}

// IDs returns every participant id in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.members))
	for i, p := range r.members {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of registered participants.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// insert appends p; callers hold the write lock.
func (r *Registry) insert(p models.Participant) {
	r.byID[p.ID] = len(r.members)
	r.members = append(r.members, p)
}
