// Package ledger records shared household expenses and answers balance queries.
//
// A Ledger owns the expenses of one household and embeds the household's
// participant Registry. Writes are serialized by the ledger's lock and are
// persisted through a Store before memory changes, so every mutation is
// all-or-nothing. Readers work on snapshots and never observe a half-applied
// write.
package ledger

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/sharemates/internal/calculator"
	"github.com/mmynk/sharemates/internal/models"
)

// Ledger is the append-only expense book of one household.
type Ledger struct {
	mu          sync.RWMutex
	householdID string
	store       Store
	clock       func() time.Time
	newID       func() string
	registry    *Registry
	expenses    []models.Expense
	byID        map[string]int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithStore persists every mutation through s.
func WithStore(s Store) Option {
	return func(l *Ledger) { l.store = s }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) { l.clock = clock }
}

// WithIDGenerator overrides how expense IDs are assigned.
func WithIDGenerator(newID func() string) Option {
	return func(l *Ledger) { l.newID = newID }
}

// New creates an empty ledger for a household.
// Without WithStore the ledger lives only in memory.
func New(householdID string, opts ...Option) *Ledger {
	l := &Ledger{
		householdID: householdID,
		store:       nopStore{},
		clock:       time.Now,
		newID:       uuid.NewString,
		byID:        make(map[string]int),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.registry = newRegistry(householdID, l.store, func() int64 { return l.clock().Unix() })
	return l
}

// Load rebuilds a household's ledger from storage. Later mutations are
// written back through the same store.
func Load(ctx context.Context, householdID string, store Loader, opts ...Option) (*Ledger, error) {
	l := New(householdID, append(opts, WithStore(store))...)

	participants, err := store.ListParticipants(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	for _, p := range participants {
		l.registry.insert(*p)
	}

	expenses, err := store.ListExpenses(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	for _, e := range expenses {
		l.byID[e.ID] = len(l.expenses)
		l.expenses = append(l.expenses, e.Clone())
	}

	return l, nil
}

// HouseholdID returns the household this ledger belongs to.
func (l *Ledger) HouseholdID() string {
	return l.householdID
}

// Participants returns the household's participant registry.
func (l *Ledger) Participants() *Registry {
	return l.registry
}

// NewExpense is the caller input for AddExpense.
type NewExpense struct {
	Title       string
	Description string
	Amount      int64 // minor units
	PaidBy      string
	SplitAmong  []string
	Category    models.Category // CategoryUnspecified is recorded as CategoryOther
}

// AddExpense validates and records a new pending expense.
// Duplicate ids in SplitAmong are collapsed, keeping the first occurrence.
func (l *Ledger) AddExpense(ctx context.Context, in NewExpense) (models.Expense, error) {
	if in.Amount <= 0 || in.Amount > calculator.MaxAmount {
		return models.Expense{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, in.Amount)
	}
	split := dedupe(in.SplitAmong)
	if len(split) == 0 {
		return models.Expense{}, ErrEmptySplitSet
	}
	if !l.registry.Has(in.PaidBy) {
		return models.Expense{}, fmt.Errorf("%w: payer %q", ErrUnknownParticipant, in.PaidBy)
	}
	for _, id := range split {
		if !l.registry.Has(id) {
			return models.Expense{}, fmt.Errorf("%w: %q", ErrUnknownParticipant, id)
		}
	}
	category := in.Category
	if category == models.CategoryUnspecified {
		category = models.CategoryOther
	}
	if !category.Valid() {
		return models.Expense{}, fmt.Errorf("%w: %d", ErrInvalidCategory, int(category))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := models.Expense{
		ID:          l.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		PaidBy:      in.PaidBy,
		SplitAmong:  split,
		Category:    category,
		Status:      models.StatusPending,
		CreatedAt:   l.clock().Unix(),
	}
	if err := l.store.CreateExpense(ctx, l.householdID, &e); err != nil {
		return models.Expense{}, fmt.Errorf("failed to persist expense: %w", err)
	}

	l.byID[e.ID] = len(l.expenses)
	l.expenses = append(l.expenses, e)
	return e.Clone(), nil
}

// Settle marks an expense fully paid back. Settling twice is rejected with
// ErrAlreadySettled.
func (l *Ledger) Settle(ctx context.Context, expenseID string) (models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, err := l.indexOf(expenseID)
	if err != nil {
		return models.Expense{}, err
	}
	current := l.expenses[i]
	if !current.Status.CanTransition(models.StatusSettled) {
		return models.Expense{}, fmt.Errorf("%w: %s", ErrAlreadySettled, expenseID)
	}

	next := current.Clone()
	next.Status = models.StatusSettled
	return l.replace(ctx, i, next)
}

// SettleShare records that one member repaid their share to the payer.
// The expense becomes partial, or settled once no share is outstanding.
func (l *Ledger) SettleShare(ctx context.Context, expenseID, participantID string) (models.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, err := l.indexOf(expenseID)
	if err != nil {
		return models.Expense{}, err
	}
	current := l.expenses[i]
	if current.Status == models.StatusSettled {
		return models.Expense{}, fmt.Errorf("%w: %s", ErrAlreadySettled, expenseID)
	}
	if current.ShareSettled(participantID) {
		return models.Expense{}, fmt.Errorf("%w: %s on %s", ErrShareAlreadySettled, participantID, expenseID)
	}
	share, err := SplitShare(current, participantID)
	if err != nil {
		return models.Expense{}, err
	}
	if participantID == current.PaidBy || share == 0 {
		return models.Expense{}, fmt.Errorf("%w: %s on %s", ErrNotInSplit, participantID, expenseID)
	}

	next := current.Clone()
	next.SettledShares = append(next.SettledShares, participantID)
	remaining, err := calculator.Outstanding(forBalance(next))
	if err != nil {
		return models.Expense{}, err
	}
	next.Status = models.StatusPartial
	if len(remaining) == 0 {
		next.Status = models.StatusSettled
	}
	return l.replace(ctx, i, next)
}

// Get returns one expense.
func (l *Ledger) Get(expenseID string) (models.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, err := l.indexOf(expenseID)
	if err != nil {
		return models.Expense{}, err
	}
	return l.expenses[i].Clone(), nil
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.expenses)
}

// Filter selects expenses in ListExpenses. Zero-valued fields match anything;
// set fields are combined with AND.
type Filter struct {
	Participant string // payer or split member
	Status      models.Status
	Category    models.Category
}

func (f Filter) matches(e models.Expense) bool {
	if f.Participant != "" && !e.Involves(f.Participant) {
		return false
	}
	if f.Status != models.StatusUnspecified && e.Status != f.Status {
		return false
	}
	if f.Category != models.CategoryUnspecified && e.Category != f.Category {
		return false
	}
	return true
}

// ListExpenses yields matching expenses in the order they were added.
// Each iteration works on a fresh snapshot, so the sequence can be replayed.
func (l *Ledger) ListExpenses(f Filter) iter.Seq[models.Expense] {
	return func(yield func(models.Expense) bool) {
		for _, e := range l.snapshot() {
			if f.matches(e) && !yield(e.Clone()) {
				return
			}
		}
	}
}

// SplitShare returns participantID's share of an expense in minor units,
// or 0 when they are not in its split set.
func SplitShare(e models.Expense, participantID string) (int64, error) {
	return calculator.ShareOf(e.Amount, e.SplitAmong, participantID)
}

// Shares returns every member's share of an expense. The shares sum to
// e.Amount exactly.
func Shares(e models.Expense) (map[string]int64, error) {
	return calculator.EqualSplit(e.Amount, e.SplitAmong)
}

// snapshot returns the current expenses. Elements are never mutated in place
// after publication, so the slice is safe to read without the lock.
func (l *Ledger) snapshot() []models.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// indexOf finds an expense; callers hold the lock.
func (l *Ledger) indexOf(expenseID string) (int, error) {
	i, exists := l.byID[expenseID]
	if !exists {
		return 0, fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
	}
	return i, nil
}

// replace persists next and swaps it in; callers hold the write lock.
func (l *Ledger) replace(ctx context.Context, i int, next models.Expense) (models.Expense, error) {
	if err := l.store.UpdateExpense(ctx, l.householdID, &next); err != nil {
		return models.Expense{}, fmt.Errorf("failed to persist expense: %w", err)
	}
	l.expenses[i] = next
	return next.Clone(), nil
}

func forBalance(e models.Expense) calculator.ExpenseForBalance {
	return calculator.ExpenseForBalance{
		Amount:     e.Amount,
		PaidBy:     e.PaidBy,
		SplitAmong: e.SplitAmong,
		Repaid:     e.SettledShares,
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
