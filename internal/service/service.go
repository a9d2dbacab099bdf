package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"connectrpc.com/connect"
	"golang.org/x/sync/singleflight"

	"github.com/mmynk/sharemates/internal/events"
	"github.com/mmynk/sharemates/internal/ledger"
	"github.com/mmynk/sharemates/internal/metrics"
	"github.com/mmynk/sharemates/internal/middleware"
	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/money"
	"github.com/mmynk/sharemates/internal/storage"
)

// HouseholdService implements the Connect HouseholdService.
// It keeps one ledger per household in memory, loaded from storage on first use.
type HouseholdService struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics

	mu      sync.RWMutex
	ledgers map[string]*ledger.Ledger
	loads   singleflight.Group
}

// Option configures a HouseholdService.
type Option func(*HouseholdService)

// WithPublisher sends ledger events to p.
func WithPublisher(p events.Publisher) Option {
	return func(s *HouseholdService) { s.publisher = p }
}

// WithMetrics records business counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *HouseholdService) { s.metrics = m }
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(store storage.Store, opts ...Option) *HouseholdService {
	s := &HouseholdService{
		store:     store,
		publisher: events.Nop{},
		ledgers:   make(map[string]*ledger.Ledger),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ledgerFor returns the household's ledger, loading it once from storage.
// householdID falls back to the caller's household.
func (s *HouseholdService) ledgerFor(ctx context.Context, householdID string) (*ledger.Ledger, error) {
	if householdID == "" {
		householdID = middleware.GetHouseholdID(ctx)
	}
	if householdID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("household_id required"))
	}
	if caller := middleware.GetHouseholdID(ctx); caller != "" && caller != householdID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("not a member of household %s", householdID))
	}

	s.mu.RLock()
	l, ok := s.ledgers[householdID]
	s.mu.RUnlock()
	if ok {
		return l, nil
	}

	v, err, _ := s.loads.Do(householdID, func() (any, error) {
		// Shared by every waiter, so one caller's cancellation must not fail the rest.
		ctx := context.WithoutCancel(ctx)

		s.mu.RLock()
		l, ok := s.ledgers[householdID]
		s.mu.RUnlock()
		if ok {
			return l, nil
		}

		if _, err := s.store.GetHousehold(ctx, householdID); err != nil {
			return nil, err
		}
		l, err := ledger.Load(ctx, householdID, s.store)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.ledgers[householdID] = l
		n := len(s.ledgers)
		s.mu.Unlock()
		if s.metrics != nil {
			s.metrics.LedgersLoaded.Set(float64(n))
		}
		slog.Info("Ledger loaded",
			"household_id", householdID,
			"participants", l.Participants().Len(),
			"expenses", l.Len(),
		)
		return l, nil
	})
	if err != nil {
		slog.Error("Failed to load ledger", "household_id", householdID, "error", err)
		return nil, toConnectError(err)
	}
	return v.(*ledger.Ledger), nil
}

// callerOr returns id, or the authenticated caller when id is empty.
func callerOr(ctx context.Context, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if caller := middleware.GetParticipantID(ctx); caller != "" {
		return caller, nil
	}
	return "", connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("participant_id required"))
}

func (s *HouseholdService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish event", "kind", e.Kind, "household_id", e.HouseholdID, "error", err)
	}
}

// toConnectError maps ledger and storage failures onto Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}

	switch {
	case errors.Is(err, ledger.ErrParticipantNotFound),
		errors.Is(err, ledger.ErrExpenseNotFound),
		errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ledger.ErrDuplicateParticipant):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, ledger.ErrAlreadySettled),
		errors.Is(err, ledger.ErrShareAlreadySettled):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrEmptySplitSet),
		errors.Is(err, ledger.ErrUnknownParticipant),
		errors.Is(err, ledger.ErrInvalidCategory),
		errors.Is(err, ledger.ErrInvalidParticipant),
		errors.Is(err, ledger.ErrNotInSplit),
		errors.Is(err, money.ErrInvalidAmount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toHousehold(h *models.Household) *Household {
	return &Household{ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt}
}

func toParticipant(p models.Participant) *Participant {
	return &Participant{ID: p.ID, DisplayName: p.DisplayName, CreatedAt: p.CreatedAt}
}

func toExpense(e models.Expense) *Expense {
	return &Expense{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		Amount:        e.Amount,
		AmountDisplay: money.Format(e.Amount),
		PaidBy:        e.PaidBy,
		SplitAmong:    e.SplitAmong,
		Category:      e.Category.String(),
		Status:        e.Status.String(),
		SettledShares: e.SettledShares,
		CreatedAt:     e.CreatedAt,
	}
}
