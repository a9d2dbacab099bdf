package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mmynk/sharemates/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// failingStore rejects every write once fail is set.
type failingStore struct {
	fail    bool
	writes  int
	updated []models.Expense
}

func (s *failingStore) check() error {
	if s.fail {
		return errStoreDown
	}
	s.writes++
	return nil
}

func (s *failingStore) CreateParticipant(context.Context, string, *models.Participant) error {
	return s.check()
}

func (s *failingStore) UpdateParticipant(context.Context, string, *models.Participant) error {
	return s.check()
}

func (s *failingStore) CreateExpense(context.Context, string, *models.Expense) error {
	return s.check()
}

func (s *failingStore) UpdateExpense(_ context.Context, _ string, e *models.Expense) error {
	if err := s.check(); err != nil {
		return err
	}
	s.updated = append(s.updated, e.Clone())
	return nil
}

// newTestLedger returns a ledger with participants A, B and C and
// deterministic IDs and timestamps.
func newTestLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()

	seq := 0
	base := []Option{
		WithClock(func() time.Time { return time.Unix(1705276800, 0) }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("exp-%d", seq)
		}),
	}
	l := New("house-1", append(base, opts...)...)

	ctx := context.Background()
	for _, p := range []struct{ id, name string }{
		{"A", "Arjun"},
		{"B", "Priya"},
		{"C", "Rahul"},
	} {
		if _, err := l.Participants().Register(ctx, p.id, p.name); err != nil {
			t.Fatalf("Register(%s) failed: %v", p.id, err)
		}
	}
	return l
}

func mustAdd(t *testing.T, l *Ledger, in NewExpense) models.Expense {
	t.Helper()
	e, err := l.AddExpense(context.Background(), in)
	if err != nil {
		t.Fatalf("AddExpense(%q) failed: %v", in.Title, err)
	}
	return e
}
