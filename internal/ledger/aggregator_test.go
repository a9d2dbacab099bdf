package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/sharemates/internal/models"
)

func TestAggregator_GroceriesScenario(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	agg := NewAggregator(l)

	e := mustAdd(t, l, NewExpense{Title: "Groceries", Amount: 1000, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}})

	if got, _ := agg.AmountOwedBy("B"); got != 333 {
		t.Errorf("AmountOwedBy(B) = %d, want 333", got)
	}
	if got, _ := agg.AmountOwedTo("A"); got != 666 {
		t.Errorf("AmountOwedTo(A) = %d, want 666", got)
	}
	if got, _ := agg.AmountOwedBy("A"); got != 0 {
		t.Errorf("AmountOwedBy(A) = %d, want 0 (payer does not owe themselves)", got)
	}
	if got, _ := agg.NetPosition("C"); got != -333 {
		t.Errorf("NetPosition(C) = %d, want -333", got)
	}

	if _, err := l.Settle(ctx, e.ID); err != nil {
		t.Fatalf("Settle failed: %v", err)
	}

	for _, p := range []string{"A", "B", "C"} {
		b, err := agg.Summary(p)
		if err != nil {
			t.Fatalf("Summary(%s) failed: %v", p, err)
		}
		if b.OwedBy != 0 || b.OwedTo != 0 || b.Net != 0 {
			t.Errorf("Summary(%s) after settle = %+v, want zeros", p, b)
		}
	}
}

func TestAggregator_PayerOutsideSplit(t *testing.T) {
	l := newTestLedger(t)
	agg := NewAggregator(l)
	mustAdd(t, l, NewExpense{Amount: 1000, PaidBy: "C", SplitAmong: []string{"A", "B"}})

	if got, _ := agg.AmountOwedTo("C"); got != 1000 {
		t.Errorf("AmountOwedTo(C) = %d, want 1000", got)
	}
	if got, _ := agg.AmountOwedBy("A"); got != 500 {
		t.Errorf("AmountOwedBy(A) = %d, want 500", got)
	}
}

func TestAggregator_PartialSettlement(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	agg := NewAggregator(l)
	e := mustAdd(t, l, NewExpense{Amount: 1000, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}})

	if _, err := l.SettleShare(ctx, e.ID, "B"); err != nil {
		t.Fatal(err)
	}

	if got, _ := agg.AmountOwedBy("B"); got != 0 {
		t.Errorf("AmountOwedBy(B) = %d, want 0 after repaying", got)
	}
	if got, _ := agg.AmountOwedBy("C"); got != 333 {
		t.Errorf("AmountOwedBy(C) = %d, want 333", got)
	}
	if got, _ := agg.AmountOwedTo("A"); got != 333 {
		t.Errorf("AmountOwedTo(A) = %d, want 333", got)
	}
}

func TestAggregator_NetIdentityAndZeroSum(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t)
	if _, err := l.Participants().Register(ctx, "D", "Ananya"); err != nil {
		t.Fatal(err)
	}
	agg := NewAggregator(l)

	mustAdd(t, l, NewExpense{Amount: 10800, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}})
	internet := mustAdd(t, l, NewExpense{Amount: 6700, PaidBy: "B", SplitAmong: []string{"A", "B", "C", "D"}})
	cleaning := mustAdd(t, l, NewExpense{Amount: 3361, PaidBy: "C", SplitAmong: []string{"D", "A", "B", "C"}})
	mustAdd(t, l, NewExpense{Amount: 11650, PaidBy: "D", SplitAmong: []string{"A", "B", "C", "D"}})
	if _, err := l.Settle(ctx, internet.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := l.SettleShare(ctx, cleaning.ID, "D"); err != nil {
		t.Fatal(err)
	}

	var total int64
	for _, p := range []string{"A", "B", "C", "D"} {
		owedBy, err := agg.AmountOwedBy(p)
		if err != nil {
			t.Fatal(err)
		}
		owedTo, _ := agg.AmountOwedTo(p)
		net, _ := agg.NetPosition(p)
		if owedBy-owedTo != -net {
			t.Errorf("%s: owedBy(%d) - owedTo(%d) != -net(%d)", p, owedBy, owedTo, net)
		}
		total += net
	}
	if total != 0 {
		t.Errorf("net positions sum to %d, want 0", total)
	}

	members, debts, err := agg.HouseholdBalances()
	if err != nil {
		t.Fatalf("HouseholdBalances failed: %v", err)
	}
	if len(members) != 4 {
		t.Errorf("expected 4 member balances, got %d", len(members))
	}
	for _, m := range members {
		net, _ := agg.NetPosition(m.Participant)
		if m.Net != net {
			t.Errorf("household net for %s = %d, aggregator says %d", m.Participant, m.Net, net)
		}
	}
	if len(debts) == 0 {
		t.Error("expected simplified debts")
	}
}

func TestAggregator_UnknownParticipant(t *testing.T) {
	agg := NewAggregator(newTestLedger(t))

	if _, err := agg.AmountOwedBy("Z"); !errors.Is(err, ErrParticipantNotFound) {
		t.Errorf("expected ErrParticipantNotFound, got %v", err)
	}
	if got, err := agg.AmountOwedBy("A"); err != nil || got != 0 {
		t.Errorf("AmountOwedBy on empty ledger = %d, %v; want 0, nil", got, err)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	src := &memLoader{
		participants: []*models.Participant{{ID: "A", DisplayName: "Arjun"}, {ID: "B", DisplayName: "Priya"}},
		expenses: []*models.Expense{{
			ID: "e1", Amount: 900, PaidBy: "A", SplitAmong: []string{"A", "B"},
			Category: models.CategoryRent, Status: models.StatusPending,
		}},
	}

	l, err := Load(ctx, "house-1", src)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.Participants().Len() != 2 || l.Len() != 1 {
		t.Fatalf("loaded %d participants and %d expenses", l.Participants().Len(), l.Len())
	}
	if got, _ := NewAggregator(l).AmountOwedBy("B"); got != 450 {
		t.Errorf("AmountOwedBy(B) = %d, want 450", got)
	}

	if _, err := l.Settle(ctx, "e1"); err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	if src.updates != 1 {
		t.Errorf("loaded ledger did not write through: %d updates", src.updates)
	}

	src.failList = true
	if _, err := Load(ctx, "house-1", src); err == nil {
		t.Error("expected Load to surface store errors")
	}
}

type memLoader struct {
	nopStore
	participants []*models.Participant
	expenses     []*models.Expense
	updates      int
	failList     bool
}

func (m *memLoader) UpdateExpense(context.Context, string, *models.Expense) error {
	m.updates++
	return nil
}

func (m *memLoader) ListParticipants(context.Context, string) ([]*models.Participant, error) {
	if m.failList {
		return nil, errStoreDown
	}
	return m.participants, nil
}

func (m *memLoader) ListExpenses(context.Context, string) ([]*models.Expense, error) {
	return m.expenses, nil
}
