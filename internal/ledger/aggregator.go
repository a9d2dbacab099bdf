package ledger

import (
	"fmt"

	"github.com/mmynk/sharemates/internal/calculator"
	"github.com/mmynk/sharemates/internal/models"
)

// Balance is one participant's outstanding position across unsettled expenses.
type Balance struct {
	Participant string
	OwedBy      int64 // "you owe"
	OwedTo      int64 // "owed to you"
	Net         int64 // OwedTo - OwedBy
}

// Aggregator derives balances from a ledger. It keeps no state of its own:
// every query recomputes from a fresh snapshot.
type Aggregator struct {
	ledger *Ledger
}

// NewAggregator creates an aggregator reading from l.
func NewAggregator(l *Ledger) *Aggregator {
	return &Aggregator{ledger: l}
}

// AmountOwedBy is the total participantID still owes to payers of unsettled
// expenses they share.
func (a *Aggregator) AmountOwedBy(participantID string) (int64, error) {
	b, err := a.Summary(participantID)
	return b.OwedBy, err
}

// AmountOwedTo is the total others still owe participantID for unsettled
// expenses they paid, excluding participantID's own share.
func (a *Aggregator) AmountOwedTo(participantID string) (int64, error) {
	b, err := a.Summary(participantID)
	return b.OwedTo, err
}

// NetPosition is AmountOwedTo - AmountOwedBy.
func (a *Aggregator) NetPosition(participantID string) (int64, error) {
	b, err := a.Summary(participantID)
	return b.Net, err
}

// Summary computes all three figures from a single snapshot.
func (a *Aggregator) Summary(participantID string) (Balance, error) {
	if !a.ledger.registry.Has(participantID) {
		return Balance{}, fmt.Errorf("%w: %s", ErrParticipantNotFound, participantID)
	}

	b := Balance{Participant: participantID}
	for _, e := range a.ledger.snapshot() {
		if e.Status == models.StatusSettled || !e.Involves(participantID) {
			continue
		}
		debts, err := calculator.Outstanding(forBalance(e))
		if err != nil {
			return Balance{}, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		for _, d := range debts {
			if d.From == participantID {
				b.OwedBy += d.Amount
			}
			if d.To == participantID {
				b.OwedTo += d.Amount
			}
		}
	}
	b.Net = b.OwedTo - b.OwedBy
	return b, nil
}

// HouseholdBalances returns every member's balance and a simplified set of
// payments that would settle the household.
func (a *Aggregator) HouseholdBalances() ([]calculator.MemberBalance, []calculator.DebtEdge, error) {
	members := a.ledger.registry.IDs()

	var open []calculator.ExpenseForBalance
	for _, e := range a.ledger.snapshot() {
		if e.Status != models.StatusSettled {
			open = append(open, forBalance(e))
		}
	}
	return calculator.CalculateHouseholdBalances(members, open)
}
