package calculator

import (
	"cmp"
	"fmt"
	"slices"
)

// ExpenseForBalance represents an unsettled expense with the minimal
// information needed for balance calculations.
type ExpenseForBalance struct {
	Amount     int64
	PaidBy     string
	SplitAmong []string
	Repaid     []string // members whose share is already paid back
}

// MemberBalance represents the outstanding position of one household member.
type MemberBalance struct {
	Participant string
	OwedTo      int64 // What others still owe this member
	OwedBy      int64 // What this member still owes others
	Net         int64 // OwedTo - OwedBy. Positive = owed money, Negative = owes money
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount int64
}

// Outstanding lists what each member of an expense still owes its payer.
// The payer's own share and repaid shares are not debts.
func Outstanding(e ExpenseForBalance) ([]DebtEdge, error) {
	shares, err := EqualSplit(e.Amount, e.SplitAmong)
	if err != nil {
		return nil, err
	}

	var debts []DebtEdge
	for _, member := range e.SplitAmong {
		if member == e.PaidBy || slices.Contains(e.Repaid, member) {
			continue
		}
		if shares[member] == 0 {
			continue
		}
		debts = append(debts, DebtEdge{From: member, To: e.PaidBy, Amount: shares[member]})
		// guard against duplicate members contributing twice
		shares[member] = 0
	}
	return debts, nil
}

// CalculateHouseholdBalances aggregates outstanding debts across expenses.
// It returns one balance per member (sorted by participant) and a simplified
// list of payments that would clear every balance.
//
// Algorithm:
// - For each expense: each unpaid member share is a debt from member to payer
// - Aggregate: net = owed_to - owed_by
// - Debt list: greedy matching of largest debtor with largest creditor
func CalculateHouseholdBalances(members []string, expenses []ExpenseForBalance) ([]MemberBalance, []DebtEdge, error) {
	balances := make(map[string]*MemberBalance, len(members))
	get := func(p string) *MemberBalance {
		if _, exists := balances[p]; !exists {
			balances[p] = &MemberBalance{Participant: p}
		}
		return balances[p]
	}
	for _, m := range members {
		get(m)
	}

	for i, e := range expenses {
		debts, err := Outstanding(e)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to split expense %d: %w", i, err)
		}
		for _, d := range debts {
			get(d.From).OwedBy += d.Amount
			get(d.To).OwedTo += d.Amount
		}
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.Net = bal.OwedTo - bal.OwedBy
		memberBalances = append(memberBalances, *bal)
	}
	slices.SortFunc(memberBalances, func(a, b MemberBalance) int {
		return cmp.Compare(a.Participant, b.Participant)
	})

	return memberBalances, SimplifyDebts(memberBalances), nil
}

// SimplifyDebts matches debtors with creditors to minimize transactions.
// Ties are broken by participant so the result is deterministic.
func SimplifyDebts(balances []MemberBalance) []DebtEdge {
	type position struct {
		who    string
		amount int64
	}
	var creditors, debtors []position
	for _, bal := range balances {
		if bal.Net > 0 {
			creditors = append(creditors, position{bal.Participant, bal.Net})
		} else if bal.Net < 0 {
			debtors = append(debtors, position{bal.Participant, -bal.Net})
		}
	}
	largestFirst := func(a, b position) int {
		if c := cmp.Compare(b.amount, a.amount); c != 0 {
			return c
		}
		return cmp.Compare(a.who, b.who)
	}
	slices.SortFunc(creditors, largestFirst)
	slices.SortFunc(debtors, largestFirst)

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].amount, creditors[j].amount)
		edges = append(edges, DebtEdge{
			From:   debtors[i].who,
			To:     creditors[j].who,
			Amount: amount,
		})

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		// Move to next debtor/creditor if fully settled
		if debtors[i].amount == 0 {
			i++
		}
		if creditors[j].amount == 0 {
			j++
		}
	}

	return edges
}
