package calculator

import "testing"

func TestOutstanding(t *testing.T) {
	tests := []struct {
		name    string
		expense ExpenseForBalance
		want    []DebtEdge
	}{
		{
			name:    "payer share is not a debt",
			expense: ExpenseForBalance{Amount: 1000, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}},
			want:    []DebtEdge{{From: "B", To: "A", Amount: 333}, {From: "C", To: "A", Amount: 333}},
		},
		{
			name:    "payer outside the split is owed everything",
			expense: ExpenseForBalance{Amount: 1000, PaidBy: "D", SplitAmong: []string{"A", "B", "C"}},
			want: []DebtEdge{
				{From: "A", To: "D", Amount: 334},
				{From: "B", To: "D", Amount: 333},
				{From: "C", To: "D", Amount: 333},
			},
		},
		{
			name:    "repaid shares drop out",
			expense: ExpenseForBalance{Amount: 1000, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}, Repaid: []string{"C"}},
			want:    []DebtEdge{{From: "B", To: "A", Amount: 333}},
		},
		{
			name:    "payer alone owes nobody",
			expense: ExpenseForBalance{Amount: 500, PaidBy: "A", SplitAmong: []string{"A"}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Outstanding(tt.expense)
			if err != nil {
				t.Fatalf("Outstanding() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Outstanding() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("debt[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCalculateHouseholdBalances(t *testing.T) {
	members := []string{"A", "B", "C", "D"}
	expenses := []ExpenseForBalance{
		{Amount: 1000, PaidBy: "A", SplitAmong: []string{"A", "B", "C"}},
		{Amount: 400, PaidBy: "B", SplitAmong: []string{"A", "B", "C", "D"}},
	}

	balances, debts, err := CalculateHouseholdBalances(members, expenses)
	if err != nil {
		t.Fatalf("CalculateHouseholdBalances failed: %v", err)
	}

	want := map[string]MemberBalance{
		"A": {Participant: "A", OwedTo: 666, OwedBy: 100, Net: 566},
		"B": {Participant: "B", OwedTo: 300, OwedBy: 333, Net: -33},
		"C": {Participant: "C", OwedTo: 0, OwedBy: 433, Net: -433},
		"D": {Participant: "D", OwedTo: 0, OwedBy: 100, Net: -100},
	}
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d", len(balances), len(want))
	}
	var total int64
	for i, bal := range balances {
		if bal != want[bal.Participant] {
			t.Errorf("balance %s = %+v, want %+v", bal.Participant, bal, want[bal.Participant])
		}
		if i > 0 && balances[i-1].Participant > bal.Participant {
			t.Error("balances not sorted by participant")
		}
		total += bal.Net
	}
	if total != 0 {
		t.Errorf("net balances sum to %d, want 0", total)
	}

	// Simplified debts must clear every balance
	net := make(map[string]int64)
	for _, d := range debts {
		if d.Amount <= 0 {
			t.Errorf("non-positive debt edge %+v", d)
		}
		net[d.From] -= d.Amount
		net[d.To] += d.Amount
	}
	for p, bal := range want {
		if net[p] != bal.Net {
			t.Errorf("debts give %s a net of %d, want %d", p, net[p], bal.Net)
		}
	}
	if len(debts) > 3 {
		t.Errorf("expected at most n-1 transfers, got %d", len(debts))
	}
}

func TestCalculateHouseholdBalances_Empty(t *testing.T) {
	balances, debts, err := CalculateHouseholdBalances([]string{"A", "B"}, nil)
	if err != nil {
		t.Fatalf("CalculateHouseholdBalances failed: %v", err)
	}
	if len(balances) != 2 {
		t.Errorf("expected zero balances for every member, got %v", balances)
	}
	if len(debts) != 0 {
		t.Errorf("expected no debts, got %v", debts)
	}
}

func TestCalculateHouseholdBalances_InvalidExpense(t *testing.T) {
	_, _, err := CalculateHouseholdBalances(nil, []ExpenseForBalance{{Amount: 100, PaidBy: "A"}})
	if err == nil {
		t.Error("expected error for expense without split members")
	}
}
