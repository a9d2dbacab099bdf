package service

// Wire messages of sharemates.v1.HouseholdService. Amounts are minor
// currency units except AddExpenseRequest.Amount, which is the decimal string
// a user typed.

type Household struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type Participant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

type Expense struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Amount        int64    `json:"amount"`
	AmountDisplay string   `json:"amount_display"`
	PaidBy        string   `json:"paid_by"`
	SplitAmong    []string `json:"split_among"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	SettledShares []string `json:"settled_shares,omitempty"`
	CreatedAt     int64    `json:"created_at"`
}

type Share struct {
	ParticipantID string `json:"participant_id"`
	Amount        int64  `json:"amount"`
	Settled       bool   `json:"settled"`
}

type Balance struct {
	ParticipantID string `json:"participant_id"`
	OwedBy        int64  `json:"owed_by"`
	OwedTo        int64  `json:"owed_to"`
	Net           int64  `json:"net"`
}

type DebtEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type CreateHouseholdRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type CreateHouseholdResponse struct {
	Household *Household `json:"household"`
}

type ListHouseholdsRequest struct{}

type ListHouseholdsResponse struct {
	Households []*Household `json:"households"`
}

type RegisterParticipantRequest struct {
	HouseholdID   string `json:"household_id"`
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
}

type RegisterParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RenameParticipantRequest struct {
	HouseholdID   string `json:"household_id"`
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
}

type RenameParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct {
	HouseholdID string `json:"household_id"`
}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type AddExpenseRequest struct {
	HouseholdID string   `json:"household_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Amount      string   `json:"amount"`
	PaidBy      string   `json:"paid_by,omitempty"` // defaults to the caller
	SplitAmong  []string `json:"split_among"`
	Category    string   `json:"category,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	HouseholdID string `json:"household_id"`
	ExpenseID   string `json:"expense_id"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetSplitRequest struct {
	HouseholdID string `json:"household_id"`
	ExpenseID   string `json:"expense_id"`
}

type GetSplitResponse struct {
	Shares []*Share `json:"shares"`
}

type SettleExpenseRequest struct {
	HouseholdID string `json:"household_id"`
	ExpenseID   string `json:"expense_id"`
}

type SettleExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type SettleShareRequest struct {
	HouseholdID   string `json:"household_id"`
	ExpenseID     string `json:"expense_id"`
	ParticipantID string `json:"participant_id,omitempty"` // defaults to the caller
}

type SettleShareResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	HouseholdID   string `json:"household_id"`
	ParticipantID string `json:"participant_id,omitempty"`
	Status        string `json:"status,omitempty"`
	Category      string `json:"category,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GetBalanceRequest struct {
	HouseholdID   string `json:"household_id"`
	ParticipantID string `json:"participant_id,omitempty"` // defaults to the caller
}

type GetBalanceResponse struct {
	Balance *Balance `json:"balance"`
}

type GetHouseholdBalancesRequest struct {
	HouseholdID string `json:"household_id"`
}

type GetHouseholdBalancesResponse struct {
	MemberBalances []*Balance  `json:"member_balances"`
	Debts          []*DebtEdge `json:"debts"`
}
