package service

import (
	"context"

	"connectrpc.com/connect"
)

// HouseholdServiceClient calls a remote HouseholdService over Connect.
type HouseholdServiceClient struct {
	createHousehold      *connect.Client[CreateHouseholdRequest, CreateHouseholdResponse]
	listHouseholds       *connect.Client[ListHouseholdsRequest, ListHouseholdsResponse]
	registerParticipant  *connect.Client[RegisterParticipantRequest, RegisterParticipantResponse]
	renameParticipant    *connect.Client[RenameParticipantRequest, RenameParticipantResponse]
	listParticipants     *connect.Client[ListParticipantsRequest, ListParticipantsResponse]
	addExpense           *connect.Client[AddExpenseRequest, AddExpenseResponse]
	getExpense           *connect.Client[GetExpenseRequest, GetExpenseResponse]
	getSplit             *connect.Client[GetSplitRequest, GetSplitResponse]
	settleExpense        *connect.Client[SettleExpenseRequest, SettleExpenseResponse]
	settleShare          *connect.Client[SettleShareRequest, SettleShareResponse]
	listExpenses         *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getBalance           *connect.Client[GetBalanceRequest, GetBalanceResponse]
	getHouseholdBalances *connect.Client[GetHouseholdBalancesRequest, GetHouseholdBalancesResponse]
}

// NewHouseholdServiceClient constructs a client for the service at baseURL
// (for example, http://localhost:8080).
func NewHouseholdServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *HouseholdServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &HouseholdServiceClient{
		createHousehold:      connect.NewClient[CreateHouseholdRequest, CreateHouseholdResponse](httpClient, baseURL+CreateHouseholdProcedure, opts...),
		listHouseholds:       connect.NewClient[ListHouseholdsRequest, ListHouseholdsResponse](httpClient, baseURL+ListHouseholdsProcedure, opts...),
		registerParticipant:  connect.NewClient[RegisterParticipantRequest, RegisterParticipantResponse](httpClient, baseURL+RegisterParticipantProcedure, opts...),
		renameParticipant:    connect.NewClient[RenameParticipantRequest, RenameParticipantResponse](httpClient, baseURL+RenameParticipantProcedure, opts...),
		listParticipants:     connect.NewClient[ListParticipantsRequest, ListParticipantsResponse](httpClient, baseURL+ListParticipantsProcedure, opts...),
		addExpense:           connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+AddExpenseProcedure, opts...),
		getExpense:           connect.NewClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL+GetExpenseProcedure, opts...),
		getSplit:             connect.NewClient[GetSplitRequest, GetSplitResponse](httpClient, baseURL+GetSplitProcedure, opts...),
		settleExpense:        connect.NewClient[SettleExpenseRequest, SettleExpenseResponse](httpClient, baseURL+SettleExpenseProcedure, opts...),
		settleShare:          connect.NewClient[SettleShareRequest, SettleShareResponse](httpClient, baseURL+SettleShareProcedure, opts...),
		listExpenses:         connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ListExpensesProcedure, opts...),
		getBalance:           connect.NewClient[GetBalanceRequest, GetBalanceResponse](httpClient, baseURL+GetBalanceProcedure, opts...),
		getHouseholdBalances: connect.NewClient[GetHouseholdBalancesRequest, GetHouseholdBalancesResponse](httpClient, baseURL+GetHouseholdBalancesProcedure, opts...),
	}
}

func (c *HouseholdServiceClient) CreateHousehold(ctx context.Context, req *connect.Request[CreateHouseholdRequest]) (*connect.Response[CreateHouseholdResponse], error) {
	return c.createHousehold.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListHouseholds(ctx context.Context, req *connect.Request[ListHouseholdsRequest]) (*connect.Response[ListHouseholdsResponse], error) {
	return c.listHouseholds.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) RegisterParticipant(ctx context.Context, req *connect.Request[RegisterParticipantRequest]) (*connect.Response[RegisterParticipantResponse], error) {
	return c.registerParticipant.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) RenameParticipant(ctx context.Context, req *connect.Request[RenameParticipantRequest]) (*connect.Response[RenameParticipantResponse], error) {
	return c.renameParticipant.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListParticipants(ctx context.Context, req *connect.Request[ListParticipantsRequest]) (*connect.Response[ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) GetSplit(ctx context.Context, req *connect.Request[GetSplitRequest]) (*connect.Response[GetSplitResponse], error) {
	return c.getSplit.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) SettleExpense(ctx context.Context, req *connect.Request[SettleExpenseRequest]) (*connect.Response[SettleExpenseResponse], error) {
	return c.settleExpense.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) SettleShare(ctx context.Context, req *connect.Request[SettleShareRequest]) (*connect.Response[SettleShareResponse], error) {
	return c.settleShare.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) GetBalance(ctx context.Context, req *connect.Request[GetBalanceRequest]) (*connect.Response[GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

func (c *HouseholdServiceClient) GetHouseholdBalances(ctx context.Context, req *connect.Request[GetHouseholdBalancesRequest]) (*connect.Response[GetHouseholdBalancesResponse], error) {
	return c.getHouseholdBalances.CallUnary(ctx, req)
}
