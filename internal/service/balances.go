package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sharemates/internal/ledger"
)

// GetBalance returns what a participant owes and is owed. The participant
// defaults to the caller.
func (s *HouseholdService) GetBalance(ctx context.Context, req *connect.Request[GetBalanceRequest]) (*connect.Response[GetBalanceResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}
	participantID, err := callerOr(ctx, req.Msg.ParticipantID)
	if err != nil {
		return nil, err
	}

	b, err := ledger.NewAggregator(l).Summary(participantID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetBalanceResponse{Balance: &Balance{
		ParticipantID: b.Participant,
		OwedBy:        b.OwedBy,
		OwedTo:        b.OwedTo,
		Net:           b.Net,
	}}), nil
}

// GetHouseholdBalances calculates every member's balance and the simplified
// payments that would settle the household.
func (s *HouseholdService) GetHouseholdBalances(ctx context.Context, req *connect.Request[GetHouseholdBalancesRequest]) (*connect.Response[GetHouseholdBalancesResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	memberBalances, debtEdges, err := ledger.NewAggregator(l).HouseholdBalances()
	if err != nil {
		slog.Error("GetHouseholdBalances failed - calculation error", "household_id", l.HouseholdID(), "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	balances := make([]*Balance, len(memberBalances))
	for i, bal := range memberBalances {
		balances[i] = &Balance{
			ParticipantID: bal.Participant,
			OwedBy:        bal.OwedBy,
			OwedTo:        bal.OwedTo,
			Net:           bal.Net,
		}
	}

	debts := make([]*DebtEdge, len(debtEdges))
	for i, d := range debtEdges {
		debts[i] = &DebtEdge{From: d.From, To: d.To, Amount: d.Amount}
	}

	slog.Info("GetHouseholdBalances successful",
		"household_id", l.HouseholdID(),
		"members_count", len(balances),
		"debts_count", len(debts),
	)

	return connect.NewResponse(&GetHouseholdBalancesResponse{
		MemberBalances: balances,
		Debts:          debts,
	}), nil
}
