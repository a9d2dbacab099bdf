package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/sharemates/internal/events"
	"github.com/mmynk/sharemates/internal/ledger"
	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/money"
)

// AddExpense records a shared expense. The payer defaults to the caller.
func (s *HouseholdService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"household_id", req.Msg.HouseholdID,
		"title", req.Msg.Title,
		"amount", req.Msg.Amount,
		"split_count", len(req.Msg.SplitAmong),
	)

	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	amount, err := money.ParseMinorUnits(req.Msg.Amount)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount %q: %w", req.Msg.Amount, err))
	}
	category, err := models.ParseCategory(req.Msg.Category)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	paidBy, err := callerOr(ctx, req.Msg.PaidBy)
	if err != nil {
		return nil, err
	}

	e, err := l.AddExpense(ctx, ledger.NewExpense{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitAmong:  req.Msg.SplitAmong,
		Category:    category,
	})
	if err != nil {
		slog.Error("AddExpense failed", "household_id", l.HouseholdID(), "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.ExpensesAdded.WithLabelValues(e.Category.String()).Inc()
		s.metrics.AmountAdded.WithLabelValues(e.Category.String()).Add(float64(e.Amount))
	}
	ev := events.New(events.ExpenseAdded, l.HouseholdID())
	ev.ExpenseID = e.ID
	ev.ParticipantID = e.PaidBy
	ev.Amount = e.Amount
	ev.Status = e.Status.String()
	s.publish(ctx, ev)

	slog.Info("Expense added",
		"household_id", l.HouseholdID(),
		"expense_id", e.ID,
		"amount", e.Amount,
		"category", e.Category,
	)

	return connect.NewResponse(&AddExpenseResponse{Expense: toExpense(e)}), nil
}

// GetExpense retrieves one expense.
func (s *HouseholdService) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	e, err := l.Get(req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetExpenseResponse{Expense: toExpense(e)}), nil
}

// GetSplit returns every member's share of an expense, in split order.
func (s *HouseholdService) GetSplit(ctx context.Context, req *connect.Request[GetSplitRequest]) (*connect.Response[GetSplitResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	e, err := l.Get(req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(err)
	}
	shares, err := ledger.Shares(e)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*Share, len(e.SplitAmong))
	for i, p := range e.SplitAmong {
		out[i] = &Share{
			ParticipantID: p,
			Amount:        shares[p],
			Settled:       e.Status == models.StatusSettled || p == e.PaidBy || e.ShareSettled(p),
		}
	}

	return connect.NewResponse(&GetSplitResponse{Shares: out}), nil
}

// SettleExpense marks an expense fully paid back.
func (s *HouseholdService) SettleExpense(ctx context.Context, req *connect.Request[SettleExpenseRequest]) (*connect.Response[SettleExpenseResponse], error) {
	slog.Info("SettleExpense request received",
		"household_id", req.Msg.HouseholdID,
		"expense_id", req.Msg.ExpenseID,
	)

	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	e, err := l.Settle(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("SettleExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.Settlements.WithLabelValues("expense").Inc()
	}
	ev := events.New(events.ExpenseSettled, l.HouseholdID())
	ev.ExpenseID = e.ID
	ev.Status = e.Status.String()
	s.publish(ctx, ev)

	slog.Info("Expense settled", "household_id", l.HouseholdID(), "expense_id", e.ID)

	return connect.NewResponse(&SettleExpenseResponse{Expense: toExpense(e)}), nil
}

// SettleShare records that one member repaid their share. The member defaults
// to the caller.
func (s *HouseholdService) SettleShare(ctx context.Context, req *connect.Request[SettleShareRequest]) (*connect.Response[SettleShareResponse], error) {
	slog.Info("SettleShare request received",
		"household_id", req.Msg.HouseholdID,
		"expense_id", req.Msg.ExpenseID,
		"participant_id", req.Msg.ParticipantID,
	)

	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}
	participantID, err := callerOr(ctx, req.Msg.ParticipantID)
	if err != nil {
		return nil, err
	}

	e, err := l.SettleShare(ctx, req.Msg.ExpenseID, participantID)
	if err != nil {
		slog.Error("SettleShare failed", "expense_id", req.Msg.ExpenseID, "participant_id", participantID, "error", err)
		return nil, toConnectError(err)
	}

	if s.metrics != nil {
		s.metrics.Settlements.WithLabelValues("share").Inc()
	}
	ev := events.New(events.ShareSettled, l.HouseholdID())
	ev.ExpenseID = e.ID
	ev.ParticipantID = participantID
	ev.Status = e.Status.String()
	s.publish(ctx, ev)

	return connect.NewResponse(&SettleShareResponse{Expense: toExpense(e)}), nil
}

// ListExpenses returns expenses matching every provided filter field.
func (s *HouseholdService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	filter := ledger.Filter{Participant: req.Msg.ParticipantID}
	if filter.Status, err = models.ParseStatus(req.Msg.Status); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if req.Msg.Category != "" {
		if filter.Category, err = models.ParseCategory(req.Msg.Category); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
	}

	out := []*Expense{}
	for e := range l.ListExpenses(filter) {
		out = append(out, toExpense(e))
	}

	slog.Debug("ListExpenses successful", "household_id", l.HouseholdID(), "count", len(out))

	return connect.NewResponse(&ListExpensesResponse{Expenses: out}), nil
}
