package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// ServiceName is the fully-qualified name of the household service.
const ServiceName = "sharemates.v1.HouseholdService"

// Procedure paths, as Connect expects them on the wire.
const (
	CreateHouseholdProcedure      = "/" + ServiceName + "/CreateHousehold"
	ListHouseholdsProcedure       = "/" + ServiceName + "/ListHouseholds"
	RegisterParticipantProcedure  = "/" + ServiceName + "/RegisterParticipant"
	RenameParticipantProcedure    = "/" + ServiceName + "/RenameParticipant"
	ListParticipantsProcedure     = "/" + ServiceName + "/ListParticipants"
	AddExpenseProcedure           = "/" + ServiceName + "/AddExpense"
	GetExpenseProcedure           = "/" + ServiceName + "/GetExpense"
	GetSplitProcedure             = "/" + ServiceName + "/GetSplit"
	SettleExpenseProcedure        = "/" + ServiceName + "/SettleExpense"
	SettleShareProcedure          = "/" + ServiceName + "/SettleShare"
	ListExpensesProcedure         = "/" + ServiceName + "/ListExpenses"
	GetBalanceProcedure           = "/" + ServiceName + "/GetBalance"
	GetHouseholdBalancesProcedure = "/" + ServiceName + "/GetHouseholdBalances"
)

func unary[Req, Res any](procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error), opts []connect.HandlerOption) *connect.Handler {
	return connect.NewUnaryHandler(procedure, fn, opts...)
}

// NewHouseholdServiceHandler builds an HTTP handler for svc. It returns the
// path on which to mount the handler and the handler itself.
func NewHouseholdServiceHandler(svc *HouseholdService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	handlers := map[string]*connect.Handler{
		CreateHouseholdProcedure:      unary(CreateHouseholdProcedure, svc.CreateHousehold, opts),
		ListHouseholdsProcedure:       unary(ListHouseholdsProcedure, svc.ListHouseholds, opts),
		RegisterParticipantProcedure:  unary(RegisterParticipantProcedure, svc.RegisterParticipant, opts),
		RenameParticipantProcedure:    unary(RenameParticipantProcedure, svc.RenameParticipant, opts),
		ListParticipantsProcedure:     unary(ListParticipantsProcedure, svc.ListParticipants, opts),
		AddExpenseProcedure:           unary(AddExpenseProcedure, svc.AddExpense, opts),
		GetExpenseProcedure:           unary(GetExpenseProcedure, svc.GetExpense, opts),
		GetSplitProcedure:             unary(GetSplitProcedure, svc.GetSplit, opts),
		SettleExpenseProcedure:        unary(SettleExpenseProcedure, svc.SettleExpense, opts),
		SettleShareProcedure:          unary(SettleShareProcedure, svc.SettleShare, opts),
		ListExpensesProcedure:         unary(ListExpensesProcedure, svc.ListExpenses, opts),
		GetBalanceProcedure:           unary(GetBalanceProcedure, svc.GetBalance, opts),
		GetHouseholdBalancesProcedure: unary(GetHouseholdBalancesProcedure, svc.GetHouseholdBalances, opts),
	}

	return "/" + ServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
