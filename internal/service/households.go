package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/sharemates/internal/events"
	"github.com/mmynk/sharemates/internal/middleware"
	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/storage"
)

// CreateHousehold creates a new household with an empty ledger.
func (s *HouseholdService) CreateHousehold(ctx context.Context, req *connect.Request[CreateHouseholdRequest]) (*connect.Response[CreateHouseholdResponse], error) {
	slog.Info("CreateHousehold request received", "name", req.Msg.Name)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	if req.Msg.ID != "" {
		_, err := s.store.GetHousehold(ctx, req.Msg.ID)
		if err == nil {
			return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("household %s already exists", req.Msg.ID))
		}
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Error("CreateHousehold failed", "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	h := &models.Household{ID: req.Msg.ID, Name: name}
	if err := s.store.CreateHousehold(ctx, h); err != nil {
		slog.Error("CreateHousehold failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Household created", "household_id", h.ID)

	return connect.NewResponse(&CreateHouseholdResponse{Household: toHousehold(h)}), nil
}

// ListHouseholds retrieves all households, or only the caller's own when the
// call carries an identity.
func (s *HouseholdService) ListHouseholds(ctx context.Context, req *connect.Request[ListHouseholdsRequest]) (*connect.Response[ListHouseholdsResponse], error) {
	slog.Info("ListHouseholds request received")

	households, err := s.store.ListHouseholds(ctx)
	if err != nil {
		slog.Error("ListHouseholds failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	caller := middleware.GetHouseholdID(ctx)
	out := make([]*Household, 0, len(households))
	for _, h := range households {
		if caller != "" && h.ID != caller {
			continue
		}
		out = append(out, toHousehold(h))
	}

	slog.Info("ListHouseholds successful", "count", len(out))

	return connect.NewResponse(&ListHouseholdsResponse{Households: out}), nil
}

// RegisterParticipant adds a member to a household.
func (s *HouseholdService) RegisterParticipant(ctx context.Context, req *connect.Request[RegisterParticipantRequest]) (*connect.Response[RegisterParticipantResponse], error) {
	slog.Info("RegisterParticipant request received",
		"household_id", req.Msg.HouseholdID,
		"participant_id", req.Msg.ParticipantID,
	)

	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	p, err := l.Participants().Register(ctx, req.Msg.ParticipantID, req.Msg.DisplayName)
	if err != nil {
		slog.Error("RegisterParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, toConnectError(err)
	}

	e := events.New(events.ParticipantRegistered, l.HouseholdID())
	e.ParticipantID = p.ID
	s.publish(ctx, e)

	slog.Info("Participant registered", "household_id", l.HouseholdID(), "participant_id", p.ID)

	return connect.NewResponse(&RegisterParticipantResponse{Participant: toParticipant(p)}), nil
}

// RenameParticipant changes a member's display name.
func (s *HouseholdService) RenameParticipant(ctx context.Context, req *connect.Request[RenameParticipantRequest]) (*connect.Response[RenameParticipantResponse], error) {
	slog.Info("RenameParticipant request received",
		"household_id", req.Msg.HouseholdID,
		"participant_id", req.Msg.ParticipantID,
	)

	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	p, err := l.Participants().Rename(ctx, req.Msg.ParticipantID, req.Msg.DisplayName)
	if err != nil {
		slog.Error("RenameParticipant failed", "participant_id", req.Msg.ParticipantID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&RenameParticipantResponse{Participant: toParticipant(p)}), nil
}

// ListParticipants returns a household's members in registration order.
func (s *HouseholdService) ListParticipants(ctx context.Context, req *connect.Request[ListParticipantsRequest]) (*connect.Response[ListParticipantsResponse], error) {
	l, err := s.ledgerFor(ctx, req.Msg.HouseholdID)
	if err != nil {
		return nil, err
	}

	all := l.Participants().All()
	out := make([]*Participant, len(all))
	for i, p := range all {
		out[i] = toParticipant(p)
	}

	return connect.NewResponse(&ListParticipantsResponse{Participants: out}), nil
}
