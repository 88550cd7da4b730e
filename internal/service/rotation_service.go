package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/bucketwise/internal/events"
	"github.com/mmynk/bucketwise/internal/rotation"
	pb "github.com/mmynk/bucketwise/pkg/proto"
	"github.com/mmynk/bucketwise/pkg/proto/protoconnect"
)

var errResetNotConfirmed = errors.New("reset must be confirmed: history and exemptions cannot be restored")

// RotationService implements the Connect RotationService
type RotationService struct {
	protoconnect.UnimplementedRotationServiceHandler
	*writer
	ledger *rotation.Ledger
}

// GetDashboard returns who pays next, the exempted members and the most
// recent payments.
func (s *RotationService) GetDashboard(ctx context.Context, req *connect.Request[pb.GetDashboardRequest]) (*connect.Response[pb.GetDashboardResponse], error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Error("GetDashboard: failed to load state", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	payments := state.History.Payments()
	if len(payments) > recentPayments {
		payments = payments[:recentPayments]
	}

	resp := &pb.GetDashboardResponse{
		Exempted:       toProtoMembers(rotation.ExemptedMembers(state.Roster)),
		BucketCost:     s.ledger.BucketCost().String(),
		ActiveMembers:  int32(len(state.Roster.Active())),
		RecentPayments: toProtoPayments(payments),
	}
	if next, ok := rotation.ResolveNextPayer(state.Roster, state.History); ok {
		resp.NextPayer = toProtoMember(next)
	}
	if last, ok := state.History.Last(); ok {
		resp.LastPayment = toProtoPayment(last)
	}

	s.observe(state.Roster)

	return connect.NewResponse(resp), nil
}

// RecordPayment records a bucket purchase and applies the exemption rules.
func (s *RotationService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	memberID := strings.TrimSpace(req.Msg.MemberId)
	s.logger.Info("RecordPayment request received",
		"member_id", memberID,
		"is_override", req.Msg.IsOverride,
	)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id is required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Error("RecordPayment: failed to load state", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	outcome, err := s.ledger.RecordPayment(state, memberID, req.Msg.IsOverride)
	if errors.Is(err, rotation.ErrMemberNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		s.logger.Error("RecordPayment: failed to apply payment", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if err := s.store.ApplyPayment(ctx, outcome.ChangedMembers(), outcome.Payment); err != nil {
		s.logger.Error("RecordPayment: failed to store payment", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Payment recorded",
		"payment_id", outcome.Payment.ID,
		"member_id", outcome.Payment.MemberID,
		"kind", outcome.Kind,
		"granted", outcome.Granted,
		"consumed", len(outcome.Consumed),
	)

	s.metrics.PaymentRecorded(string(outcome.Kind), outcome.Granted, len(outcome.Consumed))
	s.observe(outcome.State.Roster)

	resp := &pb.RecordPaymentResponse{
		Payment:  toProtoPayment(outcome.Payment),
		Kind:     string(outcome.Kind),
		Granted:  outcome.Granted,
		Consumed: outcome.Consumed,
	}
	event := events.PaymentRecorded{
		PaymentID:  outcome.Payment.ID,
		MemberID:   outcome.Payment.MemberID,
		MemberName: outcome.Payment.MemberName,
		Amount:     outcome.Payment.Amount.String(),
		Timestamp:  outcome.Payment.Timestamp,
		IsOverride: outcome.Payment.IsOverride,
		Kind:       string(outcome.Kind),
		Granted:    outcome.Granted,
		Consumed:   outcome.Consumed,
	}
	if next, ok := rotation.ResolveNextPayer(outcome.State.Roster, outcome.State.History); ok {
		resp.NextPayer = toProtoMember(next)
		event.NextPayerID = next.ID
	}
	s.publish(ctx, events.RKPaymentRecorded, event)

	return connect.NewResponse(resp), nil
}

// ListPayments returns the payment history, newest first.
func (s *RotationService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	payments, err := s.store.ListPayments(ctx, int(req.Msg.Limit))
	if err != nil {
		s.logger.Error("ListPayments failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&pb.ListPaymentsResponse{Payments: toProtoPayments(payments)}), nil
}

// GetTally returns per-member payment totals.
func (s *RotationService) GetTally(ctx context.Context, req *connect.Request[pb.GetTallyRequest]) (*connect.Response[pb.GetTallyResponse], error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Error("GetTally: failed to load state", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	tallies := rotation.Tally(state.Roster, state.History)
	resp := &pb.GetTallyResponse{
		Tallies:        make([]*pb.MemberTally, len(tallies)),
		TotalCollected: rotation.TotalCollected(state.History).String(),
	}
	for i, t := range tallies {
		resp.Tallies[i] = &pb.MemberTally{
			MemberId:   t.MemberID,
			MemberName: t.MemberName,
			Active:     t.Active,
			Payments:   int32(t.Payments),
			Overrides:  int32(t.Overrides),
			TotalPaid:  t.TotalPaid.String(),
			LastPaidAt: t.LastPaidAt,
		}
	}
	return connect.NewResponse(resp), nil
}

// ResetCycle clears the history and every exemption. The request must set confirm.
func (s *RotationService) ResetCycle(ctx context.Context, req *connect.Request[pb.ResetCycleRequest]) (*connect.Response[pb.ResetCycleResponse], error) {
	if !req.Msg.Confirm {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errResetNotConfirmed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Error("ResetCycle: failed to load state", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	reset := rotation.ResetCycle(state)
	if err := s.store.ResetCycle(ctx, reset.Roster); err != nil {
		s.logger.Error("ResetCycle failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Cycle reset", "payments_cleared", state.History.Len())

	s.metrics.CycleReset()
	s.observe(reset.Roster)
	s.publish(ctx, events.RKCycleReset, events.CycleReset{Timestamp: time.Now().UnixMilli()})

	return connect.NewResponse(&pb.ResetCycleResponse{}), nil
}
