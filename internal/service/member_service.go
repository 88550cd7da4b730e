package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/bucketwise/internal/events"
	"github.com/mmynk/bucketwise/internal/models"
	"github.com/mmynk/bucketwise/internal/storage"
	pb "github.com/mmynk/bucketwise/pkg/proto"
	"github.com/mmynk/bucketwise/pkg/proto/protoconnect"
)

// MemberService implements the Connect MemberService
type MemberService struct {
	protoconnect.UnimplementedMemberServiceHandler
	*writer
}

// AddMember appends a member to the end of the rotation.
func (s *MemberService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	s.logger.Info("AddMember request received", "name", name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.store.CountActiveMembers(ctx)
	if err != nil {
		s.logger.Error("AddMember: failed to count members", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	member := models.NewMember(name, strings.TrimSpace(req.Msg.Phone), count)
	if err := s.store.CreateMember(ctx, member); err != nil {
		s.logger.Error("AddMember failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Member added", "member_id", member.ID, "order", member.Order)
	if state, err := s.store.LoadState(ctx); err == nil {
		s.observe(state.Roster)
	}
	s.publish(ctx, events.RKMemberAdded, events.MemberChanged{MemberID: member.ID, Name: member.Name})

	return connect.NewResponse(&pb.AddMemberResponse{Member: toProtoMember(*member)}), nil
}

// RemoveMember takes a member out of the rotation. Their payments stay in the history.
func (s *MemberService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	memberID := strings.TrimSpace(req.Msg.MemberId)
	s.logger.Info("RemoveMember request received", "member_id", memberID)
	if memberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id is required"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeactivateMember(ctx, memberID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s not found", memberID))
		}
		s.logger.Error("RemoveMember failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Warn("RemoveMember: failed to refresh roster gauges", "error", err)
	} else {
		s.observe(state.Roster)
	}

	var name string
	if m, ok := state.Roster.Find(memberID); ok {
		name = m.Name
	}
	s.publish(ctx, events.RKMemberRemoved, events.MemberChanged{MemberID: memberID, Name: name})

	return connect.NewResponse(&pb.RemoveMemberResponse{}), nil
}

// ListMembers returns the roster in rotation order.
func (s *MemberService) ListMembers(ctx context.Context, req *connect.Request[pb.ListMembersRequest]) (*connect.Response[pb.ListMembersResponse], error) {
	state, err := s.store.LoadState(ctx)
	if err != nil {
		s.logger.Error("ListMembers failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	members := state.Roster.Active()
	if req.Msg.IncludeInactive {
		members = state.Roster.Clone()
	}
	sortByOrder(members)

	return connect.NewResponse(&pb.ListMembersResponse{Members: toProtoMembers(members)}), nil
}
