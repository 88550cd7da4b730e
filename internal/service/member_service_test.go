package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/bucketwise/internal/events"
	pb "github.com/mmynk/bucketwise/pkg/proto"
)

func TestAddMember(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	t.Run("assigns order by active count", func(t *testing.T) {
		alice := ts.addMember(t, "  Alice ")
		bob := ts.addMember(t, "Bob")

		if alice.Name != "Alice" {
			t.Errorf("expected trimmed name, got %q", alice.Name)
		}
		if alice.Order != 0 || bob.Order != 1 {
			t.Errorf("expected orders 0 and 1, got %d and %d", alice.Order, bob.Order)
		}
		if !alice.IsActive || alice.Exemptions != 0 {
			t.Errorf("expected an active member with no exemptions, got %+v", alice)
		}
		if alice.Id == "" || alice.Id == bob.Id {
			t.Errorf("expected distinct ids, got %q and %q", alice.Id, bob.Id)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := ts.members.AddMember(context.Background(), connect.NewRequest(&pb.AddMemberRequest{Name: "   "}))
		if connect.CodeOf(err) != connect.CodeInvalidArgument {
			t.Errorf("expected InvalidArgument, got %v", err)
		}
	})

	keys := ts.publisher.published()
	if len(keys) != 2 || keys[0] != events.RKMemberAdded {
		t.Errorf("expected two %s events, got %v", events.RKMemberAdded, keys)
	}
}

func TestRemoveMember(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	ts.pay(t, alice.Id)

	if _, err := ts.members.RemoveMember(context.Background(), connect.NewRequest(&pb.RemoveMemberRequest{MemberId: bob.Id})); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	t.Run("removed member leaves the rotation", func(t *testing.T) {
		dash := ts.dashboard(t)
		if dash.ActiveMembers != 1 {
			t.Errorf("expected 1 active member, got %d", dash.ActiveMembers)
		}
		if dash.NextPayer == nil || dash.NextPayer.Id != alice.Id {
			t.Errorf("expected Alice next, got %+v", dash.NextPayer)
		}
	})

	t.Run("list hides inactive members by default", func(t *testing.T) {
		resp, err := ts.members.ListMembers(context.Background(), connect.NewRequest(&pb.ListMembersRequest{}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(resp.Msg.Members) != 1 || resp.Msg.Members[0].Id != alice.Id {
			t.Errorf("expected only Alice, got %+v", resp.Msg.Members)
		}

		resp, err = ts.members.ListMembers(context.Background(), connect.NewRequest(&pb.ListMembersRequest{IncludeInactive: true}))
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(resp.Msg.Members) != 2 || resp.Msg.Members[1].Id != bob.Id || resp.Msg.Members[1].IsActive {
			t.Errorf("expected inactive Bob listed last, got %+v", resp.Msg.Members)
		}
	})

	t.Run("history keeps payments of removed members", func(t *testing.T) {
		ts.pay(t, bob.Id)
		resp, err := ts.rotation.ListPayments(context.Background(), connect.NewRequest(&pb.ListPaymentsRequest{}))
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(resp.Msg.Payments) != 2 || resp.Msg.Payments[0].MemberName != "Bob" {
			t.Errorf("expected Bob's payment on top, got %+v", resp.Msg.Payments)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := ts.members.RemoveMember(context.Background(), connect.NewRequest(&pb.RemoveMemberRequest{MemberId: "nobody"}))
		if connect.CodeOf(err) != connect.CodeNotFound {
			t.Errorf("expected NotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := ts.members.RemoveMember(context.Background(), connect.NewRequest(&pb.RemoveMemberRequest{}))
		if connect.CodeOf(err) != connect.CodeInvalidArgument {
			t.Errorf("expected InvalidArgument, got %v", err)
		}
	})
}

func TestAddMember_AfterRemoval(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	ts.addMember(t, "Bob")
	if _, err := ts.members.RemoveMember(context.Background(), connect.NewRequest(&pb.RemoveMemberRequest{MemberId: alice.Id})); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}

	carol := ts.addMember(t, "Carol")
	if carol.Order != 1 {
		t.Errorf("expected order 1 (one active member), got %d", carol.Order)
	}
}
