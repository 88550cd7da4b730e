package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/bucketwise/internal/events"
	"github.com/mmynk/bucketwise/internal/metrics"
	"github.com/mmynk/bucketwise/internal/rotation"
	"github.com/mmynk/bucketwise/internal/storage/sqlite"
	pb "github.com/mmynk/bucketwise/pkg/proto"
	"github.com/mmynk/bucketwise/pkg/proto/protoconnect"
)

// recordingPublisher keeps every published routing key.
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	fail bool
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	if p.fail {
		return errors.New("broker unavailable")
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) setFail(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = fail
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type testServer struct {
	url       string
	handler   http.Handler
	rotation  protoconnect.RotationServiceClient
	members   protoconnect.MemberServiceClient
	publisher *recordingPublisher
}

// setupTestServer creates a test server backed by a temporary SQLite database
func setupTestServer(t *testing.T) (*testServer, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	ledger, err := rotation.NewLedger(rotation.LedgerConfig{})
	if err != nil {
		t.Fatalf("failed to create ledger: %v", err)
	}

	publisher := &recordingPublisher{}
	rotationSvc, memberSvc, err := New(Config{
		Store:     store,
		Ledger:    ledger,
		Metrics:   metrics.New(),
		Publisher: publisher,
	})
	if err != nil {
		t.Fatalf("failed to create services: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewRotationServiceHandler(rotationSvc))
	mux.Handle(protoconnect.NewMemberServiceHandler(memberSvc))

	server := httptest.NewServer(mux)

	ts := &testServer{
		url:       server.URL,
		handler:   mux,
		rotation:  protoconnect.NewRotationServiceClient(http.DefaultClient, server.URL),
		members:   protoconnect.NewMemberServiceClient(http.DefaultClient, server.URL),
		publisher: publisher,
	}

	cleanup := func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return ts, cleanup
}

func (ts *testServer) addMember(t *testing.T, name string) *pb.Member {
	t.Helper()
	resp, err := ts.members.AddMember(context.Background(), connect.NewRequest(&pb.AddMemberRequest{Name: name}))
	if err != nil {
		t.Fatalf("AddMember(%s) failed: %v", name, err)
	}
	return resp.Msg.Member
}

func (ts *testServer) pay(t *testing.T, memberID string) *pb.RecordPaymentResponse {
	t.Helper()
	resp, err := ts.rotation.RecordPayment(context.Background(), connect.NewRequest(&pb.RecordPaymentRequest{MemberId: memberID}))
	if err != nil {
		t.Fatalf("RecordPayment(%s) failed: %v", memberID, err)
	}
	return resp.Msg
}

func (ts *testServer) dashboard(t *testing.T) *pb.GetDashboardResponse {
	t.Helper()
	resp, err := ts.rotation.GetDashboard(context.Background(), connect.NewRequest(&pb.GetDashboardRequest{}))
	if err != nil {
		t.Fatalf("GetDashboard failed: %v", err)
	}
	return resp.Msg
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, _, err := New(Config{}); !errors.Is(err, errMissingStore) {
		t.Errorf("expected errMissingStore, got %v", err)
	}
}

func TestGetDashboard_Empty(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	dash := ts.dashboard(t)
	if dash.NextPayer != nil {
		t.Errorf("expected no next payer, got %+v", dash.NextPayer)
	}
	if dash.LastPayment != nil {
		t.Errorf("expected no last payment, got %+v", dash.LastPayment)
	}
	if dash.BucketCost != "20" {
		t.Errorf("expected bucket cost 20, got %s", dash.BucketCost)
	}
	if dash.ActiveMembers != 0 {
		t.Errorf("expected 0 active members, got %d", dash.ActiveMembers)
	}
}

func TestGetDashboard_RecentPayments(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")

	if dash := ts.dashboard(t); len(dash.RecentPayments) != 0 {
		t.Errorf("expected no recent payments, got %d", len(dash.RecentPayments))
	}

	var last *pb.RecordPaymentResponse
	for i := 0; i < 12; i++ {
		id := alice.Id
		if i%2 == 1 {
			id = bob.Id
		}
		last = ts.pay(t, id)
	}

	dash := ts.dashboard(t)
	if len(dash.RecentPayments) != 10 {
		t.Fatalf("expected 10 recent payments, got %d", len(dash.RecentPayments))
	}
	if dash.RecentPayments[0].Id != last.Payment.Id || dash.LastPayment.Id != last.Payment.Id {
		t.Errorf("expected newest payment first, got %+v", dash.RecentPayments[0])
	}
	for i := 1; i < len(dash.RecentPayments); i++ {
		if dash.RecentPayments[i-1].Timestamp < dash.RecentPayments[i].Timestamp {
			t.Errorf("recent payments %d and %d out of order", i-1, i)
		}
	}
}

func TestRecordPayment_Rotation(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	carol := ts.addMember(t, "Carol")

	if got := ts.dashboard(t).NextPayer; got == nil || got.Id != alice.Id {
		t.Fatalf("expected Alice to pay first, got %+v", got)
	}

	// Carol pays ahead of Alice and earns an exemption.
	resp := ts.pay(t, carol.Id)
	if resp.Kind != string(rotation.KindVoluntary) || !resp.Granted {
		t.Errorf("expected voluntary grant, got kind=%s granted=%v", resp.Kind, resp.Granted)
	}
	if resp.Payment.Amount != "20" {
		t.Errorf("expected amount 20, got %s", resp.Payment.Amount)
	}
	if resp.NextPayer == nil || resp.NextPayer.Id != alice.Id {
		t.Errorf("expected Alice next, got %+v", resp.NextPayer)
	}

	resp = ts.pay(t, alice.Id)
	if resp.Kind != string(rotation.KindScheduled) || resp.Granted {
		t.Errorf("expected scheduled payment, got kind=%s granted=%v", resp.Kind, resp.Granted)
	}
	if resp.NextPayer == nil || resp.NextPayer.Id != bob.Id {
		t.Errorf("expected Bob next, got %+v", resp.NextPayer)
	}

	// Carol is skipped after Bob.
	resp = ts.pay(t, bob.Id)
	if resp.NextPayer == nil || resp.NextPayer.Id != alice.Id {
		t.Errorf("expected Alice next (Carol exempt), got %+v", resp.NextPayer)
	}

	dash := ts.dashboard(t)
	if len(dash.Exempted) != 1 || dash.Exempted[0].Id != carol.Id || dash.Exempted[0].Exemptions != 1 {
		t.Errorf("expected Carol exempted once, got %+v", dash.Exempted)
	}

	// Alice pays on schedule, walking past Carol, who spends her exemption.
	resp = ts.pay(t, alice.Id)
	if len(resp.Consumed) != 1 || resp.Consumed[0] != carol.Id {
		t.Errorf("expected Carol to spend an exemption, got %v", resp.Consumed)
	}

	dash = ts.dashboard(t)
	if len(dash.Exempted) != 0 {
		t.Errorf("expected nobody exempted, got %+v", dash.Exempted)
	}
	if dash.LastPayment == nil || dash.LastPayment.MemberId != alice.Id {
		t.Errorf("expected Alice as last payer, got %+v", dash.LastPayment)
	}
	if dash.NextPayer == nil || dash.NextPayer.Id != bob.Id {
		t.Errorf("expected Bob next, got %+v", dash.NextPayer)
	}
}

func TestRecordPayment_Consecutive(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	ts.addMember(t, "Bob")

	ts.pay(t, alice.Id)
	resp := ts.pay(t, alice.Id)
	if resp.Kind != string(rotation.KindConsecutive) || !resp.Granted {
		t.Errorf("expected consecutive grant, got kind=%s granted=%v", resp.Kind, resp.Granted)
	}

	members, err := ts.members.ListMembers(context.Background(), connect.NewRequest(&pb.ListMembersRequest{}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if members.Msg.Members[0].Exemptions != 1 {
		t.Errorf("expected Alice to hold 1 exemption, got %d", members.Msg.Members[0].Exemptions)
	}
}

func TestRecordPayment_Errors(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	tests := []struct {
		name     string
		memberID string
		wantCode connect.Code
	}{
		{"empty member", "  ", connect.CodeInvalidArgument},
		{"unknown member", "nobody", connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.rotation.RecordPayment(context.Background(), connect.NewRequest(&pb.RecordPaymentRequest{MemberId: tt.memberID}))
			if connect.CodeOf(err) != tt.wantCode {
				t.Errorf("expected %v, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestRecordPayment_PublishFailureIsNotFatal(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	ts.publisher.setFail(true)

	resp := ts.pay(t, alice.Id)
	if resp.Payment == nil || resp.Payment.MemberId != alice.Id {
		t.Errorf("expected payment to be recorded, got %+v", resp.Payment)
	}

	keys := ts.publisher.published()
	if keys[len(keys)-1] != events.RKPaymentRecorded {
		t.Errorf("expected last event %s, got %v", events.RKPaymentRecorded, keys)
	}
}

func TestListPayments(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	ts.pay(t, alice.Id)
	ts.pay(t, bob.Id)
	ts.pay(t, alice.Id)

	t.Run("all", func(t *testing.T) {
		resp, err := ts.rotation.ListPayments(context.Background(), connect.NewRequest(&pb.ListPaymentsRequest{}))
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		want := []string{alice.Id, bob.Id, alice.Id}
		if len(resp.Msg.Payments) != len(want) {
			t.Fatalf("expected %d payments, got %d", len(want), len(resp.Msg.Payments))
		}
		for i, p := range resp.Msg.Payments {
			if p.MemberId != want[i] {
				t.Errorf("payment %d: expected %s, got %s", i, want[i], p.MemberId)
			}
		}
		if resp.Msg.Payments[0].Timestamp < resp.Msg.Payments[1].Timestamp {
			t.Error("expected newest payment first")
		}
	})

	t.Run("limited", func(t *testing.T) {
		resp, err := ts.rotation.ListPayments(context.Background(), connect.NewRequest(&pb.ListPaymentsRequest{Limit: 1}))
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(resp.Msg.Payments) != 1 {
			t.Errorf("expected 1 payment, got %d", len(resp.Msg.Payments))
		}
	})
}

func TestGetTally(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	ts.pay(t, alice.Id)
	ts.pay(t, bob.Id)
	ts.pay(t, alice.Id)

	resp, err := ts.rotation.GetTally(context.Background(), connect.NewRequest(&pb.GetTallyRequest{}))
	if err != nil {
		t.Fatalf("GetTally failed: %v", err)
	}
	if resp.Msg.TotalCollected != "60" {
		t.Errorf("expected total 60, got %s", resp.Msg.TotalCollected)
	}
	if len(resp.Msg.Tallies) != 2 {
		t.Fatalf("expected 2 tallies, got %d", len(resp.Msg.Tallies))
	}
	if got := resp.Msg.Tallies[0]; got.MemberId != alice.Id || got.Payments != 2 || got.TotalPaid != "40" {
		t.Errorf("unexpected Alice tally: %+v", got)
	}
	if got := resp.Msg.Tallies[1]; got.MemberId != bob.Id || got.Payments != 1 || got.TotalPaid != "20" {
		t.Errorf("unexpected Bob tally: %+v", got)
	}
}

func TestResetCycle(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	ts.pay(t, bob.Id) // voluntary, Bob earns an exemption

	t.Run("requires confirmation", func(t *testing.T) {
		_, err := ts.rotation.ResetCycle(context.Background(), connect.NewRequest(&pb.ResetCycleRequest{}))
		if connect.CodeOf(err) != connect.CodeFailedPrecondition {
			t.Errorf("expected FailedPrecondition, got %v", err)
		}
		if ts.dashboard(t).LastPayment == nil {
			t.Error("unconfirmed reset should keep the history")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		_, err := ts.rotation.ResetCycle(context.Background(), connect.NewRequest(&pb.ResetCycleRequest{Confirm: true}))
		if err != nil {
			t.Fatalf("ResetCycle failed: %v", err)
		}

		dash := ts.dashboard(t)
		if dash.LastPayment != nil {
			t.Errorf("expected empty history, got %+v", dash.LastPayment)
		}
		if len(dash.Exempted) != 0 {
			t.Errorf("expected no exemptions, got %+v", dash.Exempted)
		}
		if dash.NextPayer == nil || dash.NextPayer.Id != alice.Id {
			t.Errorf("expected rotation to restart at Alice, got %+v", dash.NextPayer)
		}
	})

	keys := ts.publisher.published()
	if keys[len(keys)-1] != events.RKCycleReset {
		t.Errorf("expected last event %s, got %v", events.RKCycleReset, keys)
	}
}

func TestResetCycle_ClearsRemovedMembers(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")
	ts.pay(t, bob.Id) // voluntary, Bob earns an exemption

	if _, err := ts.members.RemoveMember(context.Background(), connect.NewRequest(&pb.RemoveMemberRequest{MemberId: bob.Id})); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	if _, err := ts.rotation.ResetCycle(context.Background(), connect.NewRequest(&pb.ResetCycleRequest{Confirm: true})); err != nil {
		t.Fatalf("ResetCycle failed: %v", err)
	}

	resp, err := ts.members.ListMembers(context.Background(), connect.NewRequest(&pb.ListMembersRequest{IncludeInactive: true}))
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(resp.Msg.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(resp.Msg.Members))
	}
	for _, m := range resp.Msg.Members {
		if m.Exemptions != 0 {
			t.Errorf("%s exemptions = %d, want 0", m.Name, m.Exemptions)
		}
	}
}

func TestRecordPayment_Concurrent(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	alice := ts.addMember(t, "Alice")
	bob := ts.addMember(t, "Bob")

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		id := alice.Id
		if i%2 == 1 {
			id = bob.Id
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ts.rotation.RecordPayment(context.Background(), connect.NewRequest(&pb.RecordPaymentRequest{MemberId: id}))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("RecordPayment failed: %v", err)
		}
	}

	resp, err := ts.rotation.ListPayments(context.Background(), connect.NewRequest(&pb.ListPaymentsRequest{}))
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(resp.Msg.Payments) != n {
		t.Errorf("expected %d payments, got %d", n, len(resp.Msg.Payments))
	}
	for i := 1; i < len(resp.Msg.Payments); i++ {
		if resp.Msg.Payments[i-1].Timestamp < resp.Msg.Payments[i].Timestamp {
			t.Errorf("payments %d and %d out of order", i-1, i)
		}
	}
}
