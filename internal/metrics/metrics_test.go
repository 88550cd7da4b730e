package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPaymentRecorded(t *testing.T) {
	m := New()

	m.PaymentRecorded("scheduled", false, 2)
	m.PaymentRecorded("voluntary", true, 0)
	m.PaymentRecorded("scheduled", false, 1)

	if got := testutil.ToFloat64(m.paymentsRecorded.WithLabelValues("scheduled")); got != 2 {
		t.Errorf("scheduled payments = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.exemptionsGranted); got != 1 {
		t.Errorf("granted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.exemptionsConsumed); got != 3 {
		t.Errorf("consumed = %v, want 3", got)
	}
}

func TestObserveRosterAndReset(t *testing.T) {
	m := New()

	m.ObserveRoster(4, 1)
	m.CycleReset()

	if got := testutil.ToFloat64(m.activeMembers); got != 4 {
		t.Errorf("active members = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.exemptedMembers); got != 1 {
		t.Errorf("exempted members = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.cycleResets); got != 1 {
		t.Errorf("resets = %v, want 1", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.PaymentRecorded("scheduled", true, 1)
	m.CycleReset()
	m.ObserveRoster(1, 1)
}

func TestHandler(t *testing.T) {
	m := New()
	m.PaymentRecorded("consecutive", true, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `bucketwise_payments_recorded_total{kind="consecutive"} 1`) {
		t.Errorf("metrics output missing payment counter:\n%s", body)
	}
}
