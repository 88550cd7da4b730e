// Package service implements the bucketwise Connect services on top of the
// rotation logic and a storage.Store.
package service

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/mmynk/bucketwise/internal/events"
	"github.com/mmynk/bucketwise/internal/metrics"
	"github.com/mmynk/bucketwise/internal/models"
	"github.com/mmynk/bucketwise/internal/rotation"
	"github.com/mmynk/bucketwise/internal/storage"
	pb "github.com/mmynk/bucketwise/pkg/proto"
)

var (
	errMissingStore  = errors.New("store is required")
	errMissingLedger = errors.New("ledger is required")
)

// Config carries the dependencies shared by both services.
type Config struct {
	Store     storage.Store
	Ledger    *rotation.Ledger
	Metrics   *metrics.Metrics // optional
	Publisher events.Publisher // optional
	Logger    *slog.Logger     // optional
}

// writer serialises every state change. A change reads the stored state,
// computes the next one and writes it back while holding mu.
type writer struct {
	mu        sync.Mutex
	store     storage.Store
	metrics   *metrics.Metrics
	publisher events.Publisher
	logger    *slog.Logger
}

// New creates the rotation and member services. They share one write lock.
func New(cfg Config) (*RotationService, *MemberService, error) {
	if cfg.Store == nil {
		return nil, nil, errMissingStore
	}
	if cfg.Ledger == nil {
		return nil, nil, errMissingLedger
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &writer{
		store:     cfg.Store,
		metrics:   cfg.Metrics,
		publisher: publisher,
		logger:    logger,
	}

	return &RotationService{writer: w, ledger: cfg.Ledger}, &MemberService{writer: w}, nil
}

// publish sends an event. The change is already committed, so a failure is
// only logged.
func (w *writer) publish(ctx context.Context, key string, v any) {
	if err := w.publisher.Publish(ctx, key, v); err != nil {
		w.logger.Warn("Failed to publish event", "key", key, "error", err)
	}
}

// observe refreshes the roster gauges.
func (w *writer) observe(roster models.Roster) {
	w.metrics.ObserveRoster(len(roster.Active()), len(rotation.ExemptedMembers(roster)))
}

// sortByOrder puts active members first in rotation order, then the rest.
func sortByOrder(members []models.Member) {
	slices.SortStableFunc(members, func(a, b models.Member) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

// recentPayments is how many payments the dashboard shows.
const recentPayments = 10

func toProtoMember(m models.Member) *pb.Member {
	return &pb.Member{
		Id:         m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		Exemptions: int32(m.Exemptions),
		Order:      int32(m.Order),
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

func toProtoMembers(members []models.Member) []*pb.Member {
	out := make([]*pb.Member, len(members))
	for i, m := range members {
		out[i] = toProtoMember(m)
	}
	return out
}

func toProtoPayment(p models.Payment) *pb.Payment {
	return &pb.Payment{
		Id:         p.ID,
		MemberId:   p.MemberID,
		MemberName: p.MemberName,
		Amount:     p.Amount.String(),
		Timestamp:  p.Timestamp,
		IsOverride: p.IsOverride,
	}
}

func toProtoPayments(payments []models.Payment) []*pb.Payment {
	out := make([]*pb.Payment, len(payments))
	for i, p := range payments {
		out[i] = toProtoPayment(p)
	}
	return out
}
