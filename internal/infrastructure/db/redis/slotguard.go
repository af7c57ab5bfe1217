package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gcbs/appointment-system/internal/api/metrics"
)

const holdTTL = 2 * time.Minute

// SlotGuard provides a best-effort write-time hold on a booking slot, backed
// by Redis SETNX. Key format: slot:<lecturer_id>:<date>:<time>
//
// The hold only narrows the check-then-write race between two concurrent
// booking requests; it is not a lock on the slot itself. Accepted and pending
// appointments keep blocking through the appointments collection, and the
// hold expires on its own after holdTTL.
type SlotGuard struct {
	client *redis.Client
}

// NewSlotGuard creates a SlotGuard wrapping the given Redis client.
func NewSlotGuard(client *redis.Client) *SlotGuard {
	return &SlotGuard{client: client}
}

// Claim attempts to take the hold. It returns false when another booking
// request currently holds the slot.
func (g *SlotGuard) Claim(ctx context.Context, lecturerID, date, slot string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(lecturerID, date, slot), "1", holdTTL).Result()
	if err != nil {
		metrics.SlotGuardTotal.WithLabelValues("unavailable").Inc()
		return false, fmt.Errorf("slot claim: %w", err)
	}
	if ok {
		metrics.SlotGuardTotal.WithLabelValues("claimed").Inc()
	} else {
		metrics.SlotGuardTotal.WithLabelValues("blocked").Inc()
	}
	return ok, nil
}

// Release drops the hold so the slot can be claimed again, e.g. after a
// failed insert or once the occupying appointment reaches a terminal state.
func (g *SlotGuard) Release(ctx context.Context, lecturerID, date, slot string) error {
	return g.client.Del(ctx, g.key(lecturerID, date, slot)).Err()
}

func (g *SlotGuard) key(lecturerID, date, slot string) string {
	return fmt.Sprintf("slot:%s:%s:%s", lecturerID, date, slot)
}
