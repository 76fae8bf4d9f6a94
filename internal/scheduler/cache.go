package scheduler

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hrkit/interviewd/internal/timeslot"
	"github.com/hrkit/interviewd/pkg/errors"
)

// The week holds 7*23*4 = 644 distinct slots, so the default capacity
// fits the whole pool.
const defaultCacheSize = 644

// slotCache remembers which slots are known to be registered in the
// pool, skipping a store round trip for hot slots. A miss only means
// "ask the store", so eviction is always safe.
type slotCache struct {
	known *lru.Cache[timeslot.Slot, struct{}]
}

func newSlotCache(size int) (*slotCache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	known, err := lru.New[timeslot.Slot, struct{}](size)
	if err != nil {
		return nil, errors.WrapFail(err, "init slot cache")
	}

	return &slotCache{known: known}, nil
}

func (c *slotCache) seen(slot timeslot.Slot) bool {
	_, ok := c.known.Get(slot)
	return ok
}

func (c *slotCache) remember(slot timeslot.Slot) {
	c.known.Add(slot, struct{}{})
}
