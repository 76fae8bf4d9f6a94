package scheduler

import (
	"context"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/timeslot"
	"github.com/hrkit/interviewd/pkg/errors"
)

// PersonStore is the persistence boundary for employees and
// candidates. Lookups return nil (not an error) when nothing matches.
type PersonStore interface {
	FindByID(ctx context.Context, id string) (*people.Person, error)
	FindByName(ctx context.Context, role people.Role, first, last string) (*people.Person, error)
	Create(ctx context.Context, p people.Person) (id string, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
	SetFree(ctx context.Context, id string, free []timeslot.Slot) error
}

// ErrSlotExists is returned by SlotStore.Create when another caller
// registered the same slot first. The engine reuses the existing slot.
var ErrSlotExists = errors.Error("timeslot already registered")

// SlotStore is the canonical slot pool: one record per distinct
// (day, hour, minute) value, shared by all persons. Implementations
// must enforce uniqueness and report conflicts as ErrSlotExists.
type SlotStore interface {
	Find(ctx context.Context, day string, hour, minute int) (*timeslot.Slot, error)
	Create(ctx context.Context, slot timeslot.Slot) error
}
