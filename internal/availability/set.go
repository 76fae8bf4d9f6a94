package availability

import (
	"slices"

	"github.com/hrkit/interviewd/internal/timeslot"
)

// Set keeps a person's free slots. Membership is by slot value, so
// adding a slot twice keeps a single entry.
type Set struct {
	slots map[timeslot.Slot]struct{}
}

func New() Set {
	return Set{slots: make(map[timeslot.Slot]struct{})}
}

func Of(slots ...timeslot.Slot) Set {
	s := New()
	for _, slot := range slots {
		s.Add(slot)
	}
	return s
}

func (s Set) Len() int {
	return len(s.slots)
}

func (s Set) Contains(slot timeslot.Slot) bool {
	_, ok := s.slots[slot]
	return ok
}

// Add inserts the slot and reports whether the set grew. Re-adding a
// present slot is a no-op.
func (s Set) Add(slot timeslot.Slot) bool {
	if s.Contains(slot) {
		return false
	}

	s.slots[slot] = struct{}{}
	return true
}

// Slots returns a snapshot of the members ordered by weekday index,
// then hour, then minute. Later Add calls do not affect a slice
// already handed out.
func (s Set) Slots() []timeslot.Slot {
	out := make([]timeslot.Slot, 0, len(s.slots))
	for slot := range s.slots {
		out = append(out, slot)
	}

	slices.SortFunc(out, timeslot.Compare)
	return out
}

// Intersect returns the slots present in both sets, in the same
// weekday-index order as Slots.
func (s Set) Intersect(other Set) []timeslot.Slot {
	smaller, larger := s, other
	if larger.Len() < smaller.Len() {
		smaller, larger = larger, smaller
	}

	var common []timeslot.Slot
	for slot := range smaller.slots {
		if larger.Contains(slot) {
			common = append(common, slot)
		}
	}

	slices.SortFunc(common, timeslot.Compare)
	return common
}
