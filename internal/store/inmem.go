package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/scheduler"
	"github.com/hrkit/interviewd/internal/timeslot"
	"github.com/hrkit/interviewd/pkg/errors"
)

// InMemory backs both store interfaces with plain maps. It is used in
// tests and for local runs without a database.
type InMemory struct {
	mu      sync.Mutex
	persons map[string]people.Person
	slots   map[timeslot.Slot]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		persons: make(map[string]people.Person),
		slots:   make(map[timeslot.Slot]struct{}),
	}
}

func (m *InMemory) FindByID(_ context.Context, id string) (*people.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.persons[id]
	if !ok {
		return nil, nil
	}

	return m.copyOut(p), nil
}

func (m *InMemory) FindByName(_ context.Context, role people.Role, first, last string) (*people.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.persons {
		if p.Role == role && p.FirstName == first && p.LastName == last {
			return m.copyOut(p), nil
		}
	}

	return nil, nil
}

func (m *InMemory) Create(_ context.Context, p people.Person) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = uuid.NewString()
	m.persons[p.ID] = p
	return p.ID, nil
}

func (m *InMemory) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.persons[id]
	delete(m.persons, id)
	return ok, nil
}

func (m *InMemory) SetFree(_ context.Context, id string, free []timeslot.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.persons[id]
	if !ok {
		return errors.Errorf("no person with id %s", id)
	}

	p.Free = slices.Clone(free)
	m.persons[id] = p
	return nil
}

func (m *InMemory) Find(_ context.Context, day string, hour, minute int) (*timeslot.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot := timeslot.Slot{Day: day, Hour: hour, Minute: minute}
	if _, ok := m.slots[slot]; !ok {
		return nil, nil
	}

	return &slot, nil
}

func (m *InMemory) CreateSlot(_ context.Context, slot timeslot.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[slot]; ok {
		return scheduler.ErrSlotExists
	}

	m.slots[slot] = struct{}{}
	return nil
}

// SlotCount reports the size of the canonical pool.
func (m *InMemory) SlotCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.slots)
}

func (m *InMemory) copyOut(p people.Person) *people.Person {
	p.Free = slices.Clone(p.Free)
	return &p
}

// Slots adapts the slot half of the store to scheduler.SlotStore,
// keeping Create names from clashing with the person store.
func (m *InMemory) Slots() scheduler.SlotStore {
	return inMemorySlots{m}
}

type inMemorySlots struct {
	m *InMemory
}

func (s inMemorySlots) Find(ctx context.Context, day string, hour, minute int) (*timeslot.Slot, error) {
	return s.m.Find(ctx, day, hour, minute)
}

func (s inMemorySlots) Create(ctx context.Context, slot timeslot.Slot) error {
	return s.m.CreateSlot(ctx, slot)
}
