package scheduler

import (
	"context"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/timeslot"
	"github.com/hrkit/interviewd/pkg/errors"
)

// Scheduler validates raw scheduling requests and runs them against
// the injected stores. It classifies expected failures as *Error and
// never logs; store faults come back wrapped.
type Scheduler struct {
	persons PersonStore
	slots   SlotStore
	cache   *slotCache
}

func New(persons PersonStore, slots SlotStore) (*Scheduler, error) {
	cache, err := newSlotCache(defaultCacheSize)
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		persons: persons,
		slots:   slots,
		cache:   cache,
	}, nil
}

// Allocate turns a raw (person, day, time) request into a canonical
// slot added to the person's availability. All checks run before any
// store write; at most one new slot is created per call.
func (s *Scheduler) Allocate(ctx context.Context, req AllocateRequest) (*Snapshot, error) {
	switch {
	case req.PersonID == "":
		return nil, missingField("person_id")
	case req.Day == "":
		return nil, missingField("day")
	case req.Time == "":
		return nil, missingField("time")
	}

	if !timeslot.ValidDay(req.Day) {
		return nil, invalidDay(req.Day)
	}

	hour, minute, err := timeslot.ParseTime(req.Time)
	if err != nil {
		return nil, invalidTime()
	}

	if !timeslot.ValidRange(hour, minute) {
		return nil, timeOutOfRange()
	}

	slot := timeslot.Slot{
		Day:    req.Day,
		Hour:   hour,
		Minute: timeslot.RoundMinute(minute),
	}

	person, err := s.persons.FindByID(ctx, req.PersonID)
	if err != nil {
		return nil, errors.WrapFail(err, "find person by id")
	}
	if person == nil {
		return nil, personNotFound(req.PersonID)
	}

	err = s.obtainSlot(ctx, slot)
	if err != nil {
		return nil, err
	}

	free := person.Availability()
	if free.Add(slot) {
		err = s.persons.SetFree(ctx, person.ID, free.Slots())
		if err != nil {
			return nil, errors.WrapFail(err, "update availability")
		}
	}

	return &Snapshot{
		ID:       person.ID,
		FullName: person.FullName(),
		Slots:    free.Slots(),
	}, nil
}

// obtainSlot makes sure the slot is registered in the shared pool.
// A create racing another caller loses to the store's uniqueness
// constraint and falls back to reuse.
func (s *Scheduler) obtainSlot(ctx context.Context, slot timeslot.Slot) error {
	if s.cache.seen(slot) {
		return nil
	}

	found, err := s.slots.Find(ctx, slot.Day, slot.Hour, slot.Minute)
	if err != nil {
		return errors.WrapFail(err, "find timeslot")
	}

	if found == nil {
		err = s.slots.Create(ctx, slot)
		if err != nil && !errors.Is(err, ErrSlotExists) {
			return errors.WrapFail(err, "register timeslot")
		}
	}

	s.cache.remember(slot)
	return nil
}

// Match intersects the candidate's availability with each listed
// employee's and flattens the overlaps into a schedule. Unknown
// employee ids are dropped silently; an overall empty schedule is
// reported as NoAvailableTimeslots.
func (s *Scheduler) Match(ctx context.Context, candidateID string, employeeIDs []string) (Schedule, error) {
	if candidateID == "" {
		return nil, missingField("candidate")
	}
	if employeeIDs == nil {
		return nil, missingField("employees")
	}

	candidate, err := s.persons.FindByID(ctx, candidateID)
	if err != nil {
		return nil, errors.WrapFail(err, "find candidate")
	}
	if candidate == nil || candidate.Role != people.RoleCandidate {
		return nil, candidateNotFound(candidateID)
	}

	candidateFree := candidate.Availability()

	var schedule Schedule
	for _, id := range employeeIDs {
		employee, err := s.persons.FindByID(ctx, id)
		if err != nil {
			return nil, errors.WrapFail(err, "find employee")
		}
		if employee == nil || employee.Role != people.RoleEmployee {
			continue
		}

		for _, slot := range employee.Availability().Intersect(candidateFree) {
			schedule = append(schedule, MatchRecord{
				Interviewer: employee.FullName(),
				Day:         slot.Day,
				Hour:        slot.Hour,
				Minute:      slot.Minute,
			})
		}
	}

	if len(schedule) == 0 {
		return nil, noAvailableTimeslots()
	}

	return schedule, nil
}

// CreatePerson registers a new employee or candidate. The (role,
// first, last) triple must be unique; candidates must carry an email.
func (s *Scheduler) CreatePerson(ctx context.Context, p people.Person) (string, error) {
	switch {
	case p.FirstName == "":
		return "", missingField("first_name")
	case p.LastName == "":
		return "", missingField("last_name")
	case p.Role == people.RoleCandidate && p.Email == "":
		return "", missingField("email")
	}

	existing, err := s.persons.FindByName(ctx, p.Role, p.FirstName, p.LastName)
	if err != nil {
		return "", errors.WrapFail(err, "check person existence")
	}
	if existing != nil {
		return "", alreadyExists(p.FullName())
	}

	id, err := s.persons.Create(ctx, p)
	return id, errors.WrapFail(err, "create person")
}

func (s *Scheduler) GetPerson(ctx context.Context, role people.Role, first, last string) (*people.Person, error) {
	switch {
	case first == "":
		return nil, missingField("first_name")
	case last == "":
		return nil, missingField("last_name")
	}

	person, err := s.persons.FindByName(ctx, role, first, last)
	if err != nil {
		return nil, errors.WrapFail(err, "find person by name")
	}
	if person == nil {
		return nil, personNotFound(first + " " + last)
	}

	return person, nil
}

// DeletePerson removes a person by name and returns the deleted id.
func (s *Scheduler) DeletePerson(ctx context.Context, role people.Role, first, last string) (string, error) {
	person, err := s.GetPerson(ctx, role, first, last)
	if err != nil {
		return "", err
	}

	deleted, err := s.persons.Delete(ctx, person.ID)
	if err != nil {
		return "", errors.WrapFail(err, "delete person")
	}
	if !deleted {
		return "", personNotFound(person.ID)
	}

	return person.ID, nil
}
