package scheduler

import (
	"fmt"

	"github.com/hrkit/interviewd/pkg/errors"
)

type ErrorKind int

const (
	KindMissingField ErrorKind = iota + 1
	KindInvalidDay
	KindInvalidTimeFormat
	KindTimeOutOfRange
	KindPersonNotFound
	KindCandidateNotFound
	KindNoAvailableTimeslots
	KindAlreadyExists
)

// Error is an expected, recoverable scheduling failure. Store faults
// are not Errors; they propagate wrapped and unclassified.
type Error struct {
	Kind  ErrorKind
	Field string
	Value string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return "missing request parameter: " + e.Field
	case KindInvalidDay:
		return "invalid day: " + e.Value
	case KindInvalidTimeFormat:
		return "time must look like HH:MM"
	case KindTimeOutOfRange:
		return "time out of range"
	case KindPersonNotFound:
		return "person not found: " + e.Value
	case KindCandidateNotFound:
		return "candidate not found: " + e.Value
	case KindNoAvailableTimeslots:
		return "no available timeslots"
	case KindAlreadyExists:
		return "already exists: " + e.Value
	default:
		return fmt.Sprintf("scheduling error (kind %d)", e.Kind)
	}
}

// KindOf extracts the taxonomy kind, or 0 for non-scheduling errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func missingField(name string) error {
	return &Error{Kind: KindMissingField, Field: name}
}

func invalidDay(day string) error {
	return &Error{Kind: KindInvalidDay, Field: "day", Value: day}
}

func invalidTime() error {
	return &Error{Kind: KindInvalidTimeFormat, Field: "time"}
}

func timeOutOfRange() error {
	return &Error{Kind: KindTimeOutOfRange, Field: "time"}
}

func personNotFound(id string) error {
	return &Error{Kind: KindPersonNotFound, Value: id}
}

func candidateNotFound(id string) error {
	return &Error{Kind: KindCandidateNotFound, Value: id}
}

func noAvailableTimeslots() error {
	return &Error{Kind: KindNoAvailableTimeslots}
}

func alreadyExists(name string) error {
	return &Error{Kind: KindAlreadyExists, Value: name}
}
