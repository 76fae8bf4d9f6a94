package scheduler

import (
	"github.com/hrkit/interviewd/internal/timeslot"
)

type AllocateRequest struct {
	PersonID string
	Day      string
	Time     string
}

// Snapshot is the post-allocation view of one person's availability,
// returned to the caller for observability.
type Snapshot struct {
	ID       string          `json:"id"`
	FullName string          `json:"name"`
	Slots    []timeslot.Slot `json:"timeslots"`
}

// MatchRecord pairs an interviewer with one slot shared with the
// candidate. It lives only in the response.
type MatchRecord struct {
	Interviewer string `json:"interviewer"`
	Day         string `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
}

type Schedule []MatchRecord
