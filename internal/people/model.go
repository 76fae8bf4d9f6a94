package people

import (
	"github.com/hrkit/interviewd/internal/availability"
	"github.com/hrkit/interviewd/internal/timeslot"
)

type Role int

const (
	// RoleEmployee marks interviewers on the company side.
	RoleEmployee Role = iota
	RoleCandidate
)

// Person is either an employee carrying out interviews or an
// interviewed candidate. Free holds the allocated timeslots; the
// stores keep it deduplicated via the availability set.
type Person struct {
	ID        string `json:"id"    bson:"-"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name"  bson:"last_name"`
	Role      Role   `json:"role"       bson:"role"`

	// candidate-only fields
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Skype string `json:"skype,omitempty" bson:"skype,omitempty"`

	Free []timeslot.Slot `json:"free" bson:"free"`
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Person) Availability() availability.Set {
	return availability.Of(p.Free...)
}
