package api

import (
	"context"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/scheduler"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Engine is the scheduling core as the transport layer sees it.
type Engine interface {
	Allocate(ctx context.Context, req scheduler.AllocateRequest) (*scheduler.Snapshot, error)
	Match(ctx context.Context, candidateID string, employeeIDs []string) (scheduler.Schedule, error)

	CreatePerson(ctx context.Context, p people.Person) (string, error)
	GetPerson(ctx context.Context, role people.Role, first, last string) (*people.Person, error)
	DeletePerson(ctx context.Context, role people.Role, first, last string) (string, error)
}
