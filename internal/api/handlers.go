package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hrkit/interviewd/internal/people"
	"github.com/hrkit/interviewd/internal/scheduler"
	"github.com/hrkit/interviewd/pkg/errors"
)

type personRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Skype     string `json:"skype"`
}

type allocateRequest struct {
	EmployeeID  string `json:"employee_id"`
	CandidateID string `json:"candidate_id"`
	Day         string `json:"day"`
	Time        string `json:"time"`
}

type matchRequest struct {
	Candidate string   `json:"candidate"`
	Employees []string `json:"employees"`
}

func (s *server) handleEcho(c *fiber.Ctx) error {
	return s.success(c, nil)
}

func (s *server) handleCreateEmployee(c *fiber.Ctx) error {
	return s.createPerson(c, people.RoleEmployee)
}

func (s *server) handleCreateCandidate(c *fiber.Ctx) error {
	return s.createPerson(c, people.RoleCandidate)
}

func (s *server) createPerson(c *fiber.Ctx, role people.Role) error {
	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal person payload"))
		return s.badJSON(c)
	}

	id, err := s.engine.CreatePerson(c.Context(), people.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Skype:     req.Skype,
		Role:      role,
	})
	if err != nil {
		return s.sendEngineError(c, err)
	}

	return s.success(c, fiber.Map{"id": id})
}

func (s *server) handleGetEmployee(c *fiber.Ctx) error {
	return s.getPerson(c, people.RoleEmployee)
}

func (s *server) handleGetCandidate(c *fiber.Ctx) error {
	return s.getPerson(c, people.RoleCandidate)
}

func (s *server) getPerson(c *fiber.Ctx, role people.Role) error {
	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal person payload"))
		return s.badJSON(c)
	}

	person, err := s.engine.GetPerson(c.Context(), role, req.FirstName, req.LastName)
	if err != nil {
		return s.sendEngineError(c, err)
	}

	payload := fiber.Map{
		"id":         person.ID,
		"first_name": person.FirstName,
		"last_name":  person.LastName,
		"timeslots":  person.Availability().Slots(),
	}
	if role == people.RoleCandidate {
		payload["email"] = person.Email
		if person.Skype != "" {
			payload["skype"] = person.Skype
		}
	}

	return s.success(c, payload)
}

func (s *server) handleDeleteEmployee(c *fiber.Ctx) error {
	return s.deletePerson(c, people.RoleEmployee)
}

func (s *server) handleDeleteCandidate(c *fiber.Ctx) error {
	return s.deletePerson(c, people.RoleCandidate)
}

func (s *server) deletePerson(c *fiber.Ctx, role people.Role) error {
	var req personRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal person payload"))
		return s.badJSON(c)
	}

	id, err := s.engine.DeletePerson(c.Context(), role, req.FirstName, req.LastName)
	if err != nil {
		return s.sendEngineError(c, err)
	}

	return s.success(c, fiber.Map{"id": id})
}

func (s *server) handleAllocateEmployeeTime(c *fiber.Ctx) error {
	var req allocateRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal allocation payload"))
		return s.badJSON(c)
	}

	return s.allocate(c, req.EmployeeID, req)
}

func (s *server) handleAllocateCandidateTime(c *fiber.Ctx) error {
	var req allocateRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal allocation payload"))
		return s.badJSON(c)
	}

	return s.allocate(c, req.CandidateID, req)
}

func (s *server) allocate(c *fiber.Ctx, personID string, req allocateRequest) error {
	snap, err := s.engine.Allocate(c.Context(), scheduler.AllocateRequest{
		PersonID: personID,
		Day:      req.Day,
		Time:     req.Time,
	})
	if err != nil {
		return s.sendEngineError(c, err)
	}

	return s.success(c, fiber.Map{
		"id":        snap.ID,
		"name":      snap.FullName,
		"timeslots": snap.Slots,
	})
}

func (s *server) handleListInterviews(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal match payload"))
		return s.badJSON(c)
	}

	schedule, err := s.engine.Match(c.Context(), req.Candidate, req.Employees)
	if err != nil {
		return s.sendEngineError(c, err)
	}

	return s.success(c, fiber.Map{"schedule": schedule})
}

func (s *server) success(c *fiber.Ctx, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	return c.Status(http.StatusOK).JSON(payload)
}

func (s *server) badJSON(c *fiber.Ctx) error {
	return s.sendError(c, http.StatusBadRequest, "bad request", "malformed json body")
}

// sendEngineError maps the scheduler taxonomy onto statuses; anything
// unclassified bubbles up to the fiber error handler as a 500.
func (s *server) sendEngineError(c *fiber.Ctx, err error) error {
	switch scheduler.KindOf(err) {
	case scheduler.KindMissingField,
		scheduler.KindInvalidDay,
		scheduler.KindInvalidTimeFormat,
		scheduler.KindTimeOutOfRange,
		scheduler.KindAlreadyExists:
		return s.sendError(c, http.StatusBadRequest, "bad request", err.Error())

	case scheduler.KindPersonNotFound,
		scheduler.KindCandidateNotFound,
		scheduler.KindNoAvailableTimeslots:
		return s.sendError(c, http.StatusNotFound, "resource not found", err.Error())

	default:
		return err
	}
}

func (s *server) sendError(c *fiber.Ctx, status int, name, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   name,
		"message": message,
	})
}
