package mockserver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func queryTime(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return t, nil
}

func (s *Server) listSchedules(c *fiber.Ctx) error {
	from, err := queryTime(c, "startDate")
	if err != nil {
		return err
	}
	to, err := queryTime(c, "endDate")
	if err != nil {
		return err
	}
	out, err := s.store.ListSchedules(c.UserContext(), from, to)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) getSchedule(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetSchedule(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createSchedule(c *fiber.Ctx) error {
	var in domain.ScheduleInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Schedule(in); err != nil {
		return err
	}
	out, err := s.store.CreateSchedule(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updateSchedule(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.SchedulePatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.SchedulePatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdateSchedule(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deleteSchedule(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteSchedule(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
