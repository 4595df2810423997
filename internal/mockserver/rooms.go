package mockserver

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) listRooms(c *fiber.Ctx) error {
	var available *bool
	if raw := c.Query("available"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid available filter")
		}
		available = &v
	}
	page, err := s.store.ListRooms(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("limit", 12), available)
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"rooms":      page.Items,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}

func (s *Server) getRoom(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetRoom(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createRoom(c *fiber.Ctx) error {
	var in domain.RoomInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Room(in); err != nil {
		return err
	}
	out, err := s.store.CreateRoom(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updateRoom(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.RoomPatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.RoomPatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdateRoom(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deleteRoom(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteRoom(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
