package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) listContracts(c *fiber.Ctx) error {
	page, err := s.store.ListContracts(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("limit", 10), c.Query("status"))
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"contracts":  page.Items,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}

func (s *Server) getContract(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetContract(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createContract(c *fiber.Ctx) error {
	var in domain.ContractInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Contract(in); err != nil {
		return err
	}
	out, err := s.store.CreateContract(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updateContract(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.ContractPatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.ContractPatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdateContract(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deleteContract(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteContract(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
