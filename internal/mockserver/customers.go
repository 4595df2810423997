package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) listCustomers(c *fiber.Ctx) error {
	page, err := s.store.ListCustomers(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("limit", 10), c.Query("search"))
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"customers":  page.Items,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}

func (s *Server) getCustomer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetCustomer(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createCustomer(c *fiber.Ctx) error {
	var in domain.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Customer(in); err != nil {
		return err
	}
	out, err := s.store.CreateCustomer(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updateCustomer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.CustomerPatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.CustomerPatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdateCustomer(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deleteCustomer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteCustomer(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
