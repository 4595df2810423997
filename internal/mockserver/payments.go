package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) listPayments(c *fiber.Ctx) error {
	page, err := s.store.ListPayments(c.UserContext(),
		c.QueryInt("page", 1), c.QueryInt("limit", 10), c.QueryInt("contractId"))
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{
		"payments":   page.Items,
		"total":      page.Total,
		"page":       page.Page,
		"totalPages": page.TotalPages,
	})
}

func (s *Server) getPayment(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetPayment(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createPayment(c *fiber.Ctx) error {
	var in domain.PaymentInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Payment(in); err != nil {
		return err
	}
	out, err := s.store.CreatePayment(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updatePayment(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.PaymentPatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.PaymentPatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdatePayment(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deletePayment(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeletePayment(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
