package mockserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) login(c *fiber.Ctx) error {
	var in domain.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Login(in); err != nil {
		return err
	}
	res, err := s.store.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, res)
}

func (s *Server) logout(c *fiber.Ctx) error {
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if err := s.store.Logout(c.UserContext(), parts[len(parts)-1]); err != nil {
		return err
	}
	return ok(c, nil)
}

func (s *Server) profile(c *fiber.Ctx) error {
	return ok(c, c.Locals(ctxUserKey).(*domain.User))
}
