package mockserver

import (
	"github.com/gofiber/fiber/v2"

	"roomdesk/internal/domain"
	"roomdesk/internal/validation"
)

func (s *Server) listBranches(c *fiber.Ctx) error {
	out, err := s.store.ListBranches(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) getBranch(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := s.store.GetBranch(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) createBranch(c *fiber.Ctx) error {
	var in domain.BranchInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.Branch(in); err != nil {
		return err
	}
	out, err := s.store.CreateBranch(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) updateBranch(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p domain.BranchPatch
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := validation.BranchPatch(p); err != nil {
		return err
	}
	out, err := s.store.UpdateBranch(c.UserContext(), id, p)
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) deleteBranch(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBranch(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, nil)
}
