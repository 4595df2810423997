package mockserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) dashboardStats(c *fiber.Ctx) error {
	out, err := s.store.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) dashboardActivities(c *fiber.Ctx) error {
	out, err := s.store.Activities(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return err
	}
	return ok(c, out)
}

func (s *Server) dashboardRevenue(c *fiber.Ctx) error {
	out, err := s.store.Revenue(c.UserContext(), c.QueryInt("year", time.Now().Year()))
	if err != nil {
		return err
	}
	return ok(c, out)
}
