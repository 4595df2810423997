// Package mockserver exposes the mock engine over HTTP so the client
// can be pointed at a real network hop during development. It is a
// stand-in for the backend, not an implementation of it.
package mockserver

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomdesk/internal/domain"
	"roomdesk/internal/mock"
	"roomdesk/internal/validation"
)

const ctxUserKey = "user"

// Server wraps a fiber app over a mock.Store.
type Server struct {
	store  *mock.Store
	logger *zap.Logger
	app    *fiber.App
}

// New builds the app and registers every route. Auth routes are
// public; everything else sits behind the bearer middleware.
func New(store *mock.Store, logger *zap.Logger) *Server {
	s := &Server{store: store, logger: logger}

	app := fiber.New(fiber.Config{
		AppName:               "roomdesk-mock",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(s.logRequests)

	api := app.Group("/api")
	api.Post("/auth/login", s.login)

	protected := api.Group("", s.requireAuth)
	protected.Post("/auth/logout", s.logout)
	protected.Get("/auth/profile", s.profile)

	protected.Get("/customers", s.listCustomers)
	protected.Get("/customers/:id", s.getCustomer)
	protected.Post("/customers", s.createCustomer)
	protected.Put("/customers/:id", s.updateCustomer)
	protected.Delete("/customers/:id", s.deleteCustomer)

	protected.Get("/rooms", s.listRooms)
	protected.Get("/rooms/:id", s.getRoom)
	protected.Post("/rooms", s.createRoom)
	protected.Put("/rooms/:id", s.updateRoom)
	protected.Delete("/rooms/:id", s.deleteRoom)

	protected.Get("/contracts", s.listContracts)
	protected.Get("/contracts/:id", s.getContract)
	protected.Post("/contracts", s.createContract)
	protected.Put("/contracts/:id", s.updateContract)
	protected.Delete("/contracts/:id", s.deleteContract)

	protected.Get("/branches", s.listBranches)
	protected.Get("/branches/:id", s.getBranch)
	protected.Post("/branches", s.createBranch)
	protected.Put("/branches/:id", s.updateBranch)
	protected.Delete("/branches/:id", s.deleteBranch)

	protected.Get("/payments", s.listPayments)
	protected.Get("/payments/:id", s.getPayment)
	protected.Post("/payments", s.createPayment)
	protected.Put("/payments/:id", s.updatePayment)
	protected.Delete("/payments/:id", s.deletePayment)

	protected.Get("/schedules", s.listSchedules)
	protected.Get("/schedules/:id", s.getSchedule)
	protected.Post("/schedules", s.createSchedule)
	protected.Put("/schedules/:id", s.updateSchedule)
	protected.Delete("/schedules/:id", s.deleteSchedule)

	protected.Get("/dashboard/stats", s.dashboardStats)
	protected.Get("/dashboard/activities", s.dashboardActivities)
	protected.Get("/dashboard/revenue", s.dashboardRevenue)

	s.app = app
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on addr.
func (s *Server) Listen(addr string) error {
	s.logger.Info("mock server listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the app gracefully.
func (s *Server) Shutdown() error { return s.app.Shutdown() }

func (s *Server) logRequests(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Request-ID", id)

	start := time.Now()
	err := c.Next()
	s.logger.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("request_id", id),
	)
	return err
}

// requireAuth resolves the bearer token against the store and stashes
// the user for handlers down the chain.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return fail(c, fiber.StatusUnauthorized, "missing bearer token")
	}
	user, err := s.store.Profile(c.UserContext(), parts[1])
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "unauthenticated")
	}
	c.Locals(ctxUserKey, user)
	return c.Next()
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return fail(c, fiber.StatusBadRequest, verrs.Error())
	}
	var derr *domain.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case domain.KindAuth:
			return fail(c, fiber.StatusUnauthorized, derr.Error())
		case domain.KindNotFound:
			return fail(c, fiber.StatusNotFound, derr.Error())
		case domain.KindConflict:
			return fail(c, fiber.StatusConflict, derr.Error())
		}
		return fail(c, fiber.StatusInternalServerError, derr.Error())
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return fail(c, ferr.Code, ferr.Message)
	}
	s.logger.Error("unhandled error", zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "internal error")
}

func pathID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
