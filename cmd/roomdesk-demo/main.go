// roomdesk-demo wires the whole data layer together: config, token
// store, client (mock or HTTP), session, and a few resources. It logs
// in, waits for the session to settle, and prints what a dashboard
// view would render.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"roomdesk/internal/client"
	"roomdesk/internal/config"
	"roomdesk/internal/domain"
	"roomdesk/internal/fetch"
	"roomdesk/internal/hooks"
	"roomdesk/internal/logger"
	"roomdesk/internal/session"
)

func main() {
	userID := flag.String("user", "admin", "login id")
	password := flag.String("password", "admin", "login password")
	remember := flag.Bool("remember", false, "persist the login id")
	flag.Parse()

	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, "roomdesk-demo")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	tokens, err := client.NewTokenStore(cfg.StateDir)
	if err != nil {
		zl.Fatal("token store", zap.Error(err))
	}

	api := client.New(cfg, tokens, zl)
	sess := session.NewManager(api, tokens, zl)
	defer sess.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for sess.Snapshot().Loading {
		time.Sleep(10 * time.Millisecond)
	}

	if !sess.Snapshot().Authenticated {
		user, err := sess.Login(ctx, domain.LoginInput{
			UserID:   *userID,
			Password: *password,
			Remember: *remember,
		})
		if err != nil {
			zl.Fatal("login failed", zap.Error(err))
		}
		zl.Info("logged in", zap.String("name", user.Name), zap.String("role", user.Role))
	} else {
		zl.Info("session restored", zap.String("name", sess.Snapshot().User.Name))
	}

	stats := hooks.DashboardStats(api)
	customers := hooks.Customers(api, 1, hooks.DefaultPageSize, "")
	rooms := hooks.Rooms(api, 1, hooks.DefaultRoomsPageSize, nil)
	defer stats.Close()
	defer customers.Close()
	defer rooms.Close()

	if s := await(stats); s.HasData {
		d := s.Data
		fmt.Printf("customers=%d rooms=%d contracts=%d revenue=%d occupancy=%.0f%%\n",
			d.TotalCustomers, d.TotalRooms, d.TotalContracts, d.MonthlyRevenue, d.OccupancyRate)
	}
	if s := await(customers); s.HasData {
		for _, c := range s.Data.Items {
			fmt.Printf("customer #%d %s %s\n", c.ID, c.Name, c.Phone)
		}
	}
	if s := await(rooms); s.HasData {
		for _, r := range s.Data.Items {
			fmt.Printf("room #%d %s floor=%d available=%v\n", r.ID, r.RoomNumber, r.Floor, r.IsAvailable)
		}
	}
}

func await[T any](r *fetch.Resource[T]) fetch.State[T] {
	for {
		s := r.Snapshot()
		if !s.Loading {
			if s.Err != "" {
				fmt.Println("error:", s.Err)
			}
			return s
		}
		time.Sleep(10 * time.Millisecond)
	}
}
