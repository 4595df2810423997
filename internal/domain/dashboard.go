package domain

import "time"

// DashboardStats is the aggregate snapshot shown on the landing page.
type DashboardStats struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalRooms     int     `json:"totalRooms"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	TotalContracts int     `json:"totalContracts"`
	MonthlyRevenue int64   `json:"monthlyRevenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

// Activity is a recent-change feed entry.
type Activity struct {
	ID         int       `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

// MonthlyRevenue is one month of a yearly revenue series.
type MonthlyRevenue struct {
	Month   int   `json:"month"`
	Revenue int64 `json:"revenue"`
}
