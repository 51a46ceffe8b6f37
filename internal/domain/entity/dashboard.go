package entity

import "encoding/json"

type DashboardStats struct {
	Stats struct {
		TotalUsers          json.Number `json:"totalUsers"`
		ActiveSubscriptions json.Number `json:"activeSubscriptions"`
		TotalAdvertisements json.Number `json:"totalAdvertisements"`
		TotalRevenue        json.Number `json:"totalRevenue"`
	} `json:"stats"`
	RecentActivities []Activity `json:"recentActivities"`
	Charts struct {
		UserGrowth []struct {
			Month string      `json:"month"`
			Count json.Number `json:"count"`
		} `json:"userGrowth"`
		RevenueTrends []struct {
			Month   string      `json:"month"`
			Revenue json.Number `json:"revenue"`
		} `json:"revenueTrends"`
	} `json:"charts"`
}

type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// Dashboard is what the dashboard page shows: the backend aggregates plus
// the advertisements waiting for review, when that count could be fetched.
type Dashboard struct {
	DashboardStats
	PendingAdvertisements *int
}
