package domain

// DashboardStats is the admin overview aggregate.
type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalRequests   int64 `json:"totalRequests"`
	TotalFundsCents int64 `json:"totalFundsCents"`
}
