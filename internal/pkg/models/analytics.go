package models

// AnalyticsSummary is the admin dashboard aggregate served by the
// backend analytics endpoint.
type AnalyticsSummary struct {
	TotalOrders    int            `json:"totalOrders"`
	TotalRevenue   float64        `json:"totalRevenue"`
	PendingOrders  int            `json:"pendingOrders"`
	OrdersByStatus map[string]int `json:"ordersByStatus,omitempty"`
	TopProducts    []Product      `json:"topProducts,omitempty"`
}
