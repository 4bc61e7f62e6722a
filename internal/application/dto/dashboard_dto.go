package dto

// DashboardResponse resumen de la tienda del comerciante.
type DashboardResponse struct {
	Store            StoreResponse     `json:"store"`
	TotalProducts    int               `json:"totalProducts"`
	ActiveProducts   int               `json:"activeProducts"`
	LowStockCount    int               `json:"lowStockCount"`
	LowStockProducts []ProductResponse `json:"lowStockProducts"`
	Visits           int64             `json:"visits"`
}
