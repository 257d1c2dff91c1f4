package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Resumen derivado del listado completo; se recalcula en cada consulta.
type DashboardSummaryDTO struct {
	TotalProducts     int `json:"total_products"`
	TotalCategories   int `json:"total_categories"`
	LowStockCount     int `json:"low_stock_count"`     // productos con cantidad < 10
	ExpiringSoonCount int `json:"expiring_soon_count"` // productos que vencen en <= 30 días
}
