package inventory

import (
	"time"

	"github.com/tu-usuario/inventory-track/internal/domain/entity"
)

// Umbrales del dashboard.
const (
	LowStockThreshold = 10 // unidades; stock bajo es cantidad < 10
	ExpiringSoonDays  = 30 // días; por vencer es expiry <= hoy + 30
)

// Stats resumen derivado del listado completo de productos y categorías.
type Stats struct {
	TotalProducts     int
	TotalCategories   int
	LowStockCount     int
	ExpiringSoonCount int
}

// ComputeStats calcula las estadísticas del dashboard. Proyección pura de
// solo lectura: se recalcula en cada consulta, sin caché ni invalidación.
func ComputeStats(products []*entity.Product, categories []*entity.Category, today time.Time) Stats {
	s := Stats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
	}
	cutoff := DateOnly(today).AddDate(0, 0, ExpiringSoonDays)
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			s.LowStockCount++
		}
		// El límite es inclusivo: un producto que vence exactamente en
		// hoy+30 días cuenta como por vencer.
		if !DateOnly(p.ExpiryDate).After(cutoff) {
			s.ExpiringSoonCount++
		}
	}
	return s
}
