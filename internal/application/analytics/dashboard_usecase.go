// Package analytics contiene el caso de uso del resumen del dashboard de
// inventario.
package analytics

import (
	"fmt"
	"time"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/inventory"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// DashboardUseCase genera el resumen del inventario: totales, stock bajo y
// productos por vencer. Proyección de solo lectura sobre el listado completo;
// se recalcula en cada consulta, independiente de las escrituras.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las dos lecturas van en paralelo; el cálculo en sí es puro
// (inventory.ComputeStats) y se testea por separado.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type categoriesResult struct {
		list []*entity.Category
		err  error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		list, err := uc.productRepo.List()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.categoryRepo.List()
		categoriesCh <- categoriesResult{list, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: listar categorías: %w", categories.err)
	}

	stats := inventory.ComputeStats(products.list, categories.list, time.Now())

	return &dto.DashboardSummaryDTO{
		TotalProducts:     stats.TotalProducts,
		TotalCategories:   stats.TotalCategories,
		LowStockCount:     stats.LowStockCount,
		ExpiringSoonCount: stats.ExpiringSoonCount,
	}, nil
}
