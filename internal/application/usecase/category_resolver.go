package usecase

import (
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// CategoryResolver resuelve un nombre de categoría al ID del registro que
// coincide exactamente (sensible a mayúsculas, máximo una fila).
//
// Política leniente: si no hay coincidencia, devuelve el centinela
// entity.CategoryUnresolved en lugar de fallar, para que la creación de un
// producto nunca se bloquee por una categoría inexistente. La referencia
// resuelta queda cacheada en el producto y no se reconcilia después.
type CategoryResolver struct {
	repo repository.CategoryRepository
}

// NewCategoryResolver construye el resolver.
func NewCategoryResolver(repo repository.CategoryRepository) *CategoryResolver {
	return &CategoryResolver{repo: repo}
}

// Resolve devuelve el ID de la categoría con ese nombre, o el centinela si no
// existe. Con nombre vacío se omite la búsqueda y se usa el centinela directo.
// Solo retorna error ante un fallo del almacén, nunca por ausencia.
func (r *CategoryResolver) Resolve(categoryName string) (string, error) {
	if categoryName == "" {
		return entity.CategoryUnresolved, nil
	}
	category, err := r.repo.GetByName(categoryName)
	if err != nil {
		return "", err
	}
	if category == nil {
		return entity.CategoryUnresolved, nil
	}
	return category.ID, nil
}
