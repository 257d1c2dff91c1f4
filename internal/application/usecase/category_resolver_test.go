package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/usecase"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
)

func TestCategoryResolver_CategoriaExistente(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos"},
		{ID: "cat-2", Name: "Granos"},
	}}
	resolver := usecase.NewCategoryResolver(repo)

	id, err := resolver.Resolve("Granos")
	require.NoError(t, err)
	assert.Equal(t, "cat-2", id)
}

// Sin coincidencia devuelve el centinela, nunca un error: la creación de
// productos no se bloquea por una categoría inexistente.
func TestCategoryResolver_CategoriaInexistente_DevuelveCentinela(t *testing.T) {
	repo := &memCategoryRepo{}
	resolver := usecase.NewCategoryResolver(repo)

	id, err := resolver.Resolve("NoExiste")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryUnresolved, id)
}

func TestCategoryResolver_NombreVacio_OmiteBusqueda(t *testing.T) {
	// failWith garantiza que con nombre vacío no se consulta el almacén.
	repo := &memCategoryRepo{failWith: errors.New("no debe consultarse")}
	resolver := usecase.NewCategoryResolver(repo)

	id, err := resolver.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryUnresolved, id)
}

// La búsqueda es exacta y sensible a mayúsculas.
func TestCategoryResolver_SensibleAMayusculas(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos"},
	}}
	resolver := usecase.NewCategoryResolver(repo)

	id, err := resolver.Resolve("lácteos")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryUnresolved, id)
}

func TestCategoryResolver_FalloDelAlmacen_Propaga(t *testing.T) {
	repo := &memCategoryRepo{failWith: errors.New("conexión perdida")}
	resolver := usecase.NewCategoryResolver(repo)

	_, err := resolver.Resolve("Lácteos")
	assert.Error(t, err)
}
