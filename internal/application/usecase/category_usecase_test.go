package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
)

func TestCategoryUseCase_Create(t *testing.T) {
	repo := &memCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Lácteos", Description: "Leche y quesos"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID, "el almacén asigna el ID")
	assert.Equal(t, "Lácteos", out.Name)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryUseCase_Create_NombreDuplicado(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos", Description: "existente"},
	}}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Lácteos", Description: "otra descripción"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
	assert.Len(t, repo.categories, 1, "no debe persistirse nada")
}

// Un nombre distinto (aunque solo difiera en mayúsculas) sí se acepta.
func TestCategoryUseCase_Create_NombreDistinto(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos"},
	}}
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "lácteos", Description: "minúsculas"})
	assert.NoError(t, err)
}

func TestCategoryUseCase_Create_CampoRequerido(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&memCategoryRepo{})

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "", Description: ""})
	mf, ok := domain.AsMissingField(err)
	require.True(t, ok)
	// name se declara antes que description: el corte es en name.
	assert.Equal(t, "name", mf.Field)
}

func TestCategoryUseCase_Update(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos", Description: "vieja"},
	}}
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Update("cat-1", dto.UpdateCategoryRequest{Name: "Refrigerados", Description: "nueva"})
	require.NoError(t, err)
	assert.Equal(t, "Refrigerados", out.Name)
	assert.Equal(t, "nueva", out.Description)
}

func TestCategoryUseCase_Update_NoEncontrada(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&memCategoryRepo{})

	_, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: "X", Description: "Y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar un ID inexistente no es error (idempotente).
func TestCategoryUseCase_Delete_Idempotente(t *testing.T) {
	repo := &memCategoryRepo{categories: []*entity.Category{
		{ID: "cat-1", Name: "Lácteos"},
	}}
	uc := usecase.NewCategoryUseCase(repo)

	require.NoError(t, uc.Delete("cat-1"))
	require.NoError(t, uc.Delete("cat-1"))
	assert.Empty(t, repo.categories)
}
