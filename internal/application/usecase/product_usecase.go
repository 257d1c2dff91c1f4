package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/inventory"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Antes de escribir compone
// la validación de dominio (campos requeridos, reglas de fechas) con la
// resolución de categoría por nombre.
type ProductUseCase struct {
	repo     repository.ProductRepository
	resolver *CategoryResolver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, resolver *CategoryResolver) *ProductUseCase {
	return &ProductUseCase{repo: repo, resolver: resolver}
}

// Create crea un nuevo producto. Valida en orden: campos requeridos (corta en
// el primero ausente), parseo y reglas de fechas, y por último resuelve la
// categoría. El primer error detiene la operación sin escribir nada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := inventory.ValidateRequired(
		inventory.RequiredField{Name: "name", Value: in.Name},
		inventory.RequiredField{Name: "product_code", Value: in.ProductCode},
		inventory.RequiredField{Name: "category_name", Value: in.CategoryName},
		inventory.RequiredField{Name: "location", Value: in.Location},
	); err != nil {
		return nil, err
	}
	if in.Quantity == nil {
		return nil, &domain.MissingFieldError{Field: "quantity"}
	}
	if err := inventory.ValidateRequired(
		inventory.RequiredField{Name: "batch_date", Value: in.BatchDate},
		inventory.RequiredField{Name: "expiry_date", Value: in.ExpiryDate},
	); err != nil {
		return nil, err
	}
	if *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity debe ser >= 0", domain.ErrInvalidInput)
	}
	batchDate, err := dto.ParseDate(in.BatchDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	expiryDate, err := dto.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := inventory.ValidateProductDates(batchDate, expiryDate, time.Now()); err != nil {
		return nil, err
	}
	categoryID, err := uc.resolver.Resolve(in.CategoryName)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ProductCode:  in.ProductCode,
		CategoryName: in.CategoryName,
		CategoryID:   categoryID,
		Location:     in.Location,
		Quantity:     *in.Quantity,
		BatchDate:    batchDate,
		ExpiryDate:   expiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos. Con filtro no vacío devuelve solo los productos cuyo
// category_name coincide exactamente; con filtro vacío, todos.
func (uc *ProductUseCase) List(categoryNameFilter string) ([]dto.ProductResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if categoryNameFilter != "" {
		list, err = uc.repo.ListByCategoryName(categoryNameFilter)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial. Fusiona el payload sobre el
// registro almacenado y valida el registro efectivo resultante: el orden de
// fechas se re-verifica siempre sobre el par fusionado; la regla de fecha de
// lote en el pasado solo aplica cuando el payload trae batch_date (una fecha
// antigua ya almacenada no se vuelve inválida retroactivamente). La categoría
// se re-resuelve solo si el payload trae category_name.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, &domain.MissingFieldError{Field: "name"}
		}
		product.Name = *in.Name
	}
	if in.ProductCode != nil {
		if *in.ProductCode == "" {
			return nil, &domain.MissingFieldError{Field: "product_code"}
		}
		product.ProductCode = *in.ProductCode
	}
	if in.Location != nil {
		if *in.Location == "" {
			return nil, &domain.MissingFieldError{Field: "location"}
		}
		product.Location = *in.Location
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity debe ser >= 0", domain.ErrInvalidInput)
		}
		product.Quantity = *in.Quantity
	}

	batchSupplied := in.BatchDate != nil
	if batchSupplied {
		batchDate, err := dto.ParseDate(*in.BatchDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		product.BatchDate = batchDate
	}
	if in.ExpiryDate != nil {
		expiryDate, err := dto.ParseDate(*in.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		product.ExpiryDate = expiryDate
	}

	// Validar el registro efectivo, no solo los campos del payload.
	if batchSupplied {
		if err := inventory.ValidateProductDates(product.BatchDate, product.ExpiryDate, time.Now()); err != nil {
			return nil, err
		}
	} else {
		if err := inventory.ValidateExpiryAfterBatch(product.BatchDate, product.ExpiryDate); err != nil {
			return nil, err
		}
	}

	if in.CategoryName != nil {
		if *in.CategoryName == "" {
			return nil, &domain.MissingFieldError{Field: "category_name"}
		}
		categoryID, err := uc.resolver.Resolve(*in.CategoryName)
		if err != nil {
			return nil, err
		}
		product.CategoryName = *in.CategoryName
		product.CategoryID = categoryID
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Idempotente.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		ProductCode:  p.ProductCode,
		CategoryName: p.CategoryName,
		CategoryID:   p.CategoryID,
		Location:     p.Location,
		Quantity:     p.Quantity,
		BatchDate:    dto.FormatDate(p.BatchDate),
		ExpiryDate:   dto.FormatDate(p.ExpiryDate),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
