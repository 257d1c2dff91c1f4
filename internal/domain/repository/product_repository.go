package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListByCategoryName(categoryName string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
