package usecase_test

import (
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// Repositorios en memoria para los tests de casos de uso. Implementan los
// puertos de dominio; failWith permite simular fallos del almacén.

var (
	_ repository.CategoryRepository = (*memCategoryRepo)(nil)
	_ repository.ProductRepository  = (*memProductRepo)(nil)
)

type memCategoryRepo struct {
	categories []*entity.Category
	failWith   error
}

func (r *memCategoryRepo) Create(category *entity.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	c := *category
	r.categories = append(r.categories, &c)
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, c := range r.categories {
		if c.ID == id {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, c := range r.categories {
		if c.Name == name {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]*entity.Category(nil), r.categories...), nil
}

func (r *memCategoryRepo) Update(category *entity.Category) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, c := range r.categories {
		if c.ID == category.ID {
			copia := *category
			r.categories[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCategoryRepo) Delete(id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	kept := r.categories[:0]
	for _, c := range r.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.categories = kept
	return nil
}

type memProductRepo struct {
	products []*entity.Product
	failWith error
}

func (r *memProductRepo) Create(product *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	p := *product
	r.products = append(r.products, &p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, p := range r.products {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]*entity.Product(nil), r.products...), nil
}

func (r *memProductRepo) ListByCategoryName(categoryName string) ([]*entity.Product, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var list []*entity.Product
	for _, p := range r.products {
		if p.CategoryName == categoryName {
			copia := *p
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	if r.failWith != nil {
		return r.failWith
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			copia := *product
			r.products[i] = &copia
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Delete(id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}
