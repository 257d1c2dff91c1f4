package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto con su referencia de categoría ya resuelta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, product_code, category_name, category_id, location, quantity, batch_date, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.ProductCode, product.CategoryName, product.CategoryID,
		product.Location, product.Quantity, product.BatchDate, product.ExpiryDate,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, product_code, category_name, category_id, location, quantity, batch_date, expiry_date, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.ProductCode, &p.CategoryName, &p.CategoryID,
		&p.Location, &p.Quantity, &p.BatchDate, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, product_code, category_name, category_id, location, quantity, batch_date, expiry_date, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	return r.queryList(query)
}

// ListByCategoryName lista los productos cuyo category_name coincide exactamente con el filtro.
func (r *ProductRepo) ListByCategoryName(categoryName string) ([]*entity.Product, error) {
	query := `
		SELECT id, name, product_code, category_name, category_id, location, quantity, batch_date, expiry_date, created_at, updated_at
		FROM products WHERE category_name = $1 ORDER BY created_at DESC`
	return r.queryList(query, categoryName)
}

func (r *ProductRepo) queryList(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.ProductCode, &p.CategoryName, &p.CategoryID,
			&p.Location, &p.Quantity, &p.BatchDate, &p.ExpiryDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobrescribe el registro completo del producto (el caso de uso ya
// fusionó los campos parciales sobre el registro existente).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, product_code = $3, category_name = $4, category_id = $5, location = $6, quantity = $7, batch_date = $8, expiry_date = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.ProductCode, product.CategoryName, product.CategoryID,
		product.Location, product.Quantity, product.BatchDate, product.ExpiryDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Idempotente.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
