package dto

import "time"

// CreateProductRequest entrada para crear un producto.
// Las fechas viajan como strings YYYY-MM-DD. Quantity es puntero para
// distinguir "cero" de "ausente" en la validación de campos requeridos.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ProductCode  string `json:"product_code" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Quantity     *int   `json:"quantity" validate:"required,min=0"`
	BatchDate    string `json:"batch_date" validate:"required"`
	ExpiryDate   string `json:"expiry_date" validate:"required"`
}

// UpdateProductRequest entrada para actualización parcial de un producto.
// Los campos nil se conservan del registro existente.
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ProductCode  *string `json:"product_code"`
	CategoryName *string `json:"category_name"`
	Location     *string `json:"location"`
	Quantity     *int    `json:"quantity" validate:"omitempty,min=0"`
	BatchDate    *string `json:"batch_date"`
	ExpiryDate   *string `json:"expiry_date"`
}

// ProductResponse salida de un producto. CategoryID puede ser el centinela
// "unresolved" si el nombre de categoría no coincidió con ninguna existente.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProductCode  string    `json:"product_code"`
	CategoryName string    `json:"category_name"`
	CategoryID   string    `json:"category_id"`
	Location     string    `json:"location"`
	Quantity     int       `json:"quantity"`
	BatchDate    string    `json:"batch_date"`
	ExpiryDate   string    `json:"expiry_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
