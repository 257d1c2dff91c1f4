package entity

import "time"

// CategoryUnresolved es el ID centinela que recibe un producto cuando su
// categoría no pudo resolverse por nombre. La creación del producto no se
// bloquea por una categoría inexistente.
const CategoryUnresolved = "unresolved"

// Category representa una categoría de productos.
// Name es único entre las categorías vivas (comparación exacta, sensible a mayúsculas).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
