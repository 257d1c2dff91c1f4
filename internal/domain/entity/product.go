package entity

import "time"

// Product representa un ítem del inventario con lote y vencimiento.
//
// CategoryID es una referencia cacheada: se resuelve por nombre al escribir y
// no se reconcilia si la categoría se renombra o elimina después. Puede valer
// CategoryUnresolved si el nombre no coincidió con ninguna categoría.
type Product struct {
	ID           string
	Name         string
	ProductCode  string // identificador externo suministrado por el usuario; no se exige único
	CategoryName string
	CategoryID   string
	Location     string
	Quantity     int       // unidades en existencia, >= 0
	BatchDate    time.Time // fecha de lote (granularidad de día)
	ExpiryDate   time.Time // fecha de vencimiento (granularidad de día)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
