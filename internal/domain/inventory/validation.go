// Package inventory contiene las reglas puras del inventario: validación de
// fechas y campos requeridos, y la proyección de estadísticas del dashboard.
package inventory

import (
	"time"

	"github.com/tu-usuario/inventory-track/internal/domain"
)

// DateOnly trunca un instante a su día calendario, normalizado a UTC. Todas
// las comparaciones de fechas del inventario son a granularidad de día; la
// normalización hace que comparar una fecha parseada del payload (UTC) contra
// time.Now() (zona local) compare días calendario y no instantes.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateProductDates verifica el orden de las fechas de un producto.
// Falla con ErrInvalidDateOrder si batch >= expiry y con ErrPastBatchDate si
// batch es anterior al día de today. Una fecha de lote de exactamente "hoy"
// siempre es válida.
func ValidateProductDates(batch, expiry, today time.Time) error {
	b := DateOnly(batch)
	e := DateOnly(expiry)
	d := DateOnly(today)

	if !b.Before(e) {
		return domain.ErrInvalidDateOrder
	}
	if b.Before(d) {
		return domain.ErrPastBatchDate
	}
	return nil
}

// ValidateExpiryAfterBatch verifica solo el orden batch < expiry, sin la regla
// de pasado. Se usa en actualizaciones: una fecha de lote antigua ya
// almacenada no se vuelve inválida retroactivamente.
func ValidateExpiryAfterBatch(batch, expiry time.Time) error {
	if !DateOnly(batch).Before(DateOnly(expiry)) {
		return domain.ErrInvalidDateOrder
	}
	return nil
}

// RequiredField par nombre/valor para validación de presencia.
type RequiredField struct {
	Name  string
	Value string
}

// ValidateRequired devuelve MissingFieldError para el primer campo vacío, en
// el orden recibido. Corta en el primer fallo en lugar de acumular todos los
// errores; el comportamiento parcial es intencional.
func ValidateRequired(fields ...RequiredField) error {
	for _, f := range fields {
		if f.Value == "" {
			return &domain.MissingFieldError{Field: f.Name}
		}
	}
	return nil
}
