package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDuplicateCategory = errors.New("la categoría ya existe")
	ErrDuplicateUser     = errors.New("el usuario o email ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidDateOrder  = errors.New("la fecha de lote debe ser anterior a la de vencimiento")
	ErrPastBatchDate     = errors.New("la fecha de lote no puede estar en el pasado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
)

// MissingFieldError indica el primer campo requerido ausente o vacío.
// La validación corta en el primer fallo en orden de declaración; no acumula.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo requerido: %s", e.Field)
}

// AsMissingField devuelve el error tipado si err es un MissingFieldError.
func AsMissingField(err error) (*MissingFieldError, bool) {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return mf, true
	}
	return nil, false
}
