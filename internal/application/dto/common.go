package dto

import (
	"fmt"
	"time"
)

// DateLayout formato de fechas calendario en la API (sin hora).
const DateLayout = "2006-01-02"

// ParseDate parsea una fecha calendario del formato de la API.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (formato esperado %s)", s, DateLayout)
	}
	return t, nil
}

// FormatDate serializa una fecha calendario al formato de la API.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación para operaciones sin payload de retorno.
type MessageResponse struct {
	Message string `json:"message"`
}
