package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/inventory"
)

// fecha arma una fecha calendario para los tests.
func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateProductDates(t *testing.T) {
	today := fecha(2026, time.March, 15)

	tests := []struct {
		name    string
		batch   time.Time
		expiry  time.Time
		wantErr error
	}{
		{
			name:    "lote hoy y vencimiento futuro es válido",
			batch:   today,
			expiry:  fecha(2026, time.March, 25),
			wantErr: nil,
		},
		{
			name:    "lote igual al vencimiento falla por orden",
			batch:   fecha(2026, time.March, 20),
			expiry:  fecha(2026, time.March, 20),
			wantErr: domain.ErrInvalidDateOrder,
		},
		{
			name:    "lote posterior al vencimiento falla por orden",
			batch:   fecha(2026, time.April, 1),
			expiry:  fecha(2026, time.March, 20),
			wantErr: domain.ErrInvalidDateOrder,
		},
		{
			name:    "lote en el pasado falla aunque el orden sea correcto",
			batch:   fecha(2026, time.March, 14),
			expiry:  fecha(2026, time.March, 25),
			wantErr: domain.ErrPastBatchDate,
		},
		{
			// El orden se verifica antes que la regla de pasado: un lote
			// pasado con orden inválido reporta el orden.
			name:    "orden inválido tiene prioridad sobre lote pasado",
			batch:   fecha(2026, time.March, 10),
			expiry:  fecha(2026, time.March, 1),
			wantErr: domain.ErrInvalidDateOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := inventory.ValidateProductDates(tt.batch, tt.expiry, today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// La comparación es a granularidad de día: la hora no cuenta.
func TestValidateProductDates_IgnoraHoraDelDia(t *testing.T) {
	today := time.Date(2026, time.March, 15, 23, 50, 0, 0, time.UTC)
	batch := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	expiry := fecha(2026, time.March, 25)

	// batch es "hoy" aunque su hora sea anterior a la hora actual.
	assert.NoError(t, inventory.ValidateProductDates(batch, expiry, today))
}

func TestValidateExpiryAfterBatch(t *testing.T) {
	assert.NoError(t, inventory.ValidateExpiryAfterBatch(fecha(2020, time.January, 1), fecha(2020, time.February, 1)))
	// La regla de pasado no aplica aquí: una fecha antigua almacenada sigue siendo válida.
	assert.ErrorIs(t,
		inventory.ValidateExpiryAfterBatch(fecha(2020, time.February, 1), fecha(2020, time.February, 1)),
		domain.ErrInvalidDateOrder,
	)
}

func TestValidateRequired_CortaEnElPrimerCampoVacio(t *testing.T) {
	err := inventory.ValidateRequired(
		inventory.RequiredField{Name: "name", Value: "Leche"},
		inventory.RequiredField{Name: "product_code", Value: ""},
		inventory.RequiredField{Name: "location", Value: ""},
	)
	require.Error(t, err)

	mf, ok := domain.AsMissingField(err)
	require.True(t, ok, "debe ser un MissingFieldError")
	// Corta en el primero en orden de declaración, no acumula.
	assert.Equal(t, "product_code", mf.Field)
}

func TestValidateRequired_TodosPresentes(t *testing.T) {
	err := inventory.ValidateRequired(
		inventory.RequiredField{Name: "name", Value: "Leche"},
		inventory.RequiredField{Name: "location", Value: "Nevera1"},
	)
	assert.NoError(t, err)
}
