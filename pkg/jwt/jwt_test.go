package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-track/pkg/jwt"
)

const secret = "secreto-de-test"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "inventory-track", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate(secret, "user-1", "inventory-track", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := jwt.Generate(secret, "user-1", "inventory-track", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenMalFormado(t *testing.T) {
	_, err := jwt.Parse(secret, "no.es.un.jwt")
	assert.Error(t, err)
}

// Un token de recuperación no sirve como token de acceso, ni al revés.
func TestParse_RechazaTokenDeReset(t *testing.T) {
	reset, err := jwt.GenerateReset(secret, "user-1", "inventory-track", 15)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, reset)
	assert.Error(t, err)

	userID, err := jwt.ParseReset(secret, reset)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseReset_RechazaTokenDeAcceso(t *testing.T) {
	access, err := jwt.Generate(secret, "user-1", "inventory-track", 60)
	require.NoError(t, err)

	_, err = jwt.ParseReset(secret, access)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "inventory-track", 60)
	assert.Error(t, err)
}
