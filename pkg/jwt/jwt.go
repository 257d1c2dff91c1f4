package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Usos válidos de un token. Un token de acceso no sirve para resetear la
// contraseña y viceversa.
const (
	UseAccess = "access"
	UseReset  = "reset"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// TokenUse distingue tokens de sesión de tokens de recuperación de contraseña.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	TokenUse string `json:"token_use"` // "access" | "reset"
}

// Generate genera un token JWT de acceso firmado con HS256 para el usuario indicado.
func Generate(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, issuer, UseAccess, expMinutes)
}

// GenerateReset genera un token de recuperación de contraseña de vida corta.
func GenerateReset(secret, userID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, issuer, UseReset, expMinutes)
}

func generate(secret, userID, issuer, use string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:   userID,
		TokenUse: use,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de acceso y devuelve el userID.
// Retorna error si el token es inválido, expirado, tiene firma incorrecta o no es de acceso.
func Parse(secret, tokenString string) (string, error) {
	return parse(secret, tokenString, UseAccess)
}

// ParseReset valida un token de recuperación de contraseña y devuelve el userID.
func ParseReset(secret, tokenString string) (string, error) {
	return parse(secret, tokenString, UseReset)
}

func parse(secret, tokenString, use string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("claims inválidos")
	}
	// Tokens emitidos antes de introducir token_use se tratan como de acceso.
	tokenUse := claims.TokenUse
	if tokenUse == "" {
		tokenUse = UseAccess
	}
	if tokenUse != use {
		return "", fmt.Errorf("uso de token inesperado: %s", tokenUse)
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	return userID, nil
}
