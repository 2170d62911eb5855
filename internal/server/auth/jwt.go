// Package auth issues and verifies the HS256 access tokens the console
// presents, and hashes account passwords.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvillarroel/actifijo/internal/common"
)

// Claims carries the identity the console renders and the tenant id every
// request is scoped to.
type Claims struct {
	jwt.RegisteredClaims
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	NombreCompleto string   `json:"nombre_completo"`
	EmpresaID      int64    `json:"empresa_id"`
	EmpresaNombre  string   `json:"empresa_nombre"`
	Roles          []string `json:"roles"`
	IsAdmin        bool     `json:"is_admin"`
}

// Identity is the token subject before signing.
type Identity struct {
	Username       string
	Email          string
	NombreCompleto string
	EmpresaID      int64
	EmpresaNombre  string
	Roles          []string
	IsAdmin        bool
}

// GenerateToken signs an access token for id valid for validityDuration.
func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Username:       id.Username,
		Email:          id.Email,
		NombreCompleto: id.NombreCompleto,
		EmpresaID:      id.EmpresaID,
		EmpresaNombre:  id.EmpresaNombre,
		Roles:          id.Roles,
		IsAdmin:        id.IsAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
