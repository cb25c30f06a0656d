// Package auth issues and verifies the sandbox's HS256 JWTs.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the Kind claim.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims are the registered claims plus the RUT the token was issued to
// and whether it is an access or refresh token.
type Claims struct {
	jwt.RegisteredClaims
	RUT  string `json:"rut"`
	Kind string `json:"kind"`
}

// Pair is what the token endpoint hands out.
type Pair struct {
	Access  string
	Refresh string
}

// GenerateToken signs a token of kind for rut. Each token gets a random ID.
func GenerateToken(rut, kind string, secretKey []byte, validityDuration time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", fmt.Errorf("token id: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   rut,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		RUT:  rut,
		Kind: kind,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GeneratePair signs an access and a refresh token for rut.
func GeneratePair(rut string, secretKey []byte, accessTTL, refreshTTL time.Duration) (Pair, error) {
	access, err := GenerateToken(rut, KindAccess, secretKey, accessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("access token: %w", err)
	}
	refresh, err := GenerateToken(rut, KindRefresh, secretKey, refreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("refresh token: %w", err)
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// GetRUTFromToken verifies tokenString and returns its RUT. A token of a
// different kind than want is rejected with ErrInvalidToken.
func GetRUTFromToken(tokenString string, secretKey []byte, want string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Kind != want || claims.RUT == "" {
		return "", ErrInvalidToken
	}

	return claims.RUT, nil
}
