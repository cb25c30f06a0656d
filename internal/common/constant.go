// Package common contains constants and small helpers shared by the
// CalamaUnido client and the sandbox API.
package common

const (
	// AuthorizationHeaderName carries the bearer access token.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "

	// AccessTokenKey is the secure-storage key of the access token.
	AccessTokenKey = "accessToken"

	// RefreshTokenKey is the secure-storage key of the refresh token.
	RefreshTokenKey = "refreshToken"
)
