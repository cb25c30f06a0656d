package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("12345678-5", KindAccess, secret, time.Hour)
	require.NoError(t, err)

	rut, err := GetRUTFromToken(tok, secret, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, "12345678-5", rut)
}

func TestGetRUTFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("1-9", KindAccess, secret, -1*time.Second)
	require.NoError(t, err)

	_, err = GetRUTFromToken(tok, secret, KindAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGetRUTFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("1-9", KindAccess, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = GetRUTFromToken(tok, []byte("wrong-secret"), KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetRUTFromToken_WrongKind(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	pair, err := GeneratePair("1-9", secret, time.Hour, time.Hour)
	require.NoError(t, err)

	_, err = GetRUTFromToken(pair.Refresh, secret, KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	rut, err := GetRUTFromToken(pair.Refresh, secret, KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, "1-9", rut)
}

func TestGetRUTFromToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RUT: "1-9", Kind: KindAccess})
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = GetRUTFromToken(tok, []byte("secret"), KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetRUTFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := GetRUTFromToken("not.a.jwt", []byte("secret"), KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	a, err := GenerateToken("1-9", KindAccess, secret, time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken("1-9", KindAccess, secret, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
