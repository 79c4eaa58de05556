package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchantkit/paygate/types"
)

var seedPattern = regexp.MustCompile(`^[a-z0-9]+$`)

func TestGenerateSeed_LengthAndAlphabet(t *testing.T) {
	for _, length := range []int{1, 8, 16, 32, 100} {
		seed, err := GenerateSeed(length)
		require.NoError(t, err)
		assert.Len(t, seed, length)
		assert.Regexp(t, seedPattern, seed)
	}
}

func TestGenerateSeed_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -16} {
		_, err := GenerateSeed(length)
		require.Error(t, err)

		var pgErr *types.PaygateError
		require.True(t, errors.As(err, &pgErr))
		assert.Equal(t, types.ErrInvalidArgument, pgErr.Code)
		assert.Equal(t, "length", pgErr.Data)
	}
}

func TestGenerateSeed_FreshPerCall(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.Len(t, a, DefaultSeedLength)
	assert.NotEqual(t, a, b)
}

func TestCreateAuthToken_GoldenVector(t *testing.T) {
	token, err := CreateAuthToken("K", "P", "abc123")
	require.NoError(t, err)

	// Independently computed digest of the concatenation apiKey+seed+apiPin.
	sum := sha256.Sum256([]byte("Kabc123P"))
	assert.Equal(t, "s2/abc123/"+hex.EncodeToString(sum[:]), token)
	assert.Equal(t,
		"s2/abc123/49809bfa0b7b8c4b7eceec89c8416a1cff19064c0a4c7187536a5e9d30eca014",
		token)
}

func TestCreateAuthToken_Deterministic(t *testing.T) {
	first, err := CreateAuthToken("key", "pin", "seedseedseedseed")
	require.NoError(t, err)
	second, err := CreateAuthToken("key", "pin", "seedseedseedseed")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateAuthToken_NamesFirstEmptyField(t *testing.T) {
	tests := []struct {
		name                 string
		apiKey, apiPin, seed string
		wantParam            string
	}{
		{"empty key", "", "pin", "seed", "apiKey"},
		{"blank key", "   ", "pin", "seed", "apiKey"},
		{"empty pin", "key", "", "seed", "apiPin"},
		{"empty seed", "key", "pin", "  ", "seed"},
		{"all empty names key first", "", "", "", "apiKey"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateAuthToken(tc.apiKey, tc.apiPin, tc.seed)
			var pgErr *types.PaygateError
			require.True(t, errors.As(err, &pgErr))
			assert.Equal(t, types.ErrInvalidArgument, pgErr.Code)
			assert.Equal(t, tc.wantParam, pgErr.Data)
		})
	}
}

func TestCreateAuthToken_RejectsSeedWithSlash(t *testing.T) {
	_, err := CreateAuthToken("key", "pin", "abc/123")
	var pgErr *types.PaygateError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, types.ErrInvalidArgument, pgErr.Code)
	assert.Equal(t, "seed", pgErr.Data)
}

func TestCreateAuthorizationParameter_RoundTrip(t *testing.T) {
	token := "s2/abc123/49809bfa0b7b8c4b7eceec89c8416a1cff19064c0a4c7187536a5e9d30eca014"

	param, err := CreateAuthorizationParameter("K", token)
	require.NoError(t, err)
	assert.Equal(t,
		"SzpzMi9hYmMxMjMvNDk4MDliZmEwYjdiOGM0YjdlY2VlYzg5Yzg0MTZhMWNmZjE5MDY0YzBhNGM3MTg3NTM2YTVlOWQzMGVjYTAxNA==",
		param)

	decoded, err := base64.StdEncoding.DecodeString(param)
	require.NoError(t, err)
	assert.Equal(t, "K:"+token, string(decoded))
}

func TestCreateAuthorizationParameter_EmptyArgs(t *testing.T) {
	_, err := CreateAuthorizationParameter("", "token")
	var pgErr *types.PaygateError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "apiKey", pgErr.Data)

	_, err = CreateAuthorizationParameter("key", "")
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "authToken", pgErr.Data)
}

func TestAuthorizationFlow_RoundTrip(t *testing.T) {
	const apiKey = "_V27SdkrUt1I6WLk"
	const apiPin = "4242"

	seed, err := NewSeed()
	require.NoError(t, err)

	token, err := CreateAuthToken(apiKey, apiPin, seed)
	require.NoError(t, err)

	param, err := CreateAuthorizationParameter(apiKey, token)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(param)
	require.NoError(t, err)

	key, gotToken, found := strings.Cut(string(decoded), ":")
	require.True(t, found)
	assert.Equal(t, apiKey, key)
	assert.Equal(t, token, gotToken)
	assert.Regexp(t, `^s2/[a-z0-9]+/[0-9a-f]{64}$`, gotToken)
}

func TestBuildAuthorizationHeader(t *testing.T) {
	header, err := BuildAuthorizationHeader("key", "pin", DefaultSeedLength)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(header, "Basic "))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, "Basic "))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(decoded), "key:s2/"))
}
