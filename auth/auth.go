// Package auth builds the gateway's hash-based credentials: a per-request
// seeded SHA-256 token and the Basic authorization parameter that carries it.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/merchantkit/paygate/types"
)

const (
	// TokenPrefix is the protocol version marker the gateway expects at the
	// start of every auth token. It must be reproduced exactly.
	TokenPrefix = "s2/"

	// DefaultSeedLength is the seed size used when the caller does not pick one.
	DefaultSeedLength = 16

	// seedAlphabet is the full set of characters a seed may contain. The seed
	// sits between "/" delimiters inside the token, so "/" is excluded.
	seedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateSeed returns a random string of the given length drawn uniformly
// from a-z0-9. It reads crypto/rand with rejection sampling so no character
// is favored by modulo bias; the seed feeds an authentication token and must
// not be predictable.
func GenerateSeed(length int) (string, error) {
	if length <= 0 {
		return "", types.InvalidArgument("length", "seed length must be positive (got %d)", length)
	}

	// Largest multiple of len(seedAlphabet) below 256.
	const threshold = 252
	var sb strings.Builder
	sb.Grow(length)
	buf := make([]byte, 64)
	for sb.Len() < length {
		n, err := rand.Read(buf)
		if err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		for i := 0; i < n && sb.Len() < length; i++ {
			if buf[i] < threshold {
				sb.WriteByte(seedAlphabet[int(buf[i])%len(seedAlphabet)])
			}
		}
	}
	return sb.String(), nil
}

// NewSeed returns a fresh seed of DefaultSeedLength.
func NewSeed() (string, error) {
	return GenerateSeed(DefaultSeedLength)
}

// CreateAuthToken derives the gateway auth token for a credential and seed:
//
//	"s2/" + seed + "/" + hex(sha256(apiKey + seed + apiPin))
//
// The computation is deterministic for fixed inputs; freshness comes entirely
// from the seed. All three arguments must be non-empty after trimming, and the
// seed must not contain "/".
func CreateAuthToken(apiKey, apiPin, seed string) (string, error) {
	switch {
	case strings.TrimSpace(apiKey) == "":
		return "", types.InvalidArgument("apiKey", "apiKey must not be empty")
	case strings.TrimSpace(apiPin) == "":
		return "", types.InvalidArgument("apiPin", "apiPin must not be empty")
	case strings.TrimSpace(seed) == "":
		return "", types.InvalidArgument("seed", "seed must not be empty")
	case strings.Contains(seed, "/"):
		return "", types.InvalidArgument("seed", "seed must not contain '/'")
	}

	sum := sha256.Sum256([]byte(apiKey + seed + apiPin))
	return TokenPrefix + seed + "/" + hex.EncodeToString(sum[:]), nil
}

// CreateAuthorizationParameter encodes apiKey and an auth token into the
// value carried by HTTP Basic authentication: standard padded base64 of
// "apiKey:authToken". The "Basic " scheme prefix is the caller's concern.
func CreateAuthorizationParameter(apiKey, authToken string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", types.InvalidArgument("apiKey", "apiKey must not be empty")
	}
	if strings.TrimSpace(authToken) == "" {
		return "", types.InvalidArgument("authToken", "authToken must not be empty")
	}
	return base64.StdEncoding.EncodeToString([]byte(apiKey + ":" + authToken)), nil
}

// BuildAuthorizationHeader runs the full flow with a fresh seed and returns a
// ready-to-send Authorization header value.
func BuildAuthorizationHeader(apiKey, apiPin string, seedLength int) (string, error) {
	seed, err := GenerateSeed(seedLength)
	if err != nil {
		return "", err
	}
	token, err := CreateAuthToken(apiKey, apiPin, seed)
	if err != nil {
		return "", err
	}
	param, err := CreateAuthorizationParameter(apiKey, token)
	if err != nil {
		return "", err
	}
	return "Basic " + param, nil
}
