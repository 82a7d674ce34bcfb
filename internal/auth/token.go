package auth

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
)

// TokenManager supplies the bearer token for API requests. The API uses
// static personal access tokens, so there is no refresh flow.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager holds a fixed token.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	if m.token == "" {
		return "", constants.ErrAPIKeyNotFound
	}

	return m.token, nil
}

// ResolveAPIKey resolves the API key from its possible sources, in
// precedence order: an explicit key, a key file, an indirect environment
// variable name, then the standard environment variables.
func ResolveAPIKey(key, keyFile, keyEnv string) (string, error) {
	if key != "" {
		return key, nil
	}

	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}

		fileKey := strings.TrimSpace(string(data))
		if fileKey == "" {
			return "", constants.ErrKeyFileEmpty
		}

		return fileKey, nil
	}

	if keyEnv != "" {
		envKey := os.Getenv(keyEnv)
		if envKey == "" {
			return "", fmt.Errorf("%w: %s", constants.ErrKeyEnvNotSet, keyEnv)
		}

		return envKey, nil
	}

	for _, name := range []string{
		constants.EnvPersonalAccessToken,
		constants.EnvAPIKey,
		constants.EnvAccessToken,
	} {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}

	return "", constants.ErrAPIKeyNotFound
}

// ResolveBaseID resolves a base ID from an explicit value or the standard
// environment variables. An empty result means the caller must fall back to
// base auto-detection.
func ResolveBaseID(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if value := os.Getenv(constants.EnvBaseID); value != "" {
		return value
	}

	return os.Getenv(constants.EnvBase)
}
