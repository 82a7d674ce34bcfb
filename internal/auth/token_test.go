package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/airtable-client/internal/auth"
	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	token, err := auth.NewStaticTokenManager("pat123").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pat123", token)

	_, err = auth.NewStaticTokenManager("").GetToken(context.Background())
	require.ErrorIs(t, err, constants.ErrAPIKeyNotFound)
}

func TestResolveAPIKey_ExplicitWins(t *testing.T) {
	t.Setenv(constants.EnvPersonalAccessToken, "env-token")

	key, err := auth.ResolveAPIKey("explicit-token", "", "")
	require.NoError(t, err)
	assert.Equal(t, "explicit-token", key)
}

func TestResolveAPIKey_KeyFile(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  file-token\n"), 0o600))

	key, err := auth.ResolveAPIKey("", keyFile, "")
	require.NoError(t, err)
	assert.Equal(t, "file-token", key)
}

func TestResolveAPIKey_KeyFileErrors(t *testing.T) {
	t.Parallel()

	_, err := auth.ResolveAPIKey("", filepath.Join(t.TempDir(), "absent"), "")
	require.Error(t, err)

	emptyFile := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(emptyFile, []byte("  \n"), 0o600))

	_, err = auth.ResolveAPIKey("", emptyFile, "")
	require.ErrorIs(t, err, constants.ErrKeyFileEmpty)
}

func TestResolveAPIKey_NamedEnvVar(t *testing.T) {
	t.Setenv("MY_CUSTOM_TOKEN", "custom-token")

	key, err := auth.ResolveAPIKey("", "", "MY_CUSTOM_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "custom-token", key)

	_, err = auth.ResolveAPIKey("", "", "UNSET_TOKEN_VAR")
	require.ErrorIs(t, err, constants.ErrKeyEnvNotSet)
}

func TestResolveAPIKey_StandardEnvPrecedence(t *testing.T) {
	t.Setenv(constants.EnvPersonalAccessToken, "pat")
	t.Setenv(constants.EnvAPIKey, "api-key")
	t.Setenv(constants.EnvAccessToken, "access")

	key, err := auth.ResolveAPIKey("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "pat", key)

	t.Setenv(constants.EnvPersonalAccessToken, "")

	key, err = auth.ResolveAPIKey("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "api-key", key)

	t.Setenv(constants.EnvAPIKey, "")

	key, err = auth.ResolveAPIKey("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "access", key)
}

func TestResolveAPIKey_NothingSet(t *testing.T) {
	t.Setenv(constants.EnvPersonalAccessToken, "")
	t.Setenv(constants.EnvAPIKey, "")
	t.Setenv(constants.EnvAccessToken, "")

	_, err := auth.ResolveAPIKey("", "", "")
	require.ErrorIs(t, err, constants.ErrAPIKeyNotFound)
}

func TestResolveBaseID(t *testing.T) {
	t.Setenv(constants.EnvBaseID, "appFromEnv")
	t.Setenv(constants.EnvBase, "appFallback")

	assert.Equal(t, "appExplicit", auth.ResolveBaseID("appExplicit"))
	assert.Equal(t, "appFromEnv", auth.ResolveBaseID(""))

	t.Setenv(constants.EnvBaseID, "")
	assert.Equal(t, "appFallback", auth.ResolveBaseID(""))

	t.Setenv(constants.EnvBase, "")
	assert.Empty(t, auth.ResolveBaseID(""))
}
