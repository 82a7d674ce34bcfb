package atclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/fivetwenty-io/airtable-client/pkg/atclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := atclient.New(nil)
	require.ErrorIs(t, err, airtable.ErrConfigRequired)

	_, err = atclient.New(&airtable.Config{})
	require.ErrorIs(t, err, airtable.ErrAPIKeyRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected string
	}{
		{
			name:     "trailing slash trimmed",
			endpoint: "https://api.example.com/v0/",
			expected: "https://api.example.com/v0",
		},
		{
			name:     "scheme defaulted",
			endpoint: "api.example.com/v0",
			expected: "https://api.example.com/v0",
		},
		{
			name:     "http preserved",
			endpoint: "http://localhost:8080",
			expected: "http://localhost:8080",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &airtable.Config{APIKey: "key", Endpoint: testCase.endpoint}

			_, err := atclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, config.Endpoint)
		})
	}
}

func TestNew_WorksEndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/meta/whoami", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"usr1","email":"a@b.c"}`))
	}))
	defer server.Close()

	client, err := atclient.New(&airtable.Config{APIKey: "key", Endpoint: server.URL})
	require.NoError(t, err)

	user, err := client.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr1", user.ID)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(constants.EnvPersonalAccessToken, "")
	t.Setenv(constants.EnvAPIKey, "")
	t.Setenv(constants.EnvAccessToken, "")
	t.Setenv(constants.EnvEndpointURL, "")

	_, err := atclient.NewFromEnv()
	require.ErrorIs(t, err, airtable.ErrAPIKeyRequired)

	t.Setenv(constants.EnvAccessToken, "fallback-token")

	client, err := atclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)

	// The higher-precedence variable wins when both are set.
	t.Setenv(constants.EnvPersonalAccessToken, "pat-token")

	client, err = atclient.NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnv_EndpointOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"usr1","email":"a@b.c"}`))
	}))
	defer server.Close()

	t.Setenv(constants.EnvPersonalAccessToken, "token")
	t.Setenv(constants.EnvEndpointURL, server.URL)

	client, err := atclient.NewFromEnv()
	require.NoError(t, err)

	user, err := client.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr1", user.ID)
}
