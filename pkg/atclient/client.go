// Package atclient provides the main entry point for creating Airtable API clients.
package atclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/airtable-client/internal/client"
	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// New creates a new Airtable API client.
func New(config *airtable.Config) (airtable.Client, error) {
	if config == nil {
		return nil, airtable.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, airtable.ErrAPIKeyRequired
	}

	if config.Endpoint != "" {
		config.Endpoint = normalizeEndpoint(config.Endpoint)
	}

	atClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return atClient, nil
}

// NewFromEnv creates a client from the environment: the standard token
// variables plus an optional AIRTABLE_ENDPOINT_URL override.
func NewFromEnv() (airtable.Client, error) {
	var apiKey string

	for _, name := range []string{
		constants.EnvPersonalAccessToken,
		constants.EnvAPIKey,
		constants.EnvAccessToken,
	} {
		if value := os.Getenv(name); value != "" {
			apiKey = value

			break
		}
	}

	if apiKey == "" {
		return nil, airtable.ErrAPIKeyRequired
	}

	return New(&airtable.Config{
		APIKey:   apiKey,
		Endpoint: os.Getenv(constants.EnvEndpointURL),
	})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
