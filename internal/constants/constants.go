package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries apply to read requests only; mutating requests are
// issued exactly once because the API assigns no idempotency keys.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API limits enforced by the remote service.
const (
	// MaxBatchSize is the maximum number of records per batched mutation.
	MaxBatchSize = 10

	// MaxPageSize is the largest page size the records endpoint accepts.
	MaxPageSize = 100

	// DefaultPageSize is the page size the server uses when none is requested.
	DefaultPageSize = 100
)

// DefaultEndpoint is the production API endpoint.
const DefaultEndpoint = "https://api.airtable.com/v0"

// Environment variables recognized for credential and base resolution,
// in precedence order.
const (
	// EnvPersonalAccessToken is the preferred token variable.
	EnvPersonalAccessToken = "PERSONAL_ACCESS_TOKEN"

	// EnvAPIKey is the legacy API key variable.
	EnvAPIKey = "AIRTABLE_API_KEY"

	// EnvAccessToken is an alternative token variable.
	EnvAccessToken = "AIRTABLE_ACCESS_TOKEN"

	// EnvBaseID selects a default base.
	EnvBaseID = "AIRTABLE_BASE_ID"

	// EnvBase is the short-form base selector honored for compatibility.
	EnvBase = "BASE"

	// EnvEndpointURL overrides the API endpoint.
	EnvEndpointURL = "AIRTABLE_ENDPOINT_URL"
)
