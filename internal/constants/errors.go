package constants

import "errors"

// Credential resolution errors.
var (
	ErrAPIKeyNotFound = errors.New("API key not found. Set PERSONAL_ACCESS_TOKEN, AIRTABLE_API_KEY, or AIRTABLE_ACCESS_TOKEN, or pass --key")
	ErrKeyFileEmpty   = errors.New("key file is empty")
	ErrKeyEnvNotSet   = errors.New("environment variable named by --key-env is not set")
)

// Base resolution errors.
var (
	ErrNoBasesFound  = errors.New("no bases found. Check your API key and permissions")
	ErrMultipleBases = errors.New("multiple bases found. Specify a base ID or set AIRTABLE_BASE_ID")
)
