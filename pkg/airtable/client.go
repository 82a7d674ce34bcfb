package airtable

import (
	"context"
	"time"
)

// Client is the top-level handle on the API.
type Client interface {
	// Whoami returns the user the configured token belongs to.
	Whoami(ctx context.Context) (*UserInfo, error)

	// Bases lists every base the token can access, following pagination.
	Bases(ctx context.Context) ([]BaseInfo, error)

	// Base returns a handle on one base. No network call is made.
	Base(baseID string) Base
}

// Base is a handle on one base.
type Base interface {
	// ID returns the base ID.
	ID() string

	// Schema returns the schema of every table in the base.
	Schema(ctx context.Context) (*BaseSchema, error)

	// Table returns a handle on one table. No network call is made.
	Table(name string) Table
}

// Table is a handle on one table. All query and mutation operations live
// here. A Table is safe for concurrent use; it holds no per-query state.
type Table interface {
	RecordLister

	// Name returns the table name.
	Name() string

	// ListAll follows the listing's cursors page by page and concatenates the
	// records in server order. When the spec carries a MaxRecords ceiling the
	// result is truncated exactly to it. Any failure discards accumulated
	// pages and returns the error alone.
	ListAll(ctx context.Context, spec QuerySpec) ([]Record, error)

	// Iterate returns a page-at-a-time iterator over the listing.
	Iterate(ctx context.Context, spec QuerySpec) *PageIterator

	// First returns the first record the listing yields, or ErrRecordNotFound
	// when it yields none.
	First(ctx context.Context, spec QuerySpec) (*Record, error)

	// Get fetches a single record by ID.
	Get(ctx context.Context, recordID string) (*Record, error)

	// Create creates one record on the non-batched endpoint.
	Create(ctx context.Context, fields Fields, opts *WriteOptions) (*Record, error)

	// Update partially updates one record on the non-batched endpoint.
	Update(ctx context.Context, recordID string, fields Fields, opts *WriteOptions) (*Record, error)

	// Replace destructively replaces all fields of one record.
	Replace(ctx context.Context, recordID string, fields Fields, opts *WriteOptions) (*Record, error)

	// Delete deletes one record.
	Delete(ctx context.Context, recordID string) error

	// BatchCreate creates up to 10 records in one round trip.
	BatchCreate(ctx context.Context, records []Fields, opts *WriteOptions) ([]Record, error)

	// BatchUpdate partially updates up to 10 records in one round trip.
	BatchUpdate(ctx context.Context, records []RecordData, opts *WriteOptions) ([]Record, error)

	// BatchReplace destructively replaces up to 10 records in one round trip.
	BatchReplace(ctx context.Context, records []RecordData, opts *WriteOptions) ([]Record, error)

	// BatchUpsert updates or creates up to 10 records in one round trip. The
	// server matches existing records on mergeFields; the client does not
	// pre-resolve which entries will be created versus updated.
	BatchUpsert(ctx context.Context, records []RecordData, mergeFields []string, opts *WriteOptions) (*UpsertResult, error)

	// BatchDelete deletes up to 10 records in one round trip.
	BatchDelete(ctx context.Context, recordIDs []string) ([]DeletedRecord, error)
}

// Logger is the structured logging interface the client and transport report
// through.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a client.
//
// Only APIKey is required. Retry settings tune the transport's read-side
// retry policy; mutating requests are never retried because repeating a
// create or upsert without an idempotency key risks duplication.
type Config struct {
	// APIKey is the personal access token or legacy API key.
	APIKey string

	// Endpoint overrides the API endpoint. Defaults to the production API.
	Endpoint string

	// HTTPTimeout bounds each HTTP request. Context deadlines passed to
	// client methods bound whole multi-page operations instead.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient read failures
	// (>=500, 429, connection errors). If 0 a default is used.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives structured log output. Optional.
	Logger Logger
}
