package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/airtable-client/internal/http"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// BaseClient implements airtable.Base.
type BaseClient struct {
	httpClient *http.Client
	baseID     string
}

// ID implements airtable.Base.ID.
func (b *BaseClient) ID() string {
	return b.baseID
}

// Schema implements airtable.Base.Schema.
func (b *BaseClient) Schema(ctx context.Context) (*airtable.BaseSchema, error) {
	if b.baseID == "" {
		return nil, airtable.ErrBaseIDRequired
	}

	path := fmt.Sprintf("/meta/bases/%s/tables", b.baseID)

	resp, err := b.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting base schema: %w", err)
	}

	var schema airtable.BaseSchema

	err = json.Unmarshal(resp.Body, &schema)
	if err != nil {
		return nil, fmt.Errorf("parsing base schema response: %w", err)
	}

	return &schema, nil
}

// Table implements airtable.Base.Table. Table names may contain spaces and
// punctuation, so the path segment is escaped.
func (b *BaseClient) Table(name string) airtable.Table {
	return &TableClient{
		httpClient: b.httpClient,
		basePath:   fmt.Sprintf("/%s/%s", b.baseID, url.PathEscape(name)),
		name:       name,
	}
}
