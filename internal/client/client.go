package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/airtable-client/internal/auth"
	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/internal/http"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// Client implements the airtable.Client interface.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     airtable.Logger
}

// New creates a client from config. Configuration problems surface here,
// before any network I/O.
func New(config *airtable.Config) (*Client, error) {
	if config == nil {
		return nil, airtable.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, airtable.ErrAPIKeyRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	tokenManager := auth.NewStaticTokenManager(config.APIKey)
	httpClient := http.NewClient(endpoint, tokenManager, httpOptions(config)...)

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     config.Logger,
	}, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *airtable.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// Whoami implements airtable.Client.Whoami.
func (c *Client) Whoami(ctx context.Context) (*airtable.UserInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/meta/whoami", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	var user airtable.UserInfo

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user info response: %w", err)
	}

	return &user, nil
}

// Bases implements airtable.Client.Bases. The bases listing paginates with
// the same offset scheme as records.
func (c *Client) Bases(ctx context.Context) ([]airtable.BaseInfo, error) {
	var (
		all    []airtable.BaseInfo
		offset string
	)

	for {
		var query url.Values
		if offset != "" {
			query = url.Values{"offset": []string{offset}}
		}

		resp, err := c.httpClient.Get(ctx, "/meta/bases", query)
		if err != nil {
			return nil, fmt.Errorf("listing bases: %w", err)
		}

		var page airtable.BasesResponse

		err = json.Unmarshal(resp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("parsing bases response: %w", err)
		}

		all = append(all, page.Bases...)

		if page.Offset == "" {
			return all, nil
		}

		offset = page.Offset
	}
}

// Base implements airtable.Client.Base.
func (c *Client) Base(baseID string) airtable.Base {
	return &BaseClient{
		httpClient: c.httpClient,
		baseID:     baseID,
	}
}
