package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/internal/http"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// TableClient implements airtable.Table: the record query engine and the
// batch mutator for one table.
type TableClient struct {
	httpClient *http.Client
	basePath   string
	name       string
}

// singleRequest is the body of a non-batched create, update, or replace.
type singleRequest struct {
	Fields   airtable.Fields `json:"fields"`
	Typecast bool            `json:"typecast,omitempty"`
}

// recordsRequest is the body of a batched create, update, or replace.
type recordsRequest struct {
	Records  []airtable.RecordData `json:"records"`
	Typecast bool                  `json:"typecast,omitempty"`
}

// upsertRequest is the body of a batched upsert. FieldsToMergeOn tells the
// server which fields decide create-versus-update per record.
type upsertRequest struct {
	Records         []airtable.RecordData `json:"records"`
	FieldsToMergeOn []string              `json:"fieldsToMergeOn"`
	Typecast        bool                  `json:"typecast,omitempty"`
}

// recordsResponse is the body of a batched mutation response.
type recordsResponse struct {
	Records []airtable.Record `json:"records"`
}

// deleteResponse is the body of a batched delete response.
type deleteResponse struct {
	Records []airtable.DeletedRecord `json:"records"`
}

// Name implements airtable.Table.Name.
func (t *TableClient) Name() string {
	return t.name
}

// List implements airtable.Table.List: one GET, one page.
func (t *TableClient) List(ctx context.Context, spec airtable.QuerySpec) (*airtable.RecordPage, error) {
	if t.name == "" {
		return nil, airtable.ErrTableNameRequired
	}

	resp, err := t.httpClient.Get(ctx, t.basePath, spec.Values())
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var page airtable.RecordPage

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}

	return &page, nil
}

// ListAll implements airtable.Table.ListAll. Pagination is strictly
// sequential: the cursor for page N+1 is only known once page N arrives. An
// absent offset terminates the loop; the MaxRecords ceiling truncates the
// final page exactly and stops further fetches.
func (t *TableClient) ListAll(ctx context.Context, spec airtable.QuerySpec) ([]airtable.Record, error) {
	var all []airtable.Record

	current := spec

	for {
		page, err := t.List(ctx, current)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Records...)

		if spec.MaxRecords > 0 && len(all) >= spec.MaxRecords {
			return all[:spec.MaxRecords], nil
		}

		if page.Offset == "" {
			return all, nil
		}

		current = current.WithOffset(page.Offset)
	}
}

// Iterate implements airtable.Table.Iterate.
func (t *TableClient) Iterate(ctx context.Context, spec airtable.QuerySpec) *airtable.PageIterator {
	return airtable.NewPageIterator(ctx, t, spec)
}

// First implements airtable.Table.First.
func (t *TableClient) First(ctx context.Context, spec airtable.QuerySpec) (*airtable.Record, error) {
	page, err := t.List(ctx, spec.WithPageSize(1).WithMaxRecords(1))
	if err != nil {
		return nil, err
	}

	if len(page.Records) == 0 {
		return nil, airtable.ErrRecordNotFound
	}

	return &page.Records[0], nil
}

// Get implements airtable.Table.Get.
func (t *TableClient) Get(ctx context.Context, recordID string) (*airtable.Record, error) {
	resp, err := t.httpClient.Get(ctx, t.basePath+"/"+recordID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	return parseRecord(resp.Body)
}

// Create implements airtable.Table.Create.
func (t *TableClient) Create(ctx context.Context, fields airtable.Fields, opts *airtable.WriteOptions) (*airtable.Record, error) {
	resp, err := t.httpClient.Post(ctx, t.basePath, &singleRequest{
		Fields:   fields,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}

	return parseRecord(resp.Body)
}

// Update implements airtable.Table.Update.
func (t *TableClient) Update(ctx context.Context, recordID string, fields airtable.Fields, opts *airtable.WriteOptions) (*airtable.Record, error) {
	resp, err := t.httpClient.Patch(ctx, t.basePath+"/"+recordID, &singleRequest{
		Fields:   fields,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	return parseRecord(resp.Body)
}

// Replace implements airtable.Table.Replace.
func (t *TableClient) Replace(ctx context.Context, recordID string, fields airtable.Fields, opts *airtable.WriteOptions) (*airtable.Record, error) {
	resp, err := t.httpClient.Put(ctx, t.basePath+"/"+recordID, &singleRequest{
		Fields:   fields,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("replacing record: %w", err)
	}

	return parseRecord(resp.Body)
}

// Delete implements airtable.Table.Delete.
func (t *TableClient) Delete(ctx context.Context, recordID string) error {
	_, err := t.httpClient.Delete(ctx, t.basePath+"/"+recordID, nil)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}

// BatchCreate implements airtable.Table.BatchCreate.
func (t *TableClient) BatchCreate(ctx context.Context, records []airtable.Fields, opts *airtable.WriteOptions) ([]airtable.Record, error) {
	err := validateBatchSize(len(records))
	if err != nil {
		return nil, err
	}

	data := make([]airtable.RecordData, 0, len(records))
	for _, fields := range records {
		data = append(data, airtable.RecordData{Fields: fields})
	}

	resp, err := t.httpClient.Post(ctx, t.basePath, &recordsRequest{
		Records:  data,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("creating records: %w", err)
	}

	return parseRecords(resp.Body)
}

// BatchUpdate implements airtable.Table.BatchUpdate.
func (t *TableClient) BatchUpdate(ctx context.Context, records []airtable.RecordData, opts *airtable.WriteOptions) ([]airtable.Record, error) {
	err := validateBatchSize(len(records))
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Patch(ctx, t.basePath, &recordsRequest{
		Records:  records,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("updating records: %w", err)
	}

	return parseRecords(resp.Body)
}

// BatchReplace implements airtable.Table.BatchReplace.
func (t *TableClient) BatchReplace(ctx context.Context, records []airtable.RecordData, opts *airtable.WriteOptions) ([]airtable.Record, error) {
	err := validateBatchSize(len(records))
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Put(ctx, t.basePath, &recordsRequest{
		Records:  records,
		Typecast: typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("replacing records: %w", err)
	}

	return parseRecords(resp.Body)
}

// BatchUpsert implements airtable.Table.BatchUpsert. The server decides
// create-versus-update per record by matching mergeFields values.
func (t *TableClient) BatchUpsert(ctx context.Context, records []airtable.RecordData, mergeFields []string, opts *airtable.WriteOptions) (*airtable.UpsertResult, error) {
	err := validateBatchSize(len(records))
	if err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Patch(ctx, t.basePath, &upsertRequest{
		Records:         records,
		FieldsToMergeOn: mergeFields,
		Typecast:        typecast(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("upserting records: %w", err)
	}

	var result airtable.UpsertResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing upsert response: %w", err)
	}

	return &result, nil
}

// BatchDelete implements airtable.Table.BatchDelete.
func (t *TableClient) BatchDelete(ctx context.Context, recordIDs []string) ([]airtable.DeletedRecord, error) {
	err := validateBatchSize(len(recordIDs))
	if err != nil {
		return nil, err
	}

	query := url.Values{"records[]": recordIDs}

	resp, err := t.httpClient.Delete(ctx, t.basePath, query)
	if err != nil {
		return nil, fmt.Errorf("deleting records: %w", err)
	}

	var result deleteResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	return result.Records, nil
}

// validateBatchSize enforces the API batch bounds before any network call.
func validateBatchSize(size int) error {
	if size < 1 || size > constants.MaxBatchSize {
		return &airtable.BatchSizeError{Size: size}
	}

	return nil
}

func typecast(opts *airtable.WriteOptions) bool {
	return opts != nil && opts.Typecast
}

func parseRecord(body []byte) (*airtable.Record, error) {
	var record airtable.Record

	err := json.Unmarshal(body, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

func parseRecords(body []byte) ([]airtable.Record, error) {
	var result recordsResponse

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}

	return result.Records, nil
}
