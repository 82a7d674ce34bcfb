package airtable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRecordLister implements RecordLister for testing
type MockRecordLister struct {
	pages map[string]*airtable.RecordPage
	err   error
	calls int
}

func (m *MockRecordLister) List(ctx context.Context, spec airtable.QuerySpec) (*airtable.RecordPage, error) {
	m.calls++

	if m.err != nil {
		return nil, m.err
	}

	page, ok := m.pages[spec.Offset]
	if !ok {
		return &airtable.RecordPage{Records: []airtable.Record{}}, nil
	}

	return page, nil
}

func testRecord(id string) airtable.Record {
	return airtable.Record{ID: id, Fields: airtable.Fields{"Name": id}}
}

func TestPageIterator_WalksAllPages(t *testing.T) {
	t.Parallel()

	lister := &MockRecordLister{
		pages: map[string]*airtable.RecordPage{
			"": {
				Records: []airtable.Record{testRecord("rec1"), testRecord("rec2")},
				Offset:  "cursor2",
			},
			"cursor2": {
				Records: []airtable.Record{testRecord("rec3"), testRecord("rec4")},
				Offset:  "cursor3",
			},
			"cursor3": {
				Records: []airtable.Record{testRecord("rec5")},
			},
		},
	}

	iterator := airtable.NewPageIterator(context.Background(), lister, airtable.NewQuerySpec())

	// Should have next before any fetch
	assert.True(t, iterator.HasNext())

	var all []airtable.Record

	for iterator.HasNext() {
		records, err := iterator.Next()
		require.NoError(t, err)

		all = append(all, records...)
	}

	assert.Len(t, all, 5)
	assert.Equal(t, "rec1", all[0].ID)
	assert.Equal(t, "rec5", all[4].ID)
	assert.Equal(t, 3, lister.calls)
}

func TestPageIterator_StopsOnMissingOffset(t *testing.T) {
	t.Parallel()

	lister := &MockRecordLister{
		pages: map[string]*airtable.RecordPage{
			"": {Records: []airtable.Record{testRecord("rec1")}},
		},
	}

	iterator := airtable.NewPageIterator(context.Background(), lister, airtable.NewQuerySpec())

	records, err := iterator.Next()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// A page without an offset exhausts the iterator
	assert.False(t, iterator.HasNext())
}

func TestPageIterator_StopsOnShortPage(t *testing.T) {
	t.Parallel()

	// The final page carries an offset but holds fewer records than the
	// requested page size, so the iterator stops without a last fetch.
	lister := &MockRecordLister{
		pages: map[string]*airtable.RecordPage{
			"": {
				Records: []airtable.Record{testRecord("rec1"), testRecord("rec2")},
				Offset:  "cursor2",
			},
			"cursor2": {
				Records: []airtable.Record{testRecord("rec3")},
				Offset:  "cursor3",
			},
		},
	}

	spec := airtable.NewQuerySpec().WithPageSize(2)
	iterator := airtable.NewPageIterator(context.Background(), lister, spec)

	records, err := iterator.Next()
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, iterator.HasNext())

	records, err = iterator.Next()
	require.NoError(t, err)
	assert.Len(t, records, 1)

	assert.False(t, iterator.HasNext())
	assert.Equal(t, 2, lister.calls)
}

func TestPageIterator_FullPageWithOffsetContinues(t *testing.T) {
	t.Parallel()

	// A full page with an offset must not trigger the short-page exit even
	// when it is actually the last one.
	lister := &MockRecordLister{
		pages: map[string]*airtable.RecordPage{
			"": {
				Records: []airtable.Record{testRecord("rec1"), testRecord("rec2")},
				Offset:  "cursor2",
			},
			"cursor2": {
				Records: []airtable.Record{},
			},
		},
	}

	spec := airtable.NewQuerySpec().WithPageSize(2)
	iterator := airtable.NewPageIterator(context.Background(), lister, spec)

	records, err := iterator.Next()
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, iterator.HasNext())

	records, err = iterator.Next()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.False(t, iterator.HasNext())
}

func TestPageIterator_SurfacesErrorOnce(t *testing.T) {
	t.Parallel()

	listErr := errors.New("boom")
	lister := &MockRecordLister{err: listErr}

	iterator := airtable.NewPageIterator(context.Background(), lister, airtable.NewQuerySpec())

	_, err := iterator.Next()
	require.ErrorIs(t, err, listErr)

	// The failure exhausts the iterator; later calls report exhaustion, not
	// the original error.
	assert.False(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, airtable.ErrIteratorDone)
	assert.Equal(t, 1, lister.calls)
}

func TestPageIterator_NextAfterExhaustion(t *testing.T) {
	t.Parallel()

	lister := &MockRecordLister{
		pages: map[string]*airtable.RecordPage{
			"": {Records: []airtable.Record{testRecord("rec1")}},
		},
	}

	iterator := airtable.NewPageIterator(context.Background(), lister, airtable.NewQuerySpec())

	_, err := iterator.Next()
	require.NoError(t, err)

	_, err = iterator.Next()
	require.ErrorIs(t, err, airtable.ErrIteratorDone)
}
