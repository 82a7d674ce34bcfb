package airtable

import (
	"context"
)

// RecordLister is the single-page list operation a PageIterator drives.
type RecordLister interface {
	List(ctx context.Context, spec QuerySpec) (*RecordPage, error)
}

// PageIterator walks a record listing one page at a time. It is a one-shot,
// forward-only cursor: there is no reset, and an iterator must not be shared
// between goroutines.
//
// The iterator exhausts when a page arrives without an offset, when a page is
// shorter than the requested page size, or when a call fails. An absent
// offset is the authoritative termination signal; the short-page check is a
// best-effort early exit that saves one round trip on the common final page.
// Errors are surfaced exactly once, after which the iterator stays exhausted.
type PageIterator struct {
	ctx    context.Context
	lister RecordLister
	spec   QuerySpec
	done   bool
}

// NewPageIterator creates an iterator over lister with the given spec.
func NewPageIterator(ctx context.Context, lister RecordLister, spec QuerySpec) *PageIterator {
	return &PageIterator{
		ctx:    ctx,
		lister: lister,
		spec:   spec,
	}
}

// HasNext reports whether another Next call may yield records.
func (it *PageIterator) HasNext() bool {
	return !it.done
}

// Next fetches the next page of records. After exhaustion it returns
// ErrIteratorDone.
func (it *PageIterator) Next() ([]Record, error) {
	if it.done {
		return nil, ErrIteratorDone
	}

	page, err := it.lister.List(it.ctx, it.spec)
	if err != nil {
		it.done = true

		return nil, err
	}

	switch {
	case page.Offset == "":
		it.done = true
	case it.spec.PageSize > 0 && len(page.Records) < it.spec.PageSize:
		// Short page: the server is out of data even though it issued a
		// cursor. Stopping here avoids a final empty fetch.
		it.done = true
	default:
		it.spec = it.spec.WithOffset(page.Offset)
	}

	return page.Records, nil
}
