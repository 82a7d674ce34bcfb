package airtable

import (
	"net/url"
	"strconv"
)

// SortDirection orders a sort field ascending or descending.
type SortDirection string

// Sort directions accepted by the records endpoint.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort is one sort-field/direction pair. Pairs are forwarded opaquely; the
// server does the ordering and records are never re-sorted locally.
type Sort struct {
	Field     string
	Direction SortDirection
}

// QuerySpec accumulates the declarative parameters of a record listing.
//
// Specs are immutable values: every With method returns a modified copy and
// leaves its receiver untouched, so a spec can be shared as a template
// between in-flight queries without aliasing cursors or filters.
type QuerySpec struct {
	MaxRecords            int
	PageSize              int
	Fields                []string
	FilterByFormula       string
	Sorts                 []Sort
	View                  string
	Offset                string
	CellFormat            string
	TimeZone              string
	UserLocale            string
	ReturnFieldsByFieldID bool
}

// NewQuerySpec returns an empty spec.
func NewQuerySpec() QuerySpec {
	return QuerySpec{}
}

// WithMaxRecords caps the total number of records a full execution returns.
func (q QuerySpec) WithMaxRecords(maxRecords int) QuerySpec {
	q.MaxRecords = maxRecords

	return q
}

// WithPageSize sets the number of records per page.
func (q QuerySpec) WithPageSize(pageSize int) QuerySpec {
	q.PageSize = pageSize

	return q
}

// WithFields restricts the returned fields. Order is preserved on the wire.
func (q QuerySpec) WithFields(fields ...string) QuerySpec {
	q.Fields = append([]string(nil), fields...)

	return q
}

// WithFilterFormula sets the filter formula. The formula is opaque to the
// client and receives no escaping beyond standard URL encoding.
func (q QuerySpec) WithFilterFormula(formula string) QuerySpec {
	q.FilterByFormula = formula

	return q
}

// WithSort appends one sort-field/direction pair.
func (q QuerySpec) WithSort(field string, direction SortDirection) QuerySpec {
	sorts := make([]Sort, 0, len(q.Sorts)+1)
	sorts = append(sorts, q.Sorts...)
	q.Sorts = append(sorts, Sort{Field: field, Direction: direction})

	return q
}

// WithView restricts the listing to a server-side saved view.
func (q QuerySpec) WithView(view string) QuerySpec {
	q.View = view

	return q
}

// WithOffset resumes the listing from a server-issued cursor.
func (q QuerySpec) WithOffset(offset string) QuerySpec {
	q.Offset = offset

	return q
}

// WithCellFormat sets the cell value rendering ("json" or "string").
func (q QuerySpec) WithCellFormat(cellFormat string) QuerySpec {
	q.CellFormat = cellFormat

	return q
}

// WithTimeZone sets the time zone used when CellFormat is "string".
func (q QuerySpec) WithTimeZone(timeZone string) QuerySpec {
	q.TimeZone = timeZone

	return q
}

// WithUserLocale sets the locale used when CellFormat is "string".
func (q QuerySpec) WithUserLocale(userLocale string) QuerySpec {
	q.UserLocale = userLocale

	return q
}

// WithFieldsByID asks the server to key fields by field ID instead of name.
func (q QuerySpec) WithFieldsByID(byID bool) QuerySpec {
	q.ReturnFieldsByFieldID = byID

	return q
}

// Values serializes the spec into query-string parameters for a GET against
// the table's collection endpoint.
func (q QuerySpec) Values() url.Values {
	values := url.Values{}

	if q.MaxRecords > 0 {
		values.Set("maxRecords", strconv.Itoa(q.MaxRecords))
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	for _, field := range q.Fields {
		values.Add("fields[]", field)
	}

	if q.FilterByFormula != "" {
		values.Set("filterByFormula", q.FilterByFormula)
	}

	for i, sort := range q.Sorts {
		values.Set("sort["+strconv.Itoa(i)+"][field]", sort.Field)

		if sort.Direction != "" {
			values.Set("sort["+strconv.Itoa(i)+"][direction]", string(sort.Direction))
		}
	}

	if q.View != "" {
		values.Set("view", q.View)
	}

	if q.Offset != "" {
		values.Set("offset", q.Offset)
	}

	if q.CellFormat != "" {
		values.Set("cellFormat", q.CellFormat)
	}

	if q.TimeZone != "" {
		values.Set("timeZone", q.TimeZone)
	}

	if q.UserLocale != "" {
		values.Set("userLocale", q.UserLocale)
	}

	if q.ReturnFieldsByFieldID {
		values.Set("returnFieldsByFieldId", "true")
	}

	return values
}
