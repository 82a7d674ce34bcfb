package airtable_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/stretchr/testify/assert"
)

func TestQuerySpec_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     airtable.QuerySpec
		expected url.Values
	}{
		{
			name:     "empty spec",
			spec:     airtable.NewQuerySpec(),
			expected: url.Values{},
		},
		{
			name: "max records and page size",
			spec: airtable.NewQuerySpec().WithMaxRecords(50).WithPageSize(10),
			expected: url.Values{
				"maxRecords": []string{"50"},
				"pageSize":   []string{"10"},
			},
		},
		{
			name: "fields preserve order",
			spec: airtable.NewQuerySpec().WithFields("Name", "Status", "Owner"),
			expected: url.Values{
				"fields[]": []string{"Name", "Status", "Owner"},
			},
		},
		{
			name: "filter formula",
			spec: airtable.NewQuerySpec().WithFilterFormula("{Status} = 'Active'"),
			expected: url.Values{
				"filterByFormula": []string{"{Status} = 'Active'"},
			},
		},
		{
			name: "sorts are indexed",
			spec: airtable.NewQuerySpec().
				WithSort("Name", airtable.SortAsc).
				WithSort("Created", airtable.SortDesc),
			expected: url.Values{
				"sort[0][field]":     []string{"Name"},
				"sort[0][direction]": []string{"asc"},
				"sort[1][field]":     []string{"Created"},
				"sort[1][direction]": []string{"desc"},
			},
		},
		{
			name: "view and offset",
			spec: airtable.NewQuerySpec().WithView("Grid view").WithOffset("itrCursor/rec123"),
			expected: url.Values{
				"view":   []string{"Grid view"},
				"offset": []string{"itrCursor/rec123"},
			},
		},
		{
			name: "cell format options",
			spec: airtable.NewQuerySpec().
				WithCellFormat("string").
				WithTimeZone("America/Chicago").
				WithUserLocale("en-us"),
			expected: url.Values{
				"cellFormat": []string{"string"},
				"timeZone":   []string{"America/Chicago"},
				"userLocale": []string{"en-us"},
			},
		},
		{
			name: "fields by ID",
			spec: airtable.NewQuerySpec().WithFieldsByID(true),
			expected: url.Values{
				"returnFieldsByFieldId": []string{"true"},
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.spec.Values())
		})
	}
}

func TestQuerySpec_Immutable(t *testing.T) {
	t.Parallel()

	base := airtable.NewQuerySpec().WithFields("Name").WithSort("Name", airtable.SortAsc)

	// Deriving from a shared template must not touch the template.
	derivedA := base.WithOffset("cursorA").WithSort("Created", airtable.SortDesc)
	derivedB := base.WithFields("Name", "Status")

	assert.Empty(t, base.Offset)
	assert.Len(t, base.Sorts, 1)
	assert.Equal(t, []string{"Name"}, base.Fields)

	assert.Equal(t, "cursorA", derivedA.Offset)
	assert.Len(t, derivedA.Sorts, 2)
	assert.Equal(t, []string{"Name", "Status"}, derivedB.Fields)
}

func TestQuerySpec_SortAppendDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := airtable.NewQuerySpec().WithSort("A", airtable.SortAsc)

	// Two forks appending to the same parent must not overwrite each other's
	// sort pair through a shared backing array.
	forkA := base.WithSort("B", airtable.SortAsc)
	forkB := base.WithSort("C", airtable.SortDesc)

	assert.Equal(t, "B", forkA.Sorts[1].Field)
	assert.Equal(t, "C", forkB.Sorts[1].Field)
}
