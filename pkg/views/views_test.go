package views_test

import (
	"testing"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/fivetwenty-io/airtable-client/pkg/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperView is a trivial processor used to exercise the registry.
type upperView struct {
	name string
}

func (v *upperView) Name() string             { return v.name }
func (v *upperView) Description() string      { return "test view" }
func (v *upperView) RequiredFields() []string { return nil }
func (v *upperView) OptionalFields() []string { return nil }

func (v *upperView) ShouldInclude(r airtable.Record) bool {
	return r.Fields["keep"] == true
}

func (v *upperView) Process(records []airtable.Record) (interface{}, error) {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}

	return ids, nil
}

func TestRegistry_BuiltinClioView(t *testing.T) {
	t.Parallel()

	registry := views.NewRegistry()

	processor, ok := registry.Get("clio")
	require.True(t, ok)
	assert.Equal(t, "clio", processor.Name())

	infos := registry.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "clio", infos[0].Name)
}

func TestRegistry_RegisterShadowsByName(t *testing.T) {
	t.Parallel()

	registry := views.NewRegistry()
	replacement := &upperView{name: "clio"}
	registry.Register(replacement)

	processor, ok := registry.Get("clio")
	require.True(t, ok)
	assert.Same(t, replacement, processor)

	// The shadowed entry disappears from the listing; the survivor carries
	// the replacement's description.
	infos := registry.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "clio", infos[0].Name)
	assert.Equal(t, replacement.Description(), infos[0].Description)
}

func TestRegistry_ProcessWithView_UnknownName(t *testing.T) {
	t.Parallel()

	registry := views.NewRegistry()

	_, err := registry.ProcessWithView("nope", nil)
	require.Error(t, err)

	unknownErr := &views.UnknownViewError{}
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nope", unknownErr.Name)
	assert.Contains(t, unknownErr.Available, "clio")
	assert.Contains(t, err.Error(), `unknown view "nope"`)
}

func TestRegistry_ProcessWithView_FiltersBeforeFormatting(t *testing.T) {
	t.Parallel()

	registry := views.NewRegistry()
	registry.Register(&upperView{name: "test"})

	records := []airtable.Record{
		{ID: "rec1", Fields: airtable.Fields{"keep": true}},
		{ID: "rec2", Fields: airtable.Fields{"keep": false}},
		{ID: "rec3", Fields: airtable.Fields{"keep": true}},
	}

	result, err := registry.ProcessWithView("test", records)
	require.NoError(t, err)

	// Excluded records are silently dropped, not errors.
	assert.Equal(t, []string{"rec1", "rec3"}, result)
}

func TestRegistry_ProcessWithView_ClioEndToEnd(t *testing.T) {
	t.Parallel()

	registry := views.NewRegistry()

	records := []airtable.Record{
		{ID: "rec1", Fields: airtable.Fields{"Clio Matter ID": "100"}},
		{ID: "rec2", Fields: airtable.Fields{"Clio Matter ID": nil}},
		{ID: "rec3", Fields: airtable.Fields{"Matter Title": "no id"}},
	}

	result, err := registry.ProcessWithView("clio", records)
	require.NoError(t, err)

	shaped, ok := result.([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, shaped, 1)
	assert.Equal(t, "rec1", shaped[0]["record_id"])
}

func TestExtractFieldValue(t *testing.T) {
	t.Parallel()

	record := airtable.Record{
		ID:     "rec1",
		Fields: airtable.Fields{"present": "value", "null": nil},
	}

	value, err := views.ExtractFieldValue(record, "present", true)
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	// Missing or null required fields report which record broke.
	_, err = views.ExtractFieldValue(record, "absent", true)
	missingErr := &views.MissingFieldError{}
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "absent", missingErr.Field)
	assert.Equal(t, "rec1", missingErr.RecordID)

	_, err = views.ExtractFieldValue(record, "null", true)
	require.Error(t, err)

	// Optional lookups degrade to nil.
	value, err = views.ExtractFieldValue(record, "absent", false)
	require.NoError(t, err)
	assert.Nil(t, value)
}
