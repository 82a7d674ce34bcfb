package views

import (
	"strings"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// Field names the clio view reads from Matter records.
const (
	clioMatterIDField    = "Clio Matter ID"
	matterTitleField     = "Matter Title"
	clioMatterURLField   = "Clio Matter Url"
	clioDriveFolderField = "Clio Drive Folder"
	googleDriveField     = "Open in Google drive (from Clio Drive Folder)"
)

// ClioView extracts Matter records carrying a Clio Matter ID and projects
// the fields the Clio integration consumes, under normalized names.
type ClioView struct{}

// NewClioView creates the clio view processor.
func NewClioView() *ClioView {
	return &ClioView{}
}

// Name implements Processor.Name.
func (v *ClioView) Name() string {
	return "clio"
}

// Description implements Processor.Description.
func (v *ClioView) Description() string {
	return "Extract Matter records with Clio integration fields (filters null Clio Matter IDs)"
}

// RequiredFields implements Processor.RequiredFields.
func (v *ClioView) RequiredFields() []string {
	return []string{clioMatterIDField}
}

// OptionalFields implements Processor.OptionalFields.
func (v *ClioView) OptionalFields() []string {
	return []string{matterTitleField, clioMatterURLField, clioDriveFolderField, googleDriveField}
}

// ShouldInclude implements Processor.ShouldInclude: only records whose Clio
// Matter ID is a non-null, non-whitespace string survive.
func (v *ClioView) ShouldInclude(record airtable.Record) bool {
	value, ok := record.Fields[clioMatterIDField]
	if !ok || value == nil {
		return false
	}

	id, isString := value.(string)

	return isString && strings.TrimSpace(id) != ""
}

// Process implements Processor.Process. Optional fields degrade to "".
func (v *ClioView) Process(records []airtable.Record) (interface{}, error) {
	result := make([]map[string]interface{}, 0, len(records))

	for _, record := range records {
		matterID, err := ExtractFieldValue(record, clioMatterIDField, true)
		if err != nil {
			return nil, err
		}

		result = append(result, map[string]interface{}{
			"record_id":         record.ID,
			"matter_title":      optionalString(record, matterTitleField),
			"clio_matter_id":    stringValue(matterID),
			"clio_matter_url":   optionalString(record, clioMatterURLField),
			"clio_drive_folder": optionalString(record, clioDriveFolderField),
			"google_drive_link": optionalString(record, googleDriveField),
		})
	}

	return result, nil
}

func stringValue(value interface{}) string {
	text, _ := value.(string)

	return text
}

func optionalString(record airtable.Record, field string) string {
	value, _ := ExtractFieldValue(record, field, false)

	return stringValue(value)
}
