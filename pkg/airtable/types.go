package airtable

import (
	"encoding/json"
	"time"
)

// Fields holds the dynamically typed column values of a record. Values are
// whatever encoding/json produces for the wire representation: string,
// float64, bool, []interface{}, map[string]interface{}, or nil.
type Fields map[string]interface{}

// Record is a single row of a table. Records are snapshots: the client never
// mutates one in place, a mutation returns a fresh Record value.
type Record struct {
	ID          string    `json:"id"          yaml:"id"`
	CreatedTime time.Time `json:"createdTime" yaml:"createdTime"`
	Fields      Fields    `json:"fields"      yaml:"fields"`
}

// RecordPage is one page of a record listing. An empty Offset is the sole
// "no more pages" signal; a page may carry zero records and still have an
// Offset, which means pagination must continue.
type RecordPage struct {
	Records []Record `json:"records"          yaml:"records"`
	Offset  string   `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// RecordData is one entry of a batched mutation. ID is empty for creates and
// upsert candidates the server should create.
type RecordData struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Fields Fields `json:"fields"       yaml:"fields"`
}

// UpsertResult is the response to a batch upsert. CreatedRecords and
// UpdatedRecords list the record IDs the server created or matched.
type UpsertResult struct {
	Records        []Record `json:"records"                  yaml:"records"`
	CreatedRecords []string `json:"createdRecords,omitempty" yaml:"createdRecords,omitempty"`
	UpdatedRecords []string `json:"updatedRecords,omitempty" yaml:"updatedRecords,omitempty"`
}

// DeletedRecord reports the outcome of a delete for a single record.
type DeletedRecord struct {
	ID      string `json:"id"      yaml:"id"`
	Deleted bool   `json:"deleted" yaml:"deleted"`
}

// UserInfo is the response of the whoami endpoint. Name is not always
// provided by the API.
type UserInfo struct {
	ID    string  `json:"id"             yaml:"id"`
	Name  *string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string  `json:"email"          yaml:"email"`
}

// BaseInfo describes one accessible base.
type BaseInfo struct {
	ID              string `json:"id"              yaml:"id"`
	Name            string `json:"name"            yaml:"name"`
	PermissionLevel string `json:"permissionLevel" yaml:"permissionLevel"`
}

// BasesResponse is one page of the bases listing.
type BasesResponse struct {
	Bases  []BaseInfo `json:"bases"            yaml:"bases"`
	Offset string     `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// BaseSchema describes all tables of a base.
type BaseSchema struct {
	Tables []TableSchema `json:"tables" yaml:"tables"`
}

// TableSchema describes one table.
type TableSchema struct {
	ID             string        `json:"id"                    yaml:"id"`
	Name           string        `json:"name"                  yaml:"name"`
	PrimaryFieldID string        `json:"primaryFieldId"        yaml:"primaryFieldId"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Fields         []FieldSchema `json:"fields"                yaml:"fields"`
	Views          []ViewSchema  `json:"views"                 yaml:"views"`
}

// FieldSchema describes one field of a table. Options vary by field type and
// are kept raw.
type FieldSchema struct {
	ID          string          `json:"id"                    yaml:"id"`
	Name        string          `json:"name"                  yaml:"name"`
	Type        string          `json:"type"                  yaml:"type"`
	Options     json.RawMessage `json:"options,omitempty"     yaml:"options,omitempty"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// ViewSchema describes one server-side saved view of a table. This is the
// remote "view" concept, unrelated to the local pkg/views pipeline.
type ViewSchema struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Collaborator identifies a user in comments and collaborator fields.
type Collaborator struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Comment is a comment on a record.
type Comment struct {
	ID          string       `json:"id"          yaml:"id"`
	Author      Collaborator `json:"author"      yaml:"author"`
	Text        string       `json:"text"        yaml:"text"`
	CreatedTime time.Time    `json:"createdTime" yaml:"createdTime"`
}

// Attachment is a file attachment field value.
type Attachment struct {
	ID          string               `json:"id"                   yaml:"id"`
	URL         string               `json:"url"                  yaml:"url"`
	Filename    string               `json:"filename"             yaml:"filename"`
	Size        int64                `json:"size"                 yaml:"size"`
	ContentType string               `json:"type"                 yaml:"type"`
	Width       int                  `json:"width,omitempty"      yaml:"width,omitempty"`
	Height      int                  `json:"height,omitempty"     yaml:"height,omitempty"`
	Thumbnails  map[string]Thumbnail `json:"thumbnails,omitempty" yaml:"thumbnails,omitempty"`
}

// Thumbnail is a resized rendition of an image attachment.
type Thumbnail struct {
	URL    string `json:"url"    yaml:"url"`
	Width  int    `json:"width"  yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// WriteOptions carries modifiers shared by all mutating calls.
type WriteOptions struct {
	// Typecast asks the server to coerce submitted values into the target
	// field's declared type. It is forwarded verbatim; the client performs no
	// local coercion.
	Typecast bool
}
