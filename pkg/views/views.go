// Package views implements the local post-fetch view pipeline: named
// processors that filter a finished record set and re-shape it for a specific
// downstream consumer. Local views are unrelated to the server-side saved
// views referenced by QuerySpec.WithView.
package views

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
)

// Processor filters and formats records for one named view.
//
// Filtering and formatting are deliberately separate steps so a caller can
// ask "would this record survive the view" without producing output.
// Processors are pure functions of their input: no network access, no
// mutation of the records they receive.
type Processor interface {
	// Name is the view name used for CLI matching.
	Name() string

	// Description says what the view extracts.
	Description() string

	// RequiredFields lists the field names the view needs present.
	RequiredFields() []string

	// OptionalFields lists field names the view reads when present; absent
	// values degrade to a default projection instead of erroring.
	OptionalFields() []string

	// ShouldInclude reports whether a record belongs in the view output.
	ShouldInclude(record airtable.Record) bool

	// Process formats a collection of already-filtered records.
	Process(records []airtable.Record) (interface{}, error)
}

// UnknownViewError reports a lookup of a view name nobody registered.
type UnknownViewError struct {
	Name      string
	Available []string
}

// Error implements the error interface.
func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view %q. Available views: %s", e.Name, strings.Join(e.Available, ", "))
}

// MissingFieldError reports a record lacking a field its view requires.
type MissingFieldError struct {
	Field    string
	RecordID string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q in record %q", e.Field, e.RecordID)
}

// Info is one entry of a registry listing.
type Info struct {
	Name        string
	Description string
}

// Registry maps view names to processors. A registry is an explicit value
// owned by its caller, so tests and embedders can build their own instead of
// sharing process-wide state.
type Registry struct {
	processors []Processor
}

// NewRegistry creates a registry with all built-in views registered.
func NewRegistry() *Registry {
	registry := &Registry{}
	registry.Register(NewClioView())

	return registry
}

// Register adds a processor. Later registrations shadow earlier ones with
// the same name.
func (r *Registry) Register(processor Processor) {
	r.processors = append([]Processor{processor}, r.processors...)
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (Processor, bool) {
	for _, processor := range r.processors {
		if processor.Name() == name {
			return processor, true
		}
	}

	return nil, false
}

// List returns the registered views in registration order. A name registered
// more than once appears exactly once, described by the processor Get would
// resolve it to.
func (r *Registry) List() []Info {
	seen := make(map[string]bool, len(r.processors))
	infos := make([]Info, 0, len(r.processors))

	for i := len(r.processors) - 1; i >= 0; i-- {
		name := r.processors[i].Name()
		if seen[name] {
			continue
		}

		seen[name] = true

		processor, _ := r.Get(name)
		infos = append(infos, Info{
			Name:        name,
			Description: processor.Description(),
		})
	}

	return infos
}

// ProcessWithView filters records through the named view and formats the
// survivors. Unknown names return an UnknownViewError enumerating what is
// registered.
func (r *Registry) ProcessWithView(name string, records []airtable.Record) (interface{}, error) {
	processor, ok := r.Get(name)
	if !ok {
		available := make([]string, 0, len(r.processors))
		for _, info := range r.List() {
			available = append(available, info.Name)
		}

		return nil, &UnknownViewError{Name: name, Available: available}
	}

	filtered := make([]airtable.Record, 0, len(records))

	for _, record := range records {
		if processor.ShouldInclude(record) {
			filtered = append(filtered, record)
		}
	}

	return processor.Process(filtered)
}

// ExtractFieldValue reads one field from a record. A missing or null value is
// a MissingFieldError when required, and a nil value otherwise.
func ExtractFieldValue(record airtable.Record, field string, required bool) (interface{}, error) {
	value, ok := record.Fields[field]
	if !ok || value == nil {
		if required {
			return nil, &MissingFieldError{Field: field, RecordID: record.ID}
		}

		return nil, nil
	}

	return value, nil
}
