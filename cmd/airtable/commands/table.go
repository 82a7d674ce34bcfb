package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/fivetwenty-io/airtable-client/pkg/views"
	"github.com/spf13/cobra"
)

// Static errors for flag and lookup failures.
var (
	errInvalidDirection = errors.New("invalid sort direction, expected asc or desc")
	errTableNotFound    = errors.New("table not found in base schema")
)

// NewTableCommand creates the table command group.
func NewTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Table record operations",
		Long:  "Query and mutate the records of a table. The base is chosen with --base, AIRTABLE_BASE_ID/BASE, or auto-detected when only one base is accessible.",
	}

	cmd.PersistentFlags().StringP("base", "b", "", "base ID (e.g. appXXXXXXXXXXXXXX)")

	cmd.AddCommand(newTableRecordsCommand())
	cmd.AddCommand(newTableSchemaCommand())
	cmd.AddCommand(newTableCreateCommand())
	cmd.AddCommand(newTableUpdateCommand())
	cmd.AddCommand(newTableDeleteCommand())

	return cmd
}

// RecordsOptions holds the flags of the records command.
type RecordsOptions struct {
	Formula    string
	View       string
	DataView   string
	Limit      int
	Sorts      []string
	Directions []string
	Fields     []string
	Offset     string
	All        bool
}

func newTableRecordsCommand() *cobra.Command {
	var opts RecordsOptions

	cmd := &cobra.Command{
		Use:   "records TABLE_NAME",
		Short: "Retrieve records from a table",
		Long: `Retrieve records from a table.

Output is always JSON: a {records, offset} pair, or a bare records array
when --all collapses pagination.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableRecordsCommand(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Formula, "formula", "w", "", "filter records with a formula")
	cmd.Flags().StringVarP(&opts.View, "view", "u", "", "filter records by a server-side view")
	cmd.Flags().StringVar(&opts.DataView, "data-view", "", "apply a local data view to the fetched records (e.g. 'clio')")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "limit the number of records returned")
	cmd.Flags().StringArrayVarP(&opts.Sorts, "sort", "S", nil, "sort records by field(s)")
	cmd.Flags().StringArrayVarP(&opts.Directions, "direction", "D", nil, "sort direction(s) (asc/desc), paired with --sort by position")
	cmd.Flags().StringArrayVarP(&opts.Fields, "field", "F", nil, "limit output to certain field(s)")
	cmd.Flags().StringVar(&opts.Offset, "offset", "", "continue from the given pagination offset")
	cmd.Flags().BoolVar(&opts.All, "all", false, "retrieve all records by following pagination")

	cmd.MarkFlagsMutuallyExclusive("all", "limit")
	cmd.MarkFlagsMutuallyExclusive("all", "offset")

	return cmd
}

func runTableRecordsCommand(cmd *cobra.Command, tableName string, opts RecordsOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	baseID, err := ResolveBase(cmd.Context(), client, cmd.Flag("base").Value.String())
	if err != nil {
		return err
	}

	spec, err := buildQuerySpec(opts)
	if err != nil {
		return err
	}

	table := client.Base(baseID).Table(tableName)

	if opts.All {
		records, err := table.ListAll(cmd.Context(), spec)
		if err != nil {
			return err
		}

		return outputRecords(records, opts.DataView)
	}

	page, err := table.List(cmd.Context(), spec)
	if err != nil {
		return err
	}

	if opts.DataView != "" {
		return outputRecords(page.Records, opts.DataView)
	}

	return printJSON(page)
}

// buildQuerySpec translates records flags into a query spec. Directions pair
// with sorts by position and default to ascending.
func buildQuerySpec(opts RecordsOptions) (airtable.QuerySpec, error) {
	spec := airtable.NewQuerySpec()

	if opts.Formula != "" {
		spec = spec.WithFilterFormula(opts.Formula)
	}

	if opts.View != "" {
		spec = spec.WithView(opts.View)
	}

	if opts.Limit > 0 {
		spec = spec.WithMaxRecords(opts.Limit)
	}

	if len(opts.Fields) > 0 {
		spec = spec.WithFields(opts.Fields...)
	}

	if opts.Offset != "" {
		spec = spec.WithOffset(opts.Offset)
	}

	for i, field := range opts.Sorts {
		direction := airtable.SortAsc

		if i < len(opts.Directions) {
			switch opts.Directions[i] {
			case string(airtable.SortAsc):
				direction = airtable.SortAsc
			case string(airtable.SortDesc):
				direction = airtable.SortDesc
			default:
				return airtable.QuerySpec{}, fmt.Errorf("%w: %q", errInvalidDirection, opts.Directions[i])
			}
		}

		spec = spec.WithSort(field, direction)
	}

	return spec, nil
}

// outputRecords prints a bare record list, optionally re-shaped by a local
// data view.
func outputRecords(records []airtable.Record, dataView string) error {
	if dataView == "" {
		return printJSON(records)
	}

	registry := views.NewRegistry()

	shaped, err := registry.ProcessWithView(dataView, records)
	if err != nil {
		return err
	}

	return printJSON(shaped)
}

func newTableSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema TABLE_NAME",
		Short: "Print table schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			baseID, err := ResolveBase(cmd.Context(), client, cmd.Flag("base").Value.String())
			if err != nil {
				return err
			}

			schema, err := client.Base(baseID).Schema(cmd.Context())
			if err != nil {
				return err
			}

			for _, tableSchema := range schema.Tables {
				if tableSchema.Name == args[0] || tableSchema.ID == args[0] {
					return printJSON(tableSchema)
				}
			}

			return fmt.Errorf("%w: %s", errTableNotFound, args[0])
		},
	}
}

// MutateOptions holds the flags shared by create and update.
type MutateOptions struct {
	FieldsJSON string
	Typecast   bool
}

func newTableCreateCommand() *cobra.Command {
	var opts MutateOptions

	cmd := &cobra.Command{
		Use:   "create TABLE_NAME",
		Short: "Create a new record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldsJSON(opts.FieldsJSON)
			if err != nil {
				return err
			}

			table, err := resolveTable(cmd, args[0])
			if err != nil {
				return err
			}

			record, err := table.Create(cmd.Context(), fields, &airtable.WriteOptions{Typecast: opts.Typecast})
			if err != nil {
				return err
			}

			return printJSON(record)
		},
	}

	cmd.Flags().StringVarP(&opts.FieldsJSON, "fields", "j", "", "record fields as JSON")
	cmd.Flags().BoolVarP(&opts.Typecast, "typecast", "t", false, "enable server-side typecasting")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func newTableUpdateCommand() *cobra.Command {
	var opts MutateOptions

	cmd := &cobra.Command{
		Use:   "update TABLE_NAME RECORD_ID",
		Short: "Update an existing record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldsJSON(opts.FieldsJSON)
			if err != nil {
				return err
			}

			table, err := resolveTable(cmd, args[0])
			if err != nil {
				return err
			}

			record, err := table.Update(cmd.Context(), args[1], fields, &airtable.WriteOptions{Typecast: opts.Typecast})
			if err != nil {
				return err
			}

			return printJSON(record)
		},
	}

	cmd.Flags().StringVarP(&opts.FieldsJSON, "fields", "j", "", "record fields as JSON")
	cmd.Flags().BoolVarP(&opts.Typecast, "typecast", "t", false, "enable server-side typecasting")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func newTableDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TABLE_NAME RECORD_ID [RECORD_ID...]",
		Short: "Delete one or more records",
		Long:  "Delete records. A single ID uses the record endpoint; multiple IDs are deleted as one batch of at most 10.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := resolveTable(cmd, args[0])
			if err != nil {
				return err
			}

			recordIDs := args[1:]

			if len(recordIDs) == 1 {
				err = table.Delete(cmd.Context(), recordIDs[0])
				if err != nil {
					return err
				}

				return printJSON(airtable.DeletedRecord{ID: recordIDs[0], Deleted: true})
			}

			deleted, err := table.BatchDelete(cmd.Context(), recordIDs)
			if err != nil {
				return err
			}

			return printJSON(deleted)
		},
	}
}

// resolveTable builds the table handle a mutating subcommand operates on.
func resolveTable(cmd *cobra.Command, tableName string) (airtable.Table, error) {
	client, err := CreateClient()
	if err != nil {
		return nil, err
	}

	baseID, err := ResolveBase(cmd.Context(), client, cmd.Flag("base").Value.String())
	if err != nil {
		return nil, err
	}

	return client.Base(baseID).Table(tableName), nil
}

func parseFieldsJSON(raw string) (airtable.Fields, error) {
	var fields airtable.Fields

	err := json.Unmarshal([]byte(raw), &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing --fields JSON: %w", err)
	}

	return fields, nil
}
