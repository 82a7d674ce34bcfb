package commands

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBaseCommand creates the base command group.
func NewBaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base",
		Short: "Base operations",
		Long:  "Inspect a base. The base is chosen with --base, AIRTABLE_BASE_ID/BASE, or auto-detected when only one base is accessible.",
	}

	cmd.PersistentFlags().StringP("base", "b", "", "base ID (e.g. appXXXXXXXXXXXXXX)")

	cmd.AddCommand(newBaseSchemaCommand())

	return cmd
}

func newBaseSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print base schema",
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

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return printYAML(schema)
			case OutputFormatJSON:
				return printJSON(schema)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Table", "ID", "Fields", "Views")

				for _, tableSchema := range schema.Tables {
					_ = table.Append(tableSchema.Name, tableSchema.ID,
						strconv.Itoa(len(tableSchema.Fields)), strconv.Itoa(len(tableSchema.Views)))
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
