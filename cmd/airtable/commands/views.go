package commands

import (
	"os"

	"github.com/fivetwenty-io/airtable-client/pkg/views"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewViewsCommand creates the views command.
func NewViewsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List available local data views",
		Long:  "List the local data views that can be applied to fetched records with 'table records --data-view'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := views.NewRegistry()
			infos := registry.List()

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(infos)
			case OutputFormatYAML:
				return printYAML(infos)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Description")

				for _, info := range infos {
					_ = table.Append(info.Name, info.Description)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
