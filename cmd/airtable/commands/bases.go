package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBasesCommand creates the bases command.
func NewBasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List all accessible bases",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			bases, err := client.Bases(cmd.Context())
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(bases)
			case OutputFormatYAML:
				return printYAML(bases)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Permission")

				for _, base := range bases {
					_ = table.Append(base.ID, base.Name, base.PermissionLevel)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
