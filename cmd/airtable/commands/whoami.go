package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print current user information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Whoami(cmd.Context())
			if err != nil {
				return err
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return printJSON(user)
			case OutputFormatYAML:
				return printYAML(user)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", user.ID)

				if user.Name != nil {
					_ = table.Append("Name", *user.Name)
				}

				_ = table.Append("Email", user.Email)

				_ = table.Render()

				return nil
			}
		},
	}
}
