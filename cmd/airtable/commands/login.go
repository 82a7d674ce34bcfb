package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/fivetwenty-io/airtable-client/pkg/atclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key for later use",
		Long:  "Validate an Airtable personal access token and persist it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return airtable.ErrAPIKeyRequired
			}

			client, err := atclient.New(&airtable.Config{
				APIKey:   apiKey,
				Endpoint: viper.GetString("endpoint"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Validate the key before persisting it.
			user, err := client.Whoami(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			viper.Set("api-key", apiKey)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", user.Email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiKey, "key", "k", "", "API key/token to store")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("api-key", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

// saveConfig writes the persisted settings to the config file with owner-only
// permissions since it holds a credential.
func saveConfig() error {
	configFile := viper.ConfigFileUsed()

	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to determine home directory: %w", err)
		}

		configDir := filepath.Join(home, ".airtable")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	settings := map[string]interface{}{
		"api-key": viper.GetString("api-key"),
	}

	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		settings["endpoint"] = endpoint
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
