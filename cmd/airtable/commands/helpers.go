package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fivetwenty-io/airtable-client/internal/auth"
	"github.com/fivetwenty-io/airtable-client/internal/constants"
	"github.com/fivetwenty-io/airtable-client/pkg/airtable"
	"github.com/fivetwenty-io/airtable-client/pkg/atclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultJSONIndent = "  "
)

// CreateClient builds a client from the resolved flag/env/config key.
func CreateClient() (airtable.Client, error) {
	apiKey, err := auth.ResolveAPIKey(
		viper.GetString("key"),
		viper.GetString("key-file"),
		viper.GetString("key-env"),
	)
	if err != nil {
		// Fall back to a key persisted by `airtable login`.
		if configKey := viper.GetString("api-key"); configKey != "" {
			apiKey = configKey
		} else {
			return nil, err
		}
	}

	config := &airtable.Config{
		APIKey:   apiKey,
		Endpoint: viper.GetString("endpoint"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	return atclient.New(config)
}

// ResolveBase resolves the base ID from an explicit value, the environment,
// or by auto-detection when the account can reach exactly one base.
func ResolveBase(ctx context.Context, client airtable.Client, explicit string) (string, error) {
	if baseID := auth.ResolveBaseID(explicit); baseID != "" {
		return baseID, nil
	}

	bases, err := client.Bases(ctx)
	if err != nil {
		return "", fmt.Errorf("listing bases for auto-detection: %w", err)
	}

	switch len(bases) {
	case 0:
		return "", constants.ErrNoBasesFound
	case 1:
		fmt.Fprintf(os.Stderr, "Auto-detected base: %s - %s\n", bases[0].ID, bases[0].Name)

		return bases[0].ID, nil
	default:
		for _, base := range bases {
			fmt.Fprintf(os.Stderr, "  %s - %s\n", base.ID, base.Name)
		}

		return "", constants.ErrMultipleBases
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// printYAML writes v as YAML to stdout.
func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("writing YAML output: %w", err)
	}

	return nil
}

// stderrLogger reports transport debug output on stderr.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	log.Printf("DEBUG %s %v", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	log.Printf("INFO %s %v", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	log.Printf("WARN %s %v", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	log.Printf("ERROR %s %v", msg, fields)
}
