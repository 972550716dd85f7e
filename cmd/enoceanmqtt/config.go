package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/enoceanmqtt/internal/sensorconfig"
	"github.com/muurk/enoceanmqtt/internal/ui"
)

var configFormat string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVar(&configFormat, "format", "text", "Output format (text, yaml)")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the gateway settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the [CONFIG] section",
	Long: `Show the gateway settings from the [CONFIG] section and report any
problems that would stop the gateway from starting. The MQTT password is
never printed.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	store, err := openStore(nil)
	if err != nil {
		return err
	}

	settings, err := store.Settings()
	var invalid *sensorconfig.ValidationError
	if err != nil && !errors.As(err, &invalid) {
		return err
	}

	out := cmd.OutOrStdout()
	switch configFormat {
	case "yaml":
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "text":
		fmt.Fprint(out, settings.FormatSettings())
	default:
		return fmt.Errorf("unknown format %q (valid: text, yaml)", configFormat)
	}

	problems := []string{}
	if invalid != nil {
		problems = append(problems, invalid.Problems...)
	}
	if err := settings.Validate(); errors.As(err, &invalid) {
		problems = append(problems, invalid.Problems...)
	}
	if len(problems) > 0 {
		details := make([]ui.Param, len(problems))
		for i, p := range problems {
			details[i] = ui.Param{Key: fmt.Sprintf("Problem %d", i+1), Value: p}
		}
		fmt.Fprintln(out, ui.NewWarningResult("Config is incomplete", details...))
	}

	return nil
}
