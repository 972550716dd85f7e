// Enoceanmqtt bridges EnOcean radio sensors to an MQTT broker.
//
// The sensors it knows about and the broker settings live in one INI file
// that can be edited by hand while the gateway runs, or through the
// sensors subcommands.
//
// Usage:
//
//	enoceanmqtt [--debug] [--logfile PATH] [config...]
//	enoceanmqtt sensors list
//	enoceanmqtt sensors add 0x01A64F7F D5-00-01
//
// See 'enoceanmqtt --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/enoceanmqtt/internal/gateway"
	"github.com/muurk/enoceanmqtt/internal/logging"
	"github.com/muurk/enoceanmqtt/internal/sensorconfig"
	"github.com/muurk/enoceanmqtt/internal/version"
)

// DefaultConfigPath is used when no config file is given.
const DefaultConfigPath = "/etc/enoceanmqtt.conf"

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	debug       bool
	logFile     string
	configPaths []string
)

// Gateway flags
var pollInterval time.Duration

var rootCmd = &cobra.Command{
	Use:   "enoceanmqtt [config...]",
	Short: "EnOcean to MQTT gateway",
	Long: `Bridges EnOcean radio sensors to an MQTT broker.

Sensors and broker settings are read from an INI config file. The file may
be edited while the gateway runs; changes are picked up on the next poll.

If several config files are given, only the last one is used.`,
	Example: `  # Run with the default config
  enoceanmqtt

  # Run with a custom config and debug output on the console
  enoceanmqtt --debug --logfile /var/log/enoceanmqtt.log ./enoceanmqtt.conf`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logging.Options{Debug: debug, LogFile: logFile})
	},
	RunE: runGateway,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable console debugging")
	rootCmd.PersistentFlags().StringVar(&logFile, "logfile", "", "Log file location (disabled if not specified)")
	rootCmd.PersistentFlags().StringArrayVarP(&configPaths, "config", "c", nil, "Config file (may be repeated, the last one wins)")

	rootCmd.Flags().DurationVar(&pollInterval, "poll-interval", gateway.DefaultPollInterval, "How often to check the config file for changes")

	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath picks the config file from --config flags followed by
// positional arguments. Only the last one is used.
func resolveConfigPath(flagPaths, args []string) string {
	paths := append(append([]string(nil), flagPaths...), args...)
	if len(paths) == 0 {
		return DefaultConfigPath
	}
	path := paths[len(paths)-1]
	if len(paths) > 1 {
		logging.Warn("Multiple config files set, using the last one",
			zap.String("path", path),
			zap.Strings("ignored", paths[:len(paths)-1]),
		)
	}
	return path
}

// openStore opens the config and fails when it could not be loaded.
func openStore(args []string) (*sensorconfig.Store, error) {
	path := resolveConfigPath(configPaths, args)
	store := sensorconfig.Open(path)
	if err := store.LoadError(); err != nil {
		return nil, err
	}
	return store, nil
}

func runGateway(cmd *cobra.Command, args []string) error {
	store, err := openStore(args)
	if err != nil {
		return err
	}

	settings, err := store.Settings()
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logging.Info("Loaded config",
		zap.String("path", store.Path()),
		zap.String("enocean_port", settings.EnOceanPort),
		zap.String("mqtt_broker", fmt.Sprintf("%s:%d", settings.MQTTHost, settings.MQTTPort)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var comm gateway.Communicator = &gateway.LogCommunicator{Interval: pollInterval}
	if err := comm.Run(ctx, store); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("gateway stopped: %w", err)
	}

	logging.Info("Gateway stopped")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "enoceanmqtt %s (commit: %s)\n", version.Version, version.Commit)
	},
}
