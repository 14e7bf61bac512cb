// Command netex runs network analysis tasks over interaction graph snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netex/config"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

var (
	flagConfig   string
	flagLogLevel string
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("netex version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("netex version %s-dev", version)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "netex",
		Short:         "Network analysis of protein and drug interaction graphs",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newInspectCmd(),
		newGenerateCmd(),
		newAlgorithmsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger.
func setup() (config.Config, *logrus.Logger, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return config.Config{}, nil, err
		}
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, log, nil
}
