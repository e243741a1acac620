// file: cmd/galgen/cmd/root.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"galgen/config"
	"galgen/internal/logger"
)

// Loaded by the root command before any subcommand runs.
var (
	appConfig *config.Config
	appLogger *logger.Logger
)

// AddCommands adds the global flags and all the subcommands to the root command.
func AddCommands(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a config file (default: galgen.yaml in . or ~/.config/galgen)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-encoding", "", "Log encoding: console or json")
	pf.String("log-output", "", "Log destination: stdout, stderr or a file path")

	root.PersistentPreRunE = setup
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	}

	root.AddCommand(newNewCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newLintCmd())
	root.AddCommand(newFormatsCmd())
}

// setup loads configuration and builds the logger shared by all subcommands.
func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appConfig, appLogger = cfg, log
	appLogger.Debug("configuration loaded",
		"command", cmd.Name(),
		"config", configPath,
		"logLevel", cfg.Logging.Level,
		"extraFormats", len(cfg.Formats))
	return nil
}
