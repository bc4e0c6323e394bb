package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/config"
	"github.com/example/stylescan/internal/logging"
)

const version = "0.2.0"

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath}
	rootOpts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "stylescan",
		Short:         "Scan a codebase for style patterns and produce a Markdown report",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("stylescan version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to stylescan.yml (optional)")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.Verbose, "verbose", false, "Log skipped files and other details to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("config") {
			if path := os.Getenv(config.EnvConfig); path != "" {
				rootOpts.ConfigPath = path
			}
		}
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		if rootOpts.Verbose {
			logging.SetLevel(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newInitCmd(loader),
		newScanCmd(loader),
		newRulesCmd(loader),
		newSummaryCmd(),
		newDoctorCmd(loader),
	)

	return rootCmd.Execute()
}

type rootOptions struct {
	ConfigPath string
	Verbose    bool
}
