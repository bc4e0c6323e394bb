package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/config"
)

// runtimeFlagSet tracks scan flags before they are converted into config overrides.
type runtimeFlagSet struct {
	root        string
	out         string
	rules       string
	extensions  string
	exclude     string
	excludeFile string
	exampleCap  int
	dryRun      bool
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.root, "root", "", "Directory tree to scan (overrides config)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Report destination path (defaults to tmp/scan-<timestamp>.md)")
	cmd.Flags().StringVar(&flags.rules, "rules", "", "YAML file with additional detectors and anti-pattern rules")
	cmd.Flags().StringVar(&flags.extensions, "extensions", "", "Comma-separated file extensions to scan (.java,.kt,...)")
	cmd.Flags().StringVar(&flags.exclude, "exclude", "", "Comma-separated glob patterns for paths to skip")
	cmd.Flags().StringVar(&flags.excludeFile, "exclude-file", "", "Path to a file with one exclude pattern per line")
	cmd.Flags().IntVar(&flags.exampleCap, "example-cap", 0, "Maximum example locations kept per rule (1-1000)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate configuration and rules without scanning")
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("root") {
		ov.Root = f.root
	}

	if cmd.Flags().Changed("out") {
		ov.Out = f.out
	}

	if cmd.Flags().Changed("rules") {
		ov.RulesFile = f.rules
	}

	if cmd.Flags().Changed("extensions") {
		ov.Extensions = config.ParseExtensions(f.extensions)
	}

	if cmd.Flags().Changed("exclude") {
		ov.Excludes = config.ParsePatterns(f.exclude)
	}

	if cmd.Flags().Changed("exclude-file") {
		ov.ExcludeFile = f.excludeFile
	}

	if cmd.Flags().Changed("example-cap") {
		ov.ExampleCap = f.exampleCap
		ov.ExampleCapSet = true
	}

	if cmd.Flags().Changed("dry-run") {
		ov.DryRun = &f.dryRun
	}

	return ov
}
