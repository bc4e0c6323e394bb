package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/catalog"
	"github.com/example/stylescan/internal/config"
)

type doctorCheck struct {
	Name   string
	Status string // "✓", "✗", or "⊘"
	Detail string
	Error  error
}

func newDoctorCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the configuration, rule set, and filesystem before a scan",
		Long: `The doctor subcommand validates the stylescan environment:
- Go runtime version
- Rules file presence and catalog compilation
- Scan root existence
- Configuration validity and output directory writability`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			checks := runDoctorChecks(&cfg)
			printDoctorReport(cmd, checks)

			// Return error if any check failed
			for _, check := range checks {
				if check.Error != nil {
					return fmt.Errorf("doctor checks failed")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\n✓ All checks passed. Ready to scan.")
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

func runDoctorChecks(cfg *config.RuntimeConfig) []doctorCheck {
	checks := []doctorCheck{}

	// Check 1: Go version
	checks = append(checks, checkGoVersion())

	// Check 2: Rules file presence
	checks = append(checks, checkRulesFile(cfg.RulesFile))

	// Check 3: Catalog compilation
	checks = append(checks, checkCatalog(cfg.RulesFile))

	// Check 4: Scan root
	checks = append(checks, checkScanRoot(cfg.Root))

	// Check 5: Configuration validity
	checks = append(checks, checkConfiguration(cfg))

	// Check 6: Output directory
	checks = append(checks, checkOutputDirectory(cfg.Out))

	return checks
}

func checkGoVersion() doctorCheck {
	return doctorCheck{
		Name:   "Go Runtime",
		Status: "✓",
		Detail: fmt.Sprintf("Version %s", runtime.Version()),
	}
}

func checkRulesFile(rulesFile string) doctorCheck {
	if rulesFile == "" {
		return doctorCheck{
			Name:   "Rules File",
			Status: "⊘",
			Detail: "None configured (built-in rules only)",
		}
	}

	info, err := os.Stat(rulesFile)
	if err != nil {
		return doctorCheck{
			Name:   "Rules File",
			Status: "✗",
			Detail: rulesFile,
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Rules File",
		Status: "✓",
		Detail: fmt.Sprintf("%s (%d bytes)", rulesFile, info.Size()),
	}
}

func checkCatalog(rulesFile string) doctorCheck {
	cat, err := catalog.Load(rulesFile)
	if err != nil {
		return doctorCheck{
			Name:   "Rule Catalog",
			Status: "✗",
			Detail: "Failed to compile",
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Rule Catalog",
		Status: "✓",
		Detail: fmt.Sprintf("%d detectors, %d anti-pattern rules", len(cat.Detectors), len(cat.AntiPatterns)),
	}
}

func checkScanRoot(root string) doctorCheck {
	info, err := os.Stat(root)
	if err != nil {
		return doctorCheck{
			Name:   "Scan Root",
			Status: "✗",
			Detail: root,
			Error:  err,
		}
	}

	if !info.IsDir() {
		return doctorCheck{
			Name:   "Scan Root",
			Status: "✗",
			Detail: root,
			Error:  fmt.Errorf("%s is not a directory", root),
		}
	}

	return doctorCheck{
		Name:   "Scan Root",
		Status: "✓",
		Detail: root,
	}
}

func checkConfiguration(cfg *config.RuntimeConfig) doctorCheck {
	err := cfg.Validate()
	if err != nil {
		return doctorCheck{
			Name:   "Configuration",
			Status: "✗",
			Detail: "Invalid configuration",
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Configuration",
		Status: "✓",
		Detail: fmt.Sprintf("%d extensions, example cap %d", len(cfg.Extensions), cfg.ExampleCap),
	}
}

func checkOutputDirectory(out string) doctorCheck {
	dir := "tmp"
	if out != "" {
		dir = filepath.Dir(out)
	}

	err := ensureOutputDir(dir)
	if err != nil {
		return doctorCheck{
			Name:   "Output Directory",
			Status: "✗",
			Detail: dir,
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Output Directory",
		Status: "✓",
		Detail: dir,
	}
}

func printDoctorReport(cmd *cobra.Command, checks []doctorCheck) {
	fmt.Fprintln(cmd.OutOrStdout(), "Running environment diagnostics...")

	for _, check := range checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s %s\n", check.Status, check.Name+":", check.Detail)
		if check.Error != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "   Error: %v\n", check.Error)
		}
	}
}
