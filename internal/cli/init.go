package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/config"
)

const starterRulesPath = "stylescan.rules.yml"

const starterConfig = `# stylescan configuration. CLI flags and STYLESCAN_* environment
# variables override the values in this file.
root: .
# out: tmp/scan.md
extensions:
  - .java
  - .kt
  - .xml
  - .yml
  - .yaml
  - .properties
  - .gradle
  - .kts
  - .toml
exclude:
  - generated/**
  - build/**
exampleCap: 50
# rules: stylescan.rules.yml
`

const starterRules = `# Extra detectors and anti-pattern rules appended to the built-in set.
# Keys must not collide with built-in keys; run "stylescan rules" to list them.
detectors:
  - group: internal
    key: company_http_client
    pattern: "CompanyHttpClient"
antipatterns:
  - key: wildcard_import
    pattern: "import .*\\.\\*;"
    note: "Expand wildcard imports; wildcards hide what a class depends on."
`

func newInitCmd(loader *config.Loader) *cobra.Command {
	var force bool
	var withRules bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration into the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := loader.ConfigPath
			if path == "" {
				path = config.DefaultConfigPath
			}

			if err := writeStarterFile(path, starterConfig, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

			if withRules {
				if err := writeStarterFile(starterRulesPath, starterRules, force); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", starterRulesPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite files that already exist")
	cmd.Flags().BoolVar(&withRules, "with-rules", false, "Also write a starter rules file")

	return cmd
}

func writeStarterFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
	}

	return os.WriteFile(path, []byte(content), 0o644)
}
