package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/catalog"
	"github.com/example/stylescan/internal/config"
)

type detectorListing struct {
	Group   string `json:"group"`
	Key     string `json:"key"`
	Pattern string `json:"pattern"`
}

type antiPatternListing struct {
	Key     string `json:"key"`
	Pattern string `json:"pattern"`
	Note    string `json:"note"`
}

type ruleListing struct {
	Detectors    []detectorListing    `json:"detectors"`
	AntiPatterns []antiPatternListing `json:"antiPatterns"`
}

func newRulesCmd(loader *config.Loader) *cobra.Command {
	var rulesFile string
	var group string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the detectors and anti-pattern rules a scan would apply",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov := config.Overrides{}
			if cmd.Flags().Changed("rules") {
				ov.RulesFile = rulesFile
			}

			cfg, err := loader.Load(ov)
			if err != nil {
				return err
			}

			cat, err := catalog.Load(cfg.RulesFile)
			if err != nil {
				return err
			}

			if group != "" && !containsGroup(cat, group) {
				return fmt.Errorf("unknown group %q", group)
			}

			if asJSON {
				return printRulesJSON(cmd, cat, group)
			}

			printRulesText(cmd, cat, group)

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML file with additional detectors and anti-pattern rules")
	cmd.Flags().StringVar(&group, "group", "", "Only list detectors from one group (di, testing, ...)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the rule set as JSON")

	return cmd
}

func containsGroup(cat catalog.Catalog, group string) bool {
	for _, g := range cat.Groups() {
		if g == group {
			return true
		}
	}

	return false
}

func printRulesJSON(cmd *cobra.Command, cat catalog.Catalog, group string) error {
	listing := ruleListing{
		Detectors:    []detectorListing{},
		AntiPatterns: []antiPatternListing{},
	}

	for _, d := range cat.Detectors {
		if group != "" && d.Group != group {
			continue
		}
		listing.Detectors = append(listing.Detectors, detectorListing{Group: d.Group, Key: d.Key, Pattern: d.Pattern})
	}

	if group == "" {
		for _, r := range cat.AntiPatterns {
			listing.AntiPatterns = append(listing.AntiPatterns, antiPatternListing{Key: r.Key, Pattern: r.Pattern, Note: r.Note})
		}
	}

	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

func printRulesText(cmd *cobra.Command, cat catalog.Catalog, group string) {
	out := cmd.OutOrStdout()

	for _, g := range cat.Groups() {
		if group != "" && g != group {
			continue
		}

		fmt.Fprintf(out, "%s (%s)\n", catalog.GroupTitle(g), g)
		for _, d := range cat.Detectors {
			if d.Group != g {
				continue
			}
			fmt.Fprintf(out, "  %-24s %s\n", d.Key, d.Pattern)
		}
		fmt.Fprintln(out)
	}

	if group != "" {
		return
	}

	fmt.Fprintln(out, "Anti-pattern rules")
	for _, r := range cat.AntiPatterns {
		fmt.Fprintf(out, "  %-24s %s\n", r.Key, r.Note)
	}
}
