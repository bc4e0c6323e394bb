package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/events"
)

func newSummaryCmd() *cobra.Command {
	var inputPath string
	var summaryPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize an existing scan report",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}

			stats := summarizeReport(inputPath, data)

			emitter := events.NewEmitter(cmd.OutOrStdout())
			if err := emitter.Emit(events.Event{Type: "summary", Message: "Report summary", Fields: stats}); err != nil {
				return err
			}

			if summaryPath != "" {
				if err := writeSummaryFile(summaryPath, stats); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to a scan report (markdown)")
	cmd.Flags().StringVar(&summaryPath, "summary-file", "", "Optional path for a JSON summary")
	cmd.MarkFlagRequired("input")

	return cmd
}

// summarizeReport extracts the detected areas and bullet counts from a
// rendered report without re-running the scan.
func summarizeReport(path string, data []byte) map[string]interface{} {
	var (
		section      string
		areas        []string
		findingLines int
		antiLines    int
	)

	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			section = strings.TrimPrefix(line, "## ")
		case strings.HasPrefix(line, "Detected areas: "):
			value := strings.TrimPrefix(line, "Detected areas: ")
			if value != "None" {
				areas = strings.Split(value, ", ")
			}
		case strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "- ...and"):
			switch section {
			case "Detailed Findings":
				findingLines++
			case "Potential Anti-patterns":
				antiLines++
			}
		}
	}

	if areas == nil {
		areas = []string{}
	}

	return map[string]interface{}{
		"input":            path,
		"sizeBytes":        len(data),
		"detectedAreas":    areas,
		"exampleLines":     findingLines,
		"antiPatternLines": antiLines,
	}
}

func writeSummaryFile(path string, stats map[string]interface{}) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	if err := ensureOutputDir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o600)
}
