package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/stylescan/internal/catalog"
	"github.com/example/stylescan/internal/config"
	"github.com/example/stylescan/internal/events"
	"github.com/example/stylescan/internal/fsio"
	"github.com/example/stylescan/internal/logging"
	"github.com/example/stylescan/internal/report"
	"github.com/example/stylescan/internal/scanner"
)

func newScanCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a source tree and write a style report",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			cat, err := catalog.Load(cfg.RulesFile)
			if err != nil {
				return err
			}

			logging.Debug("configuration resolved",
				"root", cfg.Root,
				"extensions", len(cfg.Extensions),
				"excludes", len(cfg.Excludes),
				"exampleCap", cfg.ExampleCap,
			)

			clock := fsio.NewClock()
			now := clock.Now().UTC()

			outPath := cfg.Out
			if outPath == "" {
				outPath = defaultOutPath(now)
			}

			emitter := events.NewEmitter(cmd.OutOrStdout())
			if err := emitter.Emit(events.Event{Type: "scan-start", Message: "Starting scan", Fields: map[string]interface{}{
				"root":         cfg.Root,
				"out":          outPath,
				"detectors":    len(cat.Detectors),
				"antiPatterns": len(cat.AntiPatterns),
				"dryRun":       cfg.DryRun,
			}}); err != nil {
				return err
			}

			if cfg.DryRun {
				return emitter.Emit(events.Event{Type: "dry-run-complete", Message: "Configuration and rules are valid", Fields: map[string]interface{}{"out": outPath}})
			}

			scan := &scanner.Scanner{
				Catalog:    cat,
				Extensions: cfg.ExtensionSet(),
				Excludes:   cfg.Excludes,
				ExampleCap: cfg.ExampleCap,
				FS:         fsio.NewFS(),
				Logger:     logging.Logger,
			}

			rep, err := scan.Scan(cmd.Context(), cfg.Root)
			if err != nil {
				return err
			}

			rep.GeneratedAt = now
			rep.Run = emitter.Run()
			rep.Recommendations = report.Recommendations(rep.Hits)

			content := report.Render(rep, cat)
			if err := report.Write(outPath, content); err != nil {
				return err
			}

			if err := emitter.Emit(events.Event{Type: "report-written", Fields: map[string]interface{}{"path": outPath, "bytes": len(content)}}); err != nil {
				return err
			}

			return emitter.Emit(events.Event{Type: "scan-finished", Message: "Scan complete", Fields: map[string]interface{}{
				"filesScanned": rep.FilesScanned,
				"filesSkipped": rep.FilesSkipped,
				"matches":      totalMatches(rep),
			}})
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

// defaultOutPath builds the fallback report path used when no --out value is
// configured, such as tmp/scan-20240301_093000.md.
func defaultOutPath(now time.Time) string {
	return filepath.Join("tmp", fmt.Sprintf("scan-%s.md", now.Format("20060102_150405")))
}

func totalMatches(rep *report.Report) int {
	total := 0
	for _, hit := range rep.Hits {
		total += hit.Count
	}

	return total
}
