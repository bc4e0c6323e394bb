package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/stylescan/internal/catalog"
)

// timestampLayout formats the Generated header line.
const timestampLayout = "2006-01-02 15:04:05"

// Render serializes a report to Markdown. Section order is fixed and the `##`
// headings are stable; downstream tooling greps for them and for the
// "Detected areas:" line.
func Render(rep *Report, cat catalog.Catalog) string {
	var sb strings.Builder

	sb.WriteString("# Style Scan Report\n\n")
	sb.WriteString(fmt.Sprintf("Root: %s\n", rep.Root))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", rep.GeneratedAt.Format(timestampLayout)))
	if rep.Run != "" {
		sb.WriteString(fmt.Sprintf("Run: %s\n", rep.Run))
	}
	sb.WriteString(fmt.Sprintf("Files scanned: %d", rep.FilesScanned))
	if rep.FilesSkipped > 0 {
		sb.WriteString(fmt.Sprintf(" (%d skipped)", rep.FilesSkipped))
	}
	sb.WriteString("\n\n")

	renderSummary(&sb, rep, cat)
	renderRecommendations(&sb, rep)
	renderFindings(&sb, rep, cat)
	renderAntiPatterns(&sb, rep, cat)
	renderStyleTopics(&sb)

	return sb.String()
}

func renderSummary(sb *strings.Builder, rep *Report, cat catalog.Catalog) {
	sb.WriteString("## Summary\n\n")

	var detected []string
	for _, group := range cat.Groups() {
		for _, d := range cat.Detectors {
			if d.Group == group && rep.Count(d.Key) > 0 {
				detected = append(detected, catalog.GroupTitle(group))
				break
			}
		}
	}

	if len(detected) == 0 {
		sb.WriteString("Detected areas: None\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("Detected areas: %s\n\n", strings.Join(detected, ", ")))
	}

	totalMatches := 0
	firing := 0
	for _, hit := range rep.Hits {
		totalMatches += hit.Count
		if hit.Count > 0 {
			firing++
		}
	}
	antiMatches := 0
	for _, finding := range rep.AntiFindings {
		antiMatches += finding.Count
	}
	sb.WriteString(fmt.Sprintf("%d matches across %d detectors; %d anti-pattern findings.\n\n",
		totalMatches, firing, antiMatches))
}

func renderRecommendations(sb *strings.Builder, rep *Report) {
	sb.WriteString("## Recommendations\n\n")
	for _, line := range rep.Recommendations {
		sb.WriteString(fmt.Sprintf("- %s\n", line))
	}
	if len(rep.Recommendations) > 0 {
		sb.WriteString("\n")
	}
}

func renderFindings(sb *strings.Builder, rep *Report, cat catalog.Catalog) {
	sb.WriteString("## Detailed Findings\n\n")

	anyFired := false
	for _, group := range cat.Groups() {
		var fired []catalog.Detector
		for _, d := range cat.Detectors {
			if d.Group == group && rep.Count(d.Key) > 0 {
				fired = append(fired, d)
			}
		}
		if len(fired) == 0 {
			continue
		}
		anyFired = true

		sb.WriteString(fmt.Sprintf("### %s\n\n", catalog.GroupTitle(group)))
		for _, d := range fired {
			hit := rep.Hits[d.Key]
			sb.WriteString(fmt.Sprintf("`%s`: %d\n\n", d.Key, hit.Count))
			for _, m := range hit.Examples {
				sb.WriteString(fmt.Sprintf("- %s:%d — %s\n", m.File, m.Line, m.Snippet))
			}
			if hidden := hit.Count - len(hit.Examples); hidden > 0 {
				sb.WriteString(fmt.Sprintf("- ...and %d more\n", hidden))
			}
			sb.WriteString("\n")
		}
	}

	if !anyFired {
		sb.WriteString("No detector matches.\n\n")
	}
}

func renderAntiPatterns(sb *strings.Builder, rep *Report, cat catalog.Catalog) {
	sb.WriteString("## Potential Anti-patterns\n\n")

	anyFound := false
	for _, rule := range cat.AntiPatterns {
		finding, ok := rep.AntiFindings[rule.Key]
		if !ok || finding.Count == 0 {
			continue
		}
		anyFound = true

		for _, m := range finding.Matches {
			sb.WriteString(fmt.Sprintf("- %s:%d — %s  <-- %s\n", m.File, m.Line, m.Snippet, rule.Note))
		}
		if hidden := finding.Count - len(finding.Matches); hidden > 0 {
			sb.WriteString(fmt.Sprintf("- ...and %d more for this rule\n", hidden))
		}
	}

	if !anyFound {
		sb.WriteString("None detected.\n")
	}
	sb.WriteString("\n")
}

func renderStyleTopics(sb *strings.Builder) {
	sb.WriteString("## Suggested Style Topics\n\n")
	sb.WriteString("Topics worth a team session, independent of what this scan found:\n\n")
	topics := []string{
		"Constructor injection and component wiring",
		"Logging discipline: levels, structured arguments, and what never to log",
		"Exception handling: custom exceptions, @ControllerAdvice, and ProblemDetail",
		"Executor ownership for async and scheduled work",
		"Transaction boundaries and repository design",
		"The test pyramid: slice tests before end-to-end tests",
		"Records, sealed types, and pattern matching for domain modeling",
		"Dependency hygiene: internal packages and shaded imports",
	}
	for _, topic := range topics {
		sb.WriteString(fmt.Sprintf("- %s\n", topic))
	}
}

// WriteError reports a failure to persist the rendered report.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write persists a rendered report with a single write, creating the parent
// directory when needed. The document is already fully built in memory, so a
// failure never leaves a partial report behind.
func Write(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
