// Package scanner walks a file tree, applies every catalog rule to every
// eligible line, and aggregates the results into a report.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/example/stylescan/internal/catalog"
	"github.com/example/stylescan/internal/fsio"
	"github.com/example/stylescan/internal/logging"
	"github.com/example/stylescan/internal/report"
)

// maxSnippetLen bounds the example text kept per match.
const maxSnippetLen = 240

// defaultExampleCap applies when the caller leaves ExampleCap unset.
const defaultExampleCap = 50

// RootError reports an unusable scan root. It aborts the run before any file
// is read.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("scan root %s: %v", e.Path, e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// Scanner applies a compiled catalog to a file tree. Fields left zero fall
// back to sensible defaults, except Extensions: a file is only scanned when
// its extension is in the set.
type Scanner struct {
	Catalog    catalog.Catalog
	Extensions map[string]struct{}
	Excludes   []string
	ExampleCap int
	FS         fsio.FS      // nil means the OS filesystem
	Logger     *slog.Logger // nil means the package logger
}

type fileEntry struct {
	rel string
	abs string
}

// Scan walks root and aggregates every detector and anti-pattern rule into a
// fresh report. Unreadable files are logged and skipped; an unusable root is
// the only fatal condition.
func (s *Scanner) Scan(ctx context.Context, root string) (*report.Report, error) {
	fsys := s.FS
	if fsys == nil {
		fsys = fsio.NewFS()
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.Logger
	}
	exampleCap := s.ExampleCap
	if exampleCap <= 0 {
		exampleCap = defaultExampleCap
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, &RootError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &RootError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	files, err := s.collectFiles(fsys, logger, root)
	if err != nil {
		return nil, err
	}

	rep := &report.Report{
		Root:         root,
		Hits:         make(map[string]*report.Hit, len(s.Catalog.Detectors)),
		AntiFindings: make(map[string]*report.AntiFinding, len(s.Catalog.AntiPatterns)),
	}
	// Every key is present from the start so zero-hit detectors still appear.
	for _, d := range s.Catalog.Detectors {
		rep.Hits[d.Key] = &report.Hit{Key: d.Key}
	}
	for _, rule := range s.Catalog.AntiPatterns {
		rep.AntiFindings[rule.Key] = &report.AntiFinding{Key: rule.Key}
	}

	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, readErr := fsys.ReadFile(f.abs)
		if readErr != nil {
			logger.Warn("skipping unreadable file", "path", f.rel, "error", readErr)
			rep.FilesSkipped++
			continue
		}

		s.scanFile(rep, f.rel, data, exampleCap)
		rep.FilesScanned++
	}

	return rep, nil
}

// collectFiles gathers eligible files and sorts them by root-relative slash
// path, so traversal order never depends on the platform. Symlinked files are
// kept (reading resolves them); symlinked directories are not descended into,
// which is what rules out symlink cycles.
func (s *Scanner) collectFiles(fsys fsio.FS, logger *slog.Logger, root string) ([]fileEntry, error) {
	var files []fileEntry

	walkErr := fsys.Walk(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			logger.Warn("skipping unreadable path", "path", p, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			rel = p
		}
		rel = filepath.ToSlash(rel)

		if !s.eligible(rel) {
			return nil
		}

		files = append(files, fileEntry{rel: rel, abs: p})
		return nil
	})
	if walkErr != nil {
		return nil, &RootError{Path: root, Err: walkErr}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].rel < files[j].rel })
	return files, nil
}

func (s *Scanner) eligible(rel string) bool {
	ext := strings.ToLower(path.Ext(rel))
	if _, ok := s.Extensions[ext]; !ok {
		return false
	}
	for _, pattern := range s.Excludes {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return false
		}
		if matched, err := doublestar.Match(pattern, path.Base(rel)); err == nil && matched {
			return false
		}
	}
	return true
}

// scanFile runs every rule over every line. Counts always advance; example
// lists stop growing at the cap.
func (s *Scanner) scanFile(rep *report.Report, rel string, data []byte, exampleCap int) {
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		lineNo := i + 1

		for _, d := range s.Catalog.Detectors {
			if !d.Matches(line) {
				continue
			}
			hit := rep.Hits[d.Key]
			hit.Count++
			if len(hit.Examples) < exampleCap {
				hit.Examples = append(hit.Examples, report.Match{
					File:    rel,
					Line:    lineNo,
					Snippet: snippet(line),
				})
			}
		}

		for _, rule := range s.Catalog.AntiPatterns {
			if !rule.Matches(line) {
				continue
			}
			finding := rep.AntiFindings[rule.Key]
			finding.Count++
			if len(finding.Matches) < exampleCap {
				finding.Matches = append(finding.Matches, report.Match{
					File:    rel,
					Line:    lineNo,
					Snippet: snippet(line),
				})
			}
		}
	}
}

func snippet(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) <= maxSnippetLen {
		return trimmed
	}
	cut := trimmed[:maxSnippetLen]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
