// Package catalog defines the style detectors and anti-pattern rules a scan
// evaluates. The built-in tables are embedded; an optional YAML rules file can
// append project-specific entries.
package catalog

import (
	"fmt"
	"regexp"
)

// DetectorSpec is the uncompiled form of a Detector.
type DetectorSpec struct {
	Group   string `yaml:"group"`
	Key     string `yaml:"key"`
	Pattern string `yaml:"pattern"`
}

// AntiPatternSpec is the uncompiled form of an AntiPatternRule.
type AntiPatternSpec struct {
	Key     string `yaml:"key"`
	Pattern string `yaml:"pattern"`
	Note    string `yaml:"note"`
}

// Detector counts lines matching one coding pattern. Group is presentation
// only; matching behavior depends solely on the pattern.
type Detector struct {
	Group   string
	Key     string
	Pattern string

	re *regexp.Regexp
}

// Matches reports whether a single source line triggers the detector.
func (d Detector) Matches(line string) bool {
	return d.re.MatchString(line)
}

// AntiPatternRule flags a discouraged construct and carries a remediation note.
// Rules are evaluated independently of the detector table.
type AntiPatternRule struct {
	Key     string
	Pattern string
	Note    string

	re *regexp.Regexp
}

// Matches reports whether a single source line triggers the rule.
func (r AntiPatternRule) Matches(line string) bool {
	return r.re.MatchString(line)
}

// Catalog is the full, compiled rule set for one scan run.
type Catalog struct {
	Detectors    []Detector
	AntiPatterns []AntiPatternRule
}

// RuleError reports a catalog entry that failed validation. It aborts the run
// before any scanning happens.
type RuleError struct {
	Key     string
	Pattern string
	Err     error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("catalog rule %q: pattern %q: %v", e.Key, e.Pattern, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Load compiles the built-in tables plus, when rulesFile is non-empty, the
// extra entries from that YAML file. Any malformed or duplicate rule aborts
// with a RuleError naming the offender.
func Load(rulesFile string) (Catalog, error) {
	detectors := append([]DetectorSpec(nil), builtinDetectors...)
	antiPatterns := append([]AntiPatternSpec(nil), builtinAntiPatterns...)

	if rulesFile != "" {
		extraDetectors, extraAnti, err := parseRulesFile(rulesFile)
		if err != nil {
			return Catalog{}, err
		}
		detectors = append(detectors, extraDetectors...)
		antiPatterns = append(antiPatterns, extraAnti...)
	}

	return Compile(detectors, antiPatterns)
}

// Compile validates and compiles rule tables into a usable catalog. Detector
// keys must be unique; anti-pattern keys must be unique among themselves.
func Compile(specs []DetectorSpec, antiSpecs []AntiPatternSpec) (Catalog, error) {
	cat := Catalog{
		Detectors:    make([]Detector, 0, len(specs)),
		AntiPatterns: make([]AntiPatternRule, 0, len(antiSpecs)),
	}

	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if err := validateKey(spec.Key, seen); err != nil {
			return Catalog{}, &RuleError{Key: spec.Key, Pattern: spec.Pattern, Err: err}
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return Catalog{}, &RuleError{Key: spec.Key, Pattern: spec.Pattern, Err: err}
		}
		cat.Detectors = append(cat.Detectors, Detector{
			Group:   spec.Group,
			Key:     spec.Key,
			Pattern: spec.Pattern,
			re:      re,
		})
	}

	seenAnti := make(map[string]struct{}, len(antiSpecs))
	for _, spec := range antiSpecs {
		if err := validateKey(spec.Key, seenAnti); err != nil {
			return Catalog{}, &RuleError{Key: spec.Key, Pattern: spec.Pattern, Err: err}
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return Catalog{}, &RuleError{Key: spec.Key, Pattern: spec.Pattern, Err: err}
		}
		cat.AntiPatterns = append(cat.AntiPatterns, AntiPatternRule{
			Key:     spec.Key,
			Pattern: spec.Pattern,
			Note:    spec.Note,
			re:      re,
		})
	}

	return cat, nil
}

func validateKey(key string, seen map[string]struct{}) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("duplicate key")
	}
	seen[key] = struct{}{}
	return nil
}

// Groups returns the distinct detector groups in catalog order.
func (c Catalog) Groups() []string {
	var groups []string
	seen := make(map[string]struct{})
	for _, d := range c.Detectors {
		if _, ok := seen[d.Group]; ok {
			continue
		}
		seen[d.Group] = struct{}{}
		groups = append(groups, d.Group)
	}
	return groups
}

// GroupTitle returns the human-readable heading for a group identifier.
// Unknown groups (from user rules files) are shown as-is.
func GroupTitle(group string) string {
	if title, ok := groupTitles[group]; ok {
		return title
	}
	return group
}
