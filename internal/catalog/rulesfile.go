package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseRulesFile reads project-specific detectors and anti-pattern rules from
// a YAML file. Entries are appended to the built-in tables and validated by
// the same Compile pass, so duplicates against built-in keys still fail fast.
func parseRulesFile(path string) ([]DetectorSpec, []AntiPatternSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	type rawRules struct {
		Detectors    []DetectorSpec    `yaml:"detectors"`
		AntiPatterns []AntiPatternSpec `yaml:"antipatterns"`
	}

	var raw rawRules
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	for _, d := range raw.Detectors {
		if d.Group == "" {
			return nil, nil, &RuleError{Key: d.Key, Pattern: d.Pattern, Err: fmt.Errorf("missing group")}
		}
	}
	for _, a := range raw.AntiPatterns {
		if a.Note == "" {
			return nil, nil, &RuleError{Key: a.Key, Pattern: a.Pattern, Err: fmt.Errorf("missing note")}
		}
	}

	return raw.Detectors, raw.AntiPatterns, nil
}
