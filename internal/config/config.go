package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "stylescan.yml"

	// EnvConfig overrides the config file path when the --config flag is not set.
	EnvConfig = "STYLESCAN_CONFIG"

	envRoot        = "STYLESCAN_ROOT"
	envOut         = "STYLESCAN_OUT"
	envRules       = "STYLESCAN_RULES"
	envExtensions  = "STYLESCAN_EXTENSIONS"
	envExclude     = "STYLESCAN_EXCLUDE"
	envExcludeFile = "STYLESCAN_EXCLUDE_FILE"
	envExampleCap  = "STYLESCAN_EXAMPLE_CAP"
	envDryRun      = "STYLESCAN_DRY_RUN"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// RuntimeConfig contains the fully merged settings required by stylescan sub-commands.
type RuntimeConfig struct {
	Root       string
	Out        string
	RulesFile  string
	Extensions []string
	Excludes   []string
	ExampleCap int
	DryRun     bool
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	Root          string
	Out           string
	RulesFile     string
	Extensions    []string
	Excludes      []string
	ExcludeFile   string
	ExampleCap    int
	ExampleCapSet bool
	DryRun        *bool
}

// DefaultExtensions is the source/config file set scanned when nothing else is configured.
var DefaultExtensions = []string{
	".java", ".kt", ".xml", ".yml", ".yaml", ".properties", ".gradle", ".kts", ".toml",
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Root:       ".",
		Extensions: append([]string(nil), DefaultExtensions...),
		ExampleCap: 50,
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		if err := cfg.apply(fileOv); err != nil {
			return cfg, err
		}
	}

	if err := cfg.apply(overridesFromEnv()); err != nil {
		return cfg, err
	}

	if err := cfg.apply(override); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate ensures the config contains the minimum required data for the scan command.
func (c RuntimeConfig) Validate() error {
	if c.Root == "" {
		return errors.New("scan root cannot be empty; provide --root or set STYLESCAN_ROOT")
	}

	if len(c.Extensions) == 0 {
		return errors.New("at least one file extension must be configured")
	}

	if c.ExampleCap < 1 || c.ExampleCap > 1000 {
		return fmt.Errorf("example cap must be between 1 and 1000 (got %d)", c.ExampleCap)
	}

	if c.RulesFile != "" && !fileExists(c.RulesFile) {
		return fmt.Errorf("rules file %s does not exist", c.RulesFile)
	}

	for _, pattern := range c.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return nil
}

// ExtensionSet returns the configured extensions normalized to lowercase with a
// leading dot, as a lookup set.
func (c RuntimeConfig) ExtensionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Extensions))
	for _, ext := range c.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		set[normalized] = struct{}{}
	}
	return set
}

func (c *RuntimeConfig) apply(src Overrides) error {
	if src.Root != "" {
		c.Root = src.Root
	}

	if src.Out != "" {
		c.Out = src.Out
	}

	if src.RulesFile != "" {
		c.RulesFile = src.RulesFile
	}

	if len(src.Extensions) > 0 {
		c.Extensions = cleanList(src.Extensions)
	}

	if len(src.Excludes) > 0 {
		c.Excludes = cleanList(src.Excludes)
	}

	if src.ExcludeFile != "" {
		values, err := readPatternsFile(src.ExcludeFile)
		if err != nil {
			return err
		}
		c.Excludes = values
	}

	if src.ExampleCapSet {
		c.ExampleCap = src.ExampleCap
	}

	if src.DryRun != nil {
		c.DryRun = *src.DryRun
	}

	return nil
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Root        string     `yaml:"root"`
		Out         string     `yaml:"out"`
		Rules       string     `yaml:"rules"`
		Extensions  stringList `yaml:"extensions"`
		Exclude     stringList `yaml:"exclude"`
		ExcludeFile string     `yaml:"excludeFile"`
		ExampleCap  *int       `yaml:"exampleCap"`
		DryRun      *bool      `yaml:"dryRun"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	over := Overrides{
		Root:        raw.Root,
		Out:         raw.Out,
		RulesFile:   raw.Rules,
		Extensions:  raw.Extensions,
		Excludes:    raw.Exclude,
		ExcludeFile: raw.ExcludeFile,
	}

	if raw.ExampleCap != nil {
		over.ExampleCap = *raw.ExampleCap
		over.ExampleCapSet = true
	}

	if raw.DryRun != nil {
		over.DryRun = raw.DryRun
	}

	return over, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envRoot); value != "" {
		ov.Root = value
	}

	if value := os.Getenv(envOut); value != "" {
		ov.Out = value
	}

	if value := os.Getenv(envRules); value != "" {
		ov.RulesFile = value
	}

	if value := os.Getenv(envExtensions); value != "" {
		ov.Extensions = ParseExtensions(value)
	}

	if value := os.Getenv(envExclude); value != "" {
		ov.Excludes = ParsePatterns(value)
	}

	if value := os.Getenv(envExcludeFile); value != "" {
		ov.ExcludeFile = value
	}

	if value := os.Getenv(envExampleCap); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			ov.ExampleCap = parsed
			ov.ExampleCapSet = true
		}
	}

	if value := os.Getenv(envDryRun); value != "" {
		parsed := strings.EqualFold(value, "true") || value == "1"
		ov.DryRun = &parsed
	}

	return ov
}

// ParseExtensions splits comma, space, or newline separated extension strings.
func ParseExtensions(input string) []string {
	return splitOnDelimiters(input, []rune{',', '\n', '\r', ' '})
}

// ParsePatterns turns comma or newline separated input into individual exclude
// patterns. Spaces are legal inside glob patterns and are not treated as
// separators.
func ParsePatterns(input string) []string {
	return splitOnDelimiters(input, []rune{',', '\n', '\r'})
}

func splitOnDelimiters(input string, delims []rune) []string {
	if input == "" {
		return nil
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	separator := func(r rune) bool {
		for _, d := range delims {
			if r == d {
				return true
			}
		}
		return false
	}

	parts := strings.FieldsFunc(trimmed, separator)
	return cleanList(parts)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func readPatternsFile(path string) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var patterns []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return patterns, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// stringList enables YAML fields that can be specified as a scalar or sequence.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, strings.TrimSpace(node.Value))
		}
		*s = cleanList(out)
	case yaml.ScalarNode:
		*s = ParsePatterns(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for list field")
	}
	return nil
}
