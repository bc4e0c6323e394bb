package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoaderLoadDefaults(t *testing.T) {
	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Root != "." {
		t.Fatalf("expected default root '.', got %s", cfg.Root)
	}

	if cfg.ExampleCap != 50 {
		t.Fatalf("expected default example cap 50, got %d", cfg.ExampleCap)
	}

	if !reflect.DeepEqual(cfg.Extensions, DefaultExtensions) {
		t.Fatalf("expected default extensions, got %#v", cfg.Extensions)
	}

	if cfg.DryRun {
		t.Fatal("dry-run should default to false")
	}
}

func TestLoaderLoadWithFileAndEnv(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "stylescan.yml")
	configBody := []byte("root: /repo\nout: reports/scan.md\nextensions:\n  - .java\n  - .kt\nexampleCap: 10\n")
	if err := os.WriteFile(configPath, configBody, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(envExampleCap, "25")
	t.Setenv(envExclude, "generated/**,build/**")

	loader := Loader{ConfigPath: configPath}
	cfg, err := loader.Load(Overrides{})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}

	if cfg.Root != "/repo" {
		t.Fatalf("expected root /repo, got %s", cfg.Root)
	}

	if cfg.Out != "reports/scan.md" {
		t.Fatalf("expected out reports/scan.md, got %s", cfg.Out)
	}

	if len(cfg.Extensions) != 2 {
		t.Fatalf("expected 2 extensions, got %#v", cfg.Extensions)
	}

	if cfg.ExampleCap != 25 {
		t.Fatalf("env override should set example cap to 25, got %d", cfg.ExampleCap)
	}

	if len(cfg.Excludes) != 2 || cfg.Excludes[0] != "generated/**" {
		t.Fatalf("unexpected excludes: %#v", cfg.Excludes)
	}
}

func TestLoaderFlagOverridesBeatEnv(t *testing.T) {
	t.Setenv(envRoot, "/from-env")
	t.Setenv(envExampleCap, "25")

	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
	cfg, err := loader.Load(Overrides{Root: "/from-flag", ExampleCap: 5, ExampleCapSet: true})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Root != "/from-flag" {
		t.Fatalf("flag override should win over env, got %s", cfg.Root)
	}

	if cfg.ExampleCap != 5 {
		t.Fatalf("flag override should win over env, got %d", cfg.ExampleCap)
	}
}

func TestOverridesTriState(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "stylescan.yml")
	if err := os.WriteFile(configPath, []byte("exampleCap: 10\ndryRun: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}

	// Unset overrides must not clobber file values.
	cfg, err := loader.Load(Overrides{ExampleCap: 0, ExampleCapSet: false, DryRun: nil})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ExampleCap != 10 {
		t.Fatalf("expected file example cap 10, got %d", cfg.ExampleCap)
	}
	if !cfg.DryRun {
		t.Fatal("expected file dry-run true")
	}

	// Set overrides replace them, including an explicit false.
	dryRun := false
	cfg, err = loader.Load(Overrides{ExampleCap: 5, ExampleCapSet: true, DryRun: &dryRun})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ExampleCap != 5 {
		t.Fatalf("expected override example cap 5, got %d", cfg.ExampleCap)
	}
	if cfg.DryRun {
		t.Fatal("explicit false override should disable dry-run")
	}
}

func TestLoadExcludeFile(t *testing.T) {
	dir := t.TempDir()

	excludePath := filepath.Join(dir, ".scanignore")
	body := "# build output\ngenerated/**\n\n*.properties\n"
	if err := os.WriteFile(excludePath, []byte(body), 0o600); err != nil {
		t.Fatalf("write exclude file: %v", err)
	}

	loader := Loader{ConfigPath: filepath.Join(dir, "missing.yml")}
	cfg, err := loader.Load(Overrides{Excludes: []string{"vendor/**"}, ExcludeFile: excludePath})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	// The pattern file replaces inline excludes; comments and blanks are dropped.
	want := []string{"generated/**", "*.properties"}
	if !reflect.DeepEqual(cfg.Excludes, want) {
		t.Fatalf("expected %v, got %#v", want, cfg.Excludes)
	}
}

func TestLoadExcludeFileMissing(t *testing.T) {
	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
	_, err := loader.Load(Overrides{ExcludeFile: filepath.Join(t.TempDir(), "absent.txt")})
	if err == nil {
		t.Fatal("expected error for missing exclude file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "stylescan.yml")
	if err := os.WriteFile(configPath, []byte("root: [unclosed\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	loader := Loader{ConfigPath: configPath}
	if _, err := loader.Load(Overrides{}); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(rulesPath, []byte("detectors: []\n"), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*RuntimeConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *RuntimeConfig) {},
			wantErr: false,
		},
		{
			name:    "empty root",
			mutate:  func(c *RuntimeConfig) { c.Root = "" },
			wantErr: true,
		},
		{
			name:    "no extensions",
			mutate:  func(c *RuntimeConfig) { c.Extensions = nil },
			wantErr: true,
		},
		{
			name:    "example cap too small",
			mutate:  func(c *RuntimeConfig) { c.ExampleCap = 0 },
			wantErr: true,
		},
		{
			name:    "example cap too large",
			mutate:  func(c *RuntimeConfig) { c.ExampleCap = 1001 },
			wantErr: true,
		},
		{
			name:    "example cap upper bound is allowed",
			mutate:  func(c *RuntimeConfig) { c.ExampleCap = 1000 },
			wantErr: false,
		},
		{
			name:    "existing rules file",
			mutate:  func(c *RuntimeConfig) { c.RulesFile = rulesPath },
			wantErr: false,
		},
		{
			name:    "missing rules file",
			mutate:  func(c *RuntimeConfig) { c.RulesFile = filepath.Join(t.TempDir(), "absent.yml") },
			wantErr: true,
		},
		{
			name:    "invalid exclude pattern",
			mutate:  func(c *RuntimeConfig) { c.Excludes = []string{"[unclosed"} },
			wantErr: true,
		},
		{
			name:    "valid exclude patterns",
			mutate:  func(c *RuntimeConfig) { c.Excludes = []string{"generated/**", "*.properties"} },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRuntimeConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestExtensionSet(t *testing.T) {
	cfg := RuntimeConfig{Extensions: []string{".java", "KT", " .Xml ", ""}}

	set := cfg.ExtensionSet()

	want := map[string]struct{}{".java": {}, ".kt": {}, ".xml": {}}
	if !reflect.DeepEqual(set, want) {
		t.Fatalf("expected %v, got %v", want, set)
	}
}

func TestParseExtensions(t *testing.T) {
	input := ".java,.kt .xml\n.yaml"
	extensions := ParseExtensions(input)
	if len(extensions) != 4 {
		t.Fatalf("expected 4 extensions, got %#v", extensions)
	}
}

func TestParsePatternsKeepsSpaces(t *testing.T) {
	input := "build output/**,generated/**\nlegacy/**"
	patterns := ParsePatterns(input)

	want := []string{"build output/**", "generated/**", "legacy/**"}
	if !reflect.DeepEqual(patterns, want) {
		t.Fatalf("expected %v, got %#v", want, patterns)
	}
}

func TestStringListScalarOrSequence(t *testing.T) {
	dir := t.TempDir()

	t.Run("sequence", func(t *testing.T) {
		configPath := filepath.Join(dir, "seq.yml")
		if err := os.WriteFile(configPath, []byte("exclude:\n  - generated/**\n  - build/**\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		loader := Loader{ConfigPath: configPath}
		cfg, err := loader.Load(Overrides{})
		if err != nil {
			t.Fatalf("load config: %v", err)
		}

		if len(cfg.Excludes) != 2 {
			t.Fatalf("expected 2 excludes, got %#v", cfg.Excludes)
		}
	})

	t.Run("scalar", func(t *testing.T) {
		configPath := filepath.Join(dir, "scalar.yml")
		if err := os.WriteFile(configPath, []byte("exclude: \"generated/**,build/**\"\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}

		loader := Loader{ConfigPath: configPath}
		cfg, err := loader.Load(Overrides{})
		if err != nil {
			t.Fatalf("load config: %v", err)
		}

		if len(cfg.Excludes) != 2 {
			t.Fatalf("expected 2 excludes, got %#v", cfg.Excludes)
		}
	})
}

func TestEnvDryRunParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(envDryRun, tt.value)

			loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
			cfg, err := loader.Load(Overrides{})
			if err != nil {
				t.Fatalf("load config: %v", err)
			}

			if cfg.DryRun != tt.want {
				t.Fatalf("%s: expected dry-run %v, got %v", tt.value, tt.want, cfg.DryRun)
			}
		})
	}
}
