package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/stylescan/internal/config"
)

func runRulesCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	loader := &config.Loader{ConfigPath: ""}
	cmd := newRulesCmd(loader)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestRulesCommandListsBuiltins(t *testing.T) {
	output, err := runRulesCmd(t)
	if err != nil {
		t.Fatalf("rules command failed: %v", err)
	}

	for _, want := range []string{
		"Frameworks & Dependency Injection (di)",
		"di_field",
		"Observability (observability)",
		"system_out",
		"Anti-pattern rules",
		"field_injection",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("listing missing %q:\n%s", want, output)
		}
	}
}

func TestRulesCommandGroupFilter(t *testing.T) {
	output, err := runRulesCmd(t, "--group", "di")
	if err != nil {
		t.Fatalf("rules command failed: %v", err)
	}

	if !strings.Contains(output, "di_field") {
		t.Errorf("filtered listing should include di detectors:\n%s", output)
	}
	if strings.Contains(output, "Testing (testing)") {
		t.Errorf("filtered listing should not include other groups:\n%s", output)
	}
	if strings.Contains(output, "Anti-pattern rules") {
		t.Errorf("group filter should suppress the anti-pattern section:\n%s", output)
	}
}

func TestRulesCommandUnknownGroupFails(t *testing.T) {
	_, err := runRulesCmd(t, "--group", "nosuch")
	if err == nil {
		t.Fatal("expected error for unknown group")
	}
	if !strings.Contains(err.Error(), "nosuch") {
		t.Errorf("error should name the group, got: %v", err)
	}
}

func TestRulesCommandJSON(t *testing.T) {
	output, err := runRulesCmd(t, "--json")
	if err != nil {
		t.Fatalf("rules command failed: %v", err)
	}

	var listing ruleListing
	if err := json.Unmarshal([]byte(output), &listing); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}

	if len(listing.Detectors) == 0 {
		t.Fatal("expected built-in detectors in JSON listing")
	}
	if len(listing.AntiPatterns) == 0 {
		t.Fatal("expected built-in anti-pattern rules in JSON listing")
	}

	for _, d := range listing.Detectors {
		if d.Group == "" || d.Key == "" || d.Pattern == "" {
			t.Fatalf("incomplete detector entry: %+v", d)
		}
	}
	for _, r := range listing.AntiPatterns {
		if r.Key == "" || r.Pattern == "" || r.Note == "" {
			t.Fatalf("incomplete anti-pattern entry: %+v", r)
		}
	}
}

func TestRulesCommandJSONGroupFilter(t *testing.T) {
	output, err := runRulesCmd(t, "--json", "--group", "testing")
	if err != nil {
		t.Fatalf("rules command failed: %v", err)
	}

	var listing ruleListing
	if err := json.Unmarshal([]byte(output), &listing); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}

	if len(listing.Detectors) == 0 {
		t.Fatal("expected testing detectors in JSON listing")
	}
	for _, d := range listing.Detectors {
		if d.Group != "testing" {
			t.Errorf("unexpected group %q in filtered listing", d.Group)
		}
	}
	if len(listing.AntiPatterns) != 0 {
		t.Errorf("group filter should omit anti-pattern rules, got %d", len(listing.AntiPatterns))
	}
}

func TestRulesCommandWithRulesFile(t *testing.T) {
	rulesPath := filepath.Join(t.TempDir(), "rules.yml")
	rules := `detectors:
  - group: language
    key: todo_marker
    pattern: "TODO"
antipatterns:
  - key: wildcard_import
    pattern: "import .*\\.\\*;"
    note: "Expand wildcard imports."
`
	if err := os.WriteFile(rulesPath, []byte(rules), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	output, err := runRulesCmd(t, "--rules", rulesPath)
	if err != nil {
		t.Fatalf("rules command failed: %v", err)
	}

	if !strings.Contains(output, "todo_marker") {
		t.Errorf("listing should include the user-defined detector:\n%s", output)
	}
	if !strings.Contains(output, "wildcard_import") {
		t.Errorf("listing should include the user-defined anti-pattern:\n%s", output)
	}
}
