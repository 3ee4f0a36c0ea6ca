package main

import (
	"strings"
	"testing"

	"github.com/gorewood/build-my-own/internal/output"
)

func TestEditorsCommand_JSON(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PATH", "")

	stdout, _, err := execute(t, "editors", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	result := decodeJSON(t, stdout)

	if result["default"] != "cursor" {
		t.Errorf("default = %v, want cursor when nothing is installed", result["default"])
	}
	if detected := result["detected"].([]any); len(detected) != 0 {
		t.Errorf("detected = %v, want none with an empty PATH", detected)
	}

	if result["git_version"] != "" {
		t.Errorf("git_version = %v, want empty with an empty PATH", result["git_version"])
	}

	editors := result["editors"].([]any)
	wantIDs := []string{"cursor", "windsurf", "vscode"}
	if len(editors) != len(wantIDs) {
		t.Fatalf("len(editors) = %d, want %d", len(editors), len(wantIDs))
	}
	for i, raw := range editors {
		row := raw.(map[string]any)
		if row["id"] != wantIDs[i] {
			t.Errorf("editors[%d].id = %v, want %s", i, row["id"], wantIDs[i])
		}
		if row["rules_source"] != "built-in" {
			t.Errorf("editors[%d].rules_source = %v, want built-in", i, row["rules_source"])
		}
		if desc, _ := row["description"].(string); desc == "" || strings.Contains(desc, "{{") {
			t.Errorf("editors[%d].description = %q, want a rendered description", i, desc)
		}
	}
}

func TestEditorsCommand_Table(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PATH", "")

	stdout, stderr, err := execute(t, "editors")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"ID", "cursor", ".windsurfrules", "copilot-instructions.md", "Default"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q: %q", want, stdout)
		}
	}
	if !strings.Contains(stderr, "git not found") {
		t.Errorf("stderr should warn about missing git: %q", stderr)
	}
}

func TestEditorsCommand_ConfiguredDefault(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PATH", "")
	t.Setenv("BUILD_MY_OWN_EDITOR", "windsurf")

	stdout, _, err := execute(t, "editors", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := decodeJSON(t, stdout)["default"]; got != "windsurf" {
		t.Errorf("default = %v, want the configured windsurf", got)
	}
}

func TestEditorsCommand_UnknownConfiguredEditor(t *testing.T) {
	isolateConfig(t)
	t.Setenv("PATH", "")
	t.Setenv("BUILD_MY_OWN_EDITOR", "emacs")

	_, _, err := execute(t, "editors", "--json")
	if got := output.GetExitCode(err); got != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err %v)", got, output.ExitUserError, err)
	}
}
