package editor

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConfigFor(t *testing.T) {
	tests := []struct {
		kind        Kind
		wantRelPath string
		wantSubdir  bool
		wantLaunch  string
	}{
		{Cursor, filepath.Join(".cursor", "rules", "teach.mdc"), true, "cursor"},
		{Windsurf, ".windsurfrules", false, "windsurf"},
		{VSCode, filepath.Join(".github", "copilot-instructions.md"), true, "code"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			cfg, err := ConfigFor(tt.kind)
			if err != nil {
				t.Fatalf("ConfigFor(%q) error: %v", tt.kind, err)
			}
			if got := cfg.RulesRelPath(); got != tt.wantRelPath {
				t.Errorf("RulesRelPath() = %q, want %q", got, tt.wantRelPath)
			}
			if cfg.HasRulesDir() != tt.wantSubdir {
				t.Errorf("HasRulesDir() = %v, want %v", cfg.HasRulesDir(), tt.wantSubdir)
			}
			if cfg.LaunchCommand != tt.wantLaunch {
				t.Errorf("LaunchCommand = %q, want %q", cfg.LaunchCommand, tt.wantLaunch)
			}
		})
	}
}

func TestConfigFor_Unsupported(t *testing.T) {
	_, err := ConfigFor("notepad")
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("ConfigFor(notepad) error = %v, want ErrUnsupported", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"cursor", Cursor, false},
		{"  Windsurf ", Windsurf, false},
		{"VSCODE", VSCode, false},
		{"", "", true},
		{"emacs", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAll_PriorityOrder(t *testing.T) {
	all := All()
	if len(all) != len(Kinds()) {
		t.Fatalf("All() returned %d configs, Kinds() %d", len(all), len(Kinds()))
	}
	if all[0].Kind != Cursor {
		t.Errorf("first editor = %q, want %q", all[0].Kind, Cursor)
	}
	for i, cfg := range all {
		if string(cfg.Kind) != Names()[i] {
			t.Errorf("All()[%d] = %q, Names()[%d] = %q", i, cfg.Kind, i, Names()[i])
		}
	}
}

func TestRulesRelPath_DoesNotAliasRegistry(t *testing.T) {
	cfg, _ := ConfigFor(Cursor)
	_ = cfg.RulesRelPath()
	again, _ := ConfigFor(Cursor)
	if len(again.RulesDir) != 2 || again.RulesDir[1] != "rules" {
		t.Errorf("registry RulesDir mutated: %v", again.RulesDir)
	}
}
