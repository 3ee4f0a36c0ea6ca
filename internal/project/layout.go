package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/build-my-own/internal/editor"
)

const (
	originalSuffix  = "-original"
	workspaceSuffix = "-my-own"
)

// Layout is every path a bootstrap touches. All paths are absolute.
type Layout struct {
	ProjectRoot   string
	OriginalDir   string
	WorkspaceDir  string
	RulesDir      string
	RulesFilePath string
}

// OriginalDirName is the name of the clone directory for name.
func OriginalDirName(name Name) string {
	return string(name) + originalSuffix
}

// WorkspaceDirName is the name of the workspace directory for name.
func WorkspaceDirName(name Name) string {
	return string(name) + workspaceSuffix
}

// BuildLayout computes the layout for name under basePath using the rules
// location of cfg. It performs no I/O.
func BuildLayout(name Name, basePath string, cfg editor.Config) Layout {
	root := filepath.Join(absPath(basePath), string(name))
	rulesDir := root
	if cfg.HasRulesDir() {
		rulesDir = filepath.Join(append([]string{root}, cfg.RulesDir...)...)
	}
	return Layout{
		ProjectRoot:   root,
		OriginalDir:   filepath.Join(root, OriginalDirName(name)),
		WorkspaceDir:  filepath.Join(root, WorkspaceDirName(name)),
		RulesDir:      rulesDir,
		RulesFilePath: filepath.Join(rulesDir, cfg.RulesFile),
	}
}

// RulesLayout computes the layout of an existing project directory.
func RulesLayout(projectRoot string, cfg editor.Config) Layout {
	root := absPath(projectRoot)
	return BuildLayout(Name(filepath.Base(root)), filepath.Dir(root), cfg)
}

// ResolveBasePath expands a leading "~" and makes path absolute. Surfaces
// call it once and pass the result down.
func ResolveBasePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

func absPath(path string) string {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
