package project

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/manifest"
)

// Summary describes one bootstrapped project found by ListProjects.
type Summary struct {
	Name          string        `json:"name"`
	Path          string        `json:"path"`
	OriginalPath  string        `json:"original_path,omitempty"`
	WorkspacePath string        `json:"workspace_path,omitempty"`
	RulesFiles    []string      `json:"rules_files,omitempty"`
	Editors       []editor.Kind `json:"editors,omitempty"`
	Description   string        `json:"description,omitempty"`
	Module        string        `json:"module,omitempty"`
	Manifest      string        `json:"manifest,omitempty"`
}

// ListProjects returns the bootstrapped projects directly under basePath,
// sorted by name. A directory counts when it has a <name>-original or
// <name>-my-own child, or a rules file of a known editor.
func (b *Bootstrapper) ListProjects(_ context.Context, basePath string) ([]Summary, error) {
	base := absPath(basePath)
	info, err := os.Stat(base)
	if err != nil {
		return nil, newError(KindDirectoryNotFound, "base directory "+base+" not found", err)
	}
	if !info.IsDir() {
		return nil, newError(KindDirectoryNotFound, base+" is not a directory", nil)
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, newError(KindDirectoryNotFound, "failed to read "+base, err)
	}

	summaries := []Summary{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		summary, ok := b.inspect(filepath.Join(base, entry.Name()))
		if ok {
			summaries = append(summaries, summary)
		}
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

// inspect classifies dir and enriches it from the original clone's manifest.
func (b *Bootstrapper) inspect(dir string) (Summary, bool) {
	name := Name(filepath.Base(dir))
	summary := Summary{Name: string(name), Path: dir}

	if original := filepath.Join(dir, OriginalDirName(name)); isDir(original) {
		summary.OriginalPath = original
	}
	if workspace := filepath.Join(dir, WorkspaceDirName(name)); isDir(workspace) {
		summary.WorkspacePath = workspace
	}
	for _, cfg := range editor.All() {
		path := filepath.Join(dir, cfg.RulesRelPath())
		if isFile(path) {
			summary.RulesFiles = append(summary.RulesFiles, path)
			summary.Editors = append(summary.Editors, cfg.Kind)
		}
	}

	if summary.OriginalPath == "" && summary.WorkspacePath == "" && len(summary.RulesFiles) == 0 {
		return Summary{}, false
	}

	if summary.OriginalPath != "" {
		info, err := manifest.Read(summary.OriginalPath)
		if err != nil {
			b.logger.Debug("manifest enrichment skipped", "project", name, "err", err)
		} else {
			summary.Description = info.Description
			summary.Module = info.Module
			summary.Manifest = info.Kind
		}
	}
	return summary, true
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
