package project

import (
	"context"
	"os"

	"github.com/gorewood/build-my-own/internal/editor"
)

// RulesRequest describes a rules installation into an existing project.
type RulesRequest struct {
	ProjectPath string
	// Editor selects the editor. Empty means the highest-priority detected one.
	Editor editor.Kind
	// Content, when non-nil, is written verbatim instead of the default asset.
	Content *string
}

// RulesResult reports where the rules file was written.
type RulesResult struct {
	Success     bool        `json:"success"`
	ProjectPath string      `json:"project_path"`
	Editor      editor.Kind `json:"editor"`
	RulesFile   string      `json:"rules_file"`
	Custom      bool        `json:"custom"`
}

// InstallRules writes the rules file for req.Editor into an existing
// project directory, replacing any previous content.
func (b *Bootstrapper) InstallRules(ctx context.Context, req RulesRequest) (*RulesResult, error) {
	root := absPath(req.ProjectPath)
	info, err := os.Stat(root)
	if err != nil {
		return nil, newError(KindDirectoryNotFound, "project directory "+root+" not found", err)
	}
	if !info.IsDir() {
		return nil, newError(KindDirectoryNotFound, root+" is not a directory", nil)
	}

	var detected []editor.Kind
	if req.Editor == "" {
		detected = b.detector.DetectAvailable(ctx)
	}
	cfg, err := selectEditor(req.Editor, detected)
	if err != nil {
		return nil, err
	}

	var content []byte
	if req.Content != nil {
		content = []byte(*req.Content)
	}

	path, err := b.writeRules(RulesLayout(root, cfg), cfg, content)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("installed rules", "editor", cfg.Kind, "path", path, "custom", req.Content != nil)

	return &RulesResult{
		Success:     true,
		ProjectPath: root,
		Editor:      cfg.Kind,
		RulesFile:   path,
		Custom:      req.Content != nil,
	}, nil
}
