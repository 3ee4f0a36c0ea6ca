package project

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/git"
	"github.com/gorewood/build-my-own/internal/rules"
)

// Cloner clones a repository into dir.
type Cloner interface {
	Clone(ctx context.Context, url, dir string) error
}

// ClonerFunc adapts a function to Cloner.
type ClonerFunc func(ctx context.Context, url, dir string) error

// Clone calls f.
func (f ClonerFunc) Clone(ctx context.Context, url, dir string) error {
	return f(ctx, url, dir)
}

// GitCloner clones with the git executable.
var GitCloner = ClonerFunc(git.Clone)

// Bootstrapper runs bootstrap, rules installation and listing against a set
// of collaborators.
type Bootstrapper struct {
	cloner   Cloner
	detector editor.Availability
	launcher editor.Launcher
	library  *rules.Library
	logger   *slog.Logger
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithCloner replaces the git cloner.
func WithCloner(c Cloner) Option {
	return func(b *Bootstrapper) { b.cloner = c }
}

// WithDetector replaces the editor availability detector.
func WithDetector(d editor.Availability) Option {
	return func(b *Bootstrapper) { b.detector = d }
}

// WithLauncher replaces the editor launcher.
func WithLauncher(l editor.Launcher) Option {
	return func(b *Bootstrapper) { b.launcher = l }
}

// WithLibrary replaces the rules asset library.
func WithLibrary(l *rules.Library) Option {
	return func(b *Bootstrapper) { b.library = l }
}

// WithLogger sets the logger. A nil logger discards records.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bootstrapper) { b.logger = l }
}

// New creates a Bootstrapper wired to git, the host's editors and the
// built-in rules.
func New(opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		cloner:   GitCloner,
		detector: editor.NewDetector(),
		launcher: editor.ExecLauncher{},
		library:  rules.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b
}

// Request describes one bootstrap.
type Request struct {
	// URL is the repository to clone. Surrounding whitespace is ignored.
	URL string
	// BasePath is the directory the project is created in. Empty means ".".
	BasePath string
	// Editor selects the editor. Empty means the highest-priority detected one.
	Editor editor.Kind
	// AllEditors installs rules for every known editor, not just the selected one.
	AllEditors bool
	// Launch opens the selected editor on the project when done.
	Launch bool
}

// Result is a snapshot of what a successful bootstrap created.
type Result struct {
	Success         bool          `json:"success"`
	ProjectName     Name          `json:"project_name"`
	ProjectPath     string        `json:"project_path"`
	OriginalPath    string        `json:"original_path"`
	WorkspacePath   string        `json:"workspace_path"`
	OriginalCommit  string        `json:"original_commit,omitempty"`
	RulesFiles      []string      `json:"rules_files"`
	SelectedEditor  editor.Kind   `json:"selected_editor"`
	DetectedEditors []editor.Kind `json:"detected_editors"`
	Warnings        []string      `json:"warnings,omitempty"`
}

// Bootstrap clones req.URL into a fresh project directory, creates the
// empty workspace and installs the teaching rules. It fails without
// touching anything when the project directory already exists.
func (b *Bootstrapper) Bootstrap(ctx context.Context, req Request) (*Result, error) {
	url := strings.TrimSpace(req.URL)
	log := b.logger.With("url", url)

	name, err := Resolve(url)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved project name", "name", name)

	detected := b.detector.DetectAvailable(ctx)
	cfg, err := selectEditor(req.Editor, detected)
	if err != nil {
		return nil, err
	}
	log.Debug("selected editor", "editor", cfg.Kind, "detected", detected)

	layout := BuildLayout(name, req.BasePath, cfg)

	if err := createProjectRoot(layout.ProjectRoot); err != nil {
		return nil, err
	}
	log.Debug("created project directory", "path", layout.ProjectRoot)

	log.Info("cloning repository", "dest", layout.OriginalDir)
	if err := b.cloner.Clone(ctx, url, layout.OriginalDir); err != nil {
		return nil, cloneError(url, err)
	}
	commit, err := git.ShortHEAD(ctx, layout.OriginalDir)
	if err != nil {
		log.Debug("could not read cloned commit", "err", err)
	}

	if err := os.MkdirAll(layout.WorkspaceDir, 0o755); err != nil {
		return nil, newError(KindCreateFailed, "failed to create workspace directory "+layout.WorkspaceDir, err)
	}
	log.Debug("created workspace directory", "path", layout.WorkspaceDir)

	targets := []editor.Config{cfg}
	if req.AllEditors {
		targets = editor.All()
	}
	rulesFiles := make([]string, 0, len(targets))
	for _, target := range targets {
		path, err := b.writeRules(BuildLayout(name, req.BasePath, target), target, nil)
		if err != nil {
			return nil, err
		}
		log.Debug("installed rules", "editor", target.Kind, "path", path)
		rulesFiles = append(rulesFiles, path)
	}

	result := &Result{
		Success:         true,
		ProjectName:     name,
		ProjectPath:     layout.ProjectRoot,
		OriginalPath:    layout.OriginalDir,
		WorkspacePath:   layout.WorkspaceDir,
		OriginalCommit:  commit,
		RulesFiles:      rulesFiles,
		SelectedEditor:  cfg.Kind,
		DetectedEditors: nonNil(detected),
	}

	if req.Launch {
		if err := b.launcher.Launch(ctx, cfg, layout.ProjectRoot); err != nil {
			warning := newError(KindEditorLaunchFailed,
				"could not launch "+cfg.DisplayName+"; open the project manually at "+layout.ProjectRoot, err)
			log.Warn("editor launch failed", "editor", cfg.Kind, "err", err)
			result.Warnings = append(result.Warnings, warning.Error())
		}
	}

	return result, nil
}

// selectEditor validates an explicit choice or falls back to the preferred
// detected editor.
func selectEditor(kind editor.Kind, detected []editor.Kind) (editor.Config, error) {
	if kind == "" {
		kind = editor.Preferred(detected)
	}
	cfg, err := editor.ConfigFor(kind)
	if err != nil {
		return editor.Config{}, newError(KindUnsupportedEditor, "unsupported editor "+quote(string(kind)), err)
	}
	return cfg, nil
}

// createProjectRoot creates missing ancestors, then the leaf itself, which
// must not already exist.
func createProjectRoot(root string) error {
	if err := os.MkdirAll(filepath.Dir(root), 0o755); err != nil {
		return newError(KindCreateFailed, "failed to create base directory "+filepath.Dir(root), err)
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return newError(KindDirectoryExists, "directory "+root+" already exists", err)
		}
		return newError(KindCreateFailed, "failed to create project directory "+root, err)
	}
	return nil
}

func cloneError(url string, err error) error {
	if git.IsSpawnError(err) {
		return newError(KindCloneSpawnFailed, "could not start git to clone "+url, err)
	}
	return newError(KindCloneFailed, "failed to clone "+url, err)
}

// writeRules writes content, or the rendered default asset when content is
// nil, to the layout's rules file, creating the rules directory first.
func (b *Bootstrapper) writeRules(layout Layout, cfg editor.Config, content []byte) (string, error) {
	if content == nil {
		rendered, err := b.renderDefault(layout, cfg)
		if err != nil {
			return "", err
		}
		content = rendered
	}

	if cfg.HasRulesDir() {
		if err := os.MkdirAll(layout.RulesDir, 0o755); err != nil {
			return "", newError(KindRulesInstallFailed, "failed to create rules directory "+layout.RulesDir, err)
		}
	}
	// #nosec G306 -- rules are meant to be read by editors and committed
	if err := os.WriteFile(layout.RulesFilePath, content, 0o644); err != nil {
		return "", newError(KindRulesInstallFailed, "failed to write rules file "+layout.RulesFilePath, err)
	}
	return layout.RulesFilePath, nil
}

func (b *Bootstrapper) renderDefault(layout Layout, cfg editor.Config) ([]byte, error) {
	asset, err := b.library.Load(cfg.Kind)
	if err != nil {
		return nil, newError(KindRulesInstallFailed, "no rules asset for "+cfg.DisplayName, err)
	}
	name := filepath.Base(layout.ProjectRoot)
	content, err := asset.Render(rules.Data{
		ProjectName:      name,
		ProjectPath:      layout.ProjectRoot,
		OriginalDir:      layout.OriginalDir,
		OriginalDirName:  OriginalDirName(Name(name)),
		WorkspaceDir:     layout.WorkspaceDir,
		WorkspaceDirName: WorkspaceDirName(Name(name)),
		Editor:           cfg.Kind,
	})
	if err != nil {
		return nil, newError(KindRulesInstallFailed, "failed to render rules for "+cfg.DisplayName, err)
	}
	return content, nil
}

func nonNil(kinds []editor.Kind) []editor.Kind {
	if kinds == nil {
		return []editor.Kind{}
	}
	return kinds
}
