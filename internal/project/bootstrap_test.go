package project

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/build-my-own/internal/editor"
)

func TestBootstrap_CreatesLayout(t *testing.T) {
	for _, kind := range editor.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			base := t.TempDir()
			b, launcher := newTestBootstrapper(t)

			result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: base, Editor: kind})
			require.NoError(t, err)

			root := filepath.Join(base, "widget")
			assert.True(t, result.Success)
			assert.Equal(t, Name("widget"), result.ProjectName)
			assert.Equal(t, root, result.ProjectPath)
			assert.Equal(t, filepath.Join(root, "widget-original"), result.OriginalPath)
			assert.Equal(t, filepath.Join(root, "widget-my-own"), result.WorkspacePath)
			assert.Equal(t, kind, result.SelectedEditor)
			assert.Empty(t, result.Warnings)
			assert.Empty(t, launcher.dirs, "launch not requested")

			cfg, _ := editor.ConfigFor(kind)
			rulesFile := filepath.Join(root, cfg.RulesRelPath())
			assert.Equal(t, []string{rulesFile}, result.RulesFiles)

			assert.Len(t, entryNames(t, root), 3)
			assert.Equal(t, "# widget\n", readFile(t, filepath.Join(result.OriginalPath, "README.md")))
			assert.Empty(t, entryNames(t, result.WorkspacePath))

			content := readFile(t, rulesFile)
			assert.Contains(t, content, "Build your own Widget")
			assert.Contains(t, content, "widget-original")
			assert.Contains(t, content, "widget-my-own")
			assert.NotContains(t, content, "{{")
		})
	}
}

func TestBootstrap_CreatesMissingBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "deeply", "nested")
	b, _ := newTestBootstrapper(t)

	result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: base})
	require.NoError(t, err)
	assert.DirExists(t, result.ProjectPath)
}

func TestBootstrap_TrimsURL(t *testing.T) {
	var cloned string
	clone := fakeCloner(nil)
	recording := ClonerFunc(func(ctx context.Context, url, dir string) error {
		cloned = url
		return clone(ctx, url, dir)
	})
	b, _ := newTestBootstrapper(t, WithCloner(recording))

	result, err := b.Bootstrap(context.Background(), Request{URL: "  " + testURL + "\n", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, testURL, cloned)
	assert.Equal(t, Name("widget"), result.ProjectName)
}

func TestBootstrap_ExistingDirectory(t *testing.T) {
	base := t.TempDir()
	b, _ := newTestBootstrapper(t)
	ctx := context.Background()

	first, err := b.Bootstrap(ctx, Request{URL: testURL, BasePath: base, Editor: editor.Cursor})
	require.NoError(t, err)
	rulesBefore := readFile(t, first.RulesFiles[0])
	require.NoError(t, os.WriteFile(filepath.Join(first.WorkspacePath, "main.go"), []byte("package main\n"), 0o644))

	_, err = b.Bootstrap(ctx, Request{URL: testURL, BasePath: base, Editor: editor.Windsurf})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryExists)
	assert.Contains(t, err.Error(), first.ProjectPath)

	assert.Equal(t, rulesBefore, readFile(t, first.RulesFiles[0]))
	assert.Equal(t, "package main\n", readFile(t, filepath.Join(first.WorkspacePath, "main.go")))
	assert.NoFileExists(t, filepath.Join(first.ProjectPath, ".windsurfrules"))
}

func TestBootstrap_InvalidInputHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{name: "bad url", req: Request{URL: "https://github.com/org/widget"}, want: ErrInvalidURL},
		{name: "empty url", req: Request{URL: ""}, want: ErrInvalidURL},
		{name: "unknown editor", req: Request{URL: testURL, Editor: "emacs"}, want: ErrUnsupportedEditor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			cloned := false
			b, _ := newTestBootstrapper(t, WithCloner(ClonerFunc(func(context.Context, string, string) error {
				cloned = true
				return nil
			})))

			tt.req.BasePath = base
			_, err := b.Bootstrap(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, cloned)
			assert.Empty(t, entryNames(t, base))
		})
	}
}

func TestBootstrap_CloneFailure(t *testing.T) {
	base := t.TempDir()
	b, launcher := newTestBootstrapper(t, WithCloner(failingCloner(errCloneExit)))

	_, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: base, Launch: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCloneFailed)
	assert.ErrorIs(t, err, errCloneExit)
	assert.True(t, IsCloneFailure(err))

	root := filepath.Join(base, "widget")
	assert.DirExists(t, root, "project root is left in place")
	assert.NoDirExists(t, filepath.Join(root, "widget-original"))
	assert.NoDirExists(t, filepath.Join(root, "widget-my-own"))
	assert.Empty(t, launcher.dirs)
}

func TestBootstrap_GitMissing(t *testing.T) {
	t.Setenv("PATH", "")
	base := t.TempDir()
	b, _ := newTestBootstrapper(t, WithCloner(GitCloner))

	_, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: base})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCloneSpawnFailed)
	assert.True(t, IsCloneFailure(err))
	assert.DirExists(t, filepath.Join(base, "widget"))
}

func TestBootstrap_EditorSelection(t *testing.T) {
	tests := []struct {
		name     string
		detected []editor.Kind
		explicit editor.Kind
		want     editor.Kind
	}{
		{name: "nothing detected", want: editor.Cursor},
		{name: "first detected wins", detected: []editor.Kind{editor.Windsurf, editor.VSCode}, want: editor.Windsurf},
		{name: "explicit overrides detection", detected: []editor.Kind{editor.Windsurf}, explicit: editor.VSCode, want: editor.VSCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := &fakeDetector{kinds: tt.detected}
			b, _ := newTestBootstrapper(t, WithDetector(detector))

			result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: t.TempDir(), Editor: tt.explicit})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.SelectedEditor)
			assert.Equal(t, 1, detector.calls)
			assert.NotNil(t, result.DetectedEditors)
		})
	}
}

func TestBootstrap_AllEditors(t *testing.T) {
	b, _ := newTestBootstrapper(t)

	result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: t.TempDir(), AllEditors: true})
	require.NoError(t, err)
	require.Len(t, result.RulesFiles, len(editor.All()))
	for i, cfg := range editor.All() {
		assert.Equal(t, filepath.Join(result.ProjectPath, cfg.RulesRelPath()), result.RulesFiles[i])
		assert.FileExists(t, result.RulesFiles[i])
	}
}

func TestBootstrap_Launch(t *testing.T) {
	b, launcher := newTestBootstrapper(t)

	result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: t.TempDir(), Editor: editor.Windsurf, Launch: true})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{result.ProjectPath}, launcher.dirs)
	assert.Equal(t, []editor.Kind{editor.Windsurf}, launcher.kind)
}

func TestBootstrap_LaunchFailureIsWarning(t *testing.T) {
	b, launcher := newTestBootstrapper(t)
	launcher.err = errors.New("executable file not found")

	result, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: t.TempDir(), Launch: true})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Cursor")
	assert.Contains(t, result.Warnings[0], result.ProjectPath)
	assert.FileExists(t, result.RulesFiles[0])
}

func TestBootstrap_MissingRulesAsset(t *testing.T) {
	base := t.TempDir()
	b, _ := newTestBootstrapper(t, WithLibrary(emptyLibrary()))

	_, err := b.Bootstrap(context.Background(), Request{URL: testURL, BasePath: base})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRulesInstallFailed)

	root := filepath.Join(base, "widget")
	assert.DirExists(t, filepath.Join(root, "widget-original"))
	assert.NoFileExists(t, filepath.Join(root, ".cursor", "rules", "teach.mdc"))
}

func TestBootstrap_RealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	src := filepath.Join(t.TempDir(), "gizmo.git")
	require.NoError(t, os.Mkdir(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "go.mod"), []byte("module example.com/gizmo\n\ngo 1.22\n"), 0o644))
	for _, args := range [][]string{
		{"init", "--quiet"},
		{"add", "."},
		{"-c", "user.name=Test", "-c", "user.email=test@example.com", "commit", "--quiet", "-m", "init"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = src
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	b, _ := newTestBootstrapper(t, WithCloner(GitCloner))
	base := t.TempDir()
	result, err := b.Bootstrap(context.Background(), Request{URL: src, BasePath: base})
	require.NoError(t, err)
	assert.Equal(t, Name("gizmo"), result.ProjectName)
	assert.FileExists(t, filepath.Join(result.OriginalPath, "go.mod"))
	assert.DirExists(t, filepath.Join(result.OriginalPath, ".git"))
	assert.NotEmpty(t, result.OriginalCommit)
}
