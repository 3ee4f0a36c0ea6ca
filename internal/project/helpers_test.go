package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/gorewood/build-my-own/internal/editor"
	"github.com/gorewood/build-my-own/internal/rules"
)

const testURL = "https://github.com/org/widget.git"

// fakeDetector reports a fixed set of editors.
type fakeDetector struct {
	kinds []editor.Kind
	calls int
}

func (f *fakeDetector) DetectAvailable(context.Context) []editor.Kind {
	f.calls++
	return append([]editor.Kind(nil), f.kinds...)
}

func (f *fakeDetector) SelectDefault(ctx context.Context) editor.Kind {
	return editor.Preferred(f.DetectAvailable(ctx))
}

// fakeLauncher records launches and returns err.
type fakeLauncher struct {
	mu   sync.Mutex
	err  error
	dirs []string
	kind []editor.Kind
}

func (f *fakeLauncher) Launch(_ context.Context, cfg editor.Config, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs = append(f.dirs, dir)
	f.kind = append(f.kind, cfg.Kind)
	return f.err
}

// fakeCloner creates dir with the given files instead of running git.
func fakeCloner(files map[string]string) ClonerFunc {
	return func(_ context.Context, _, dir string) error {
		if err := os.Mkdir(dir, 0o755); err != nil {
			return err
		}
		for name, content := range files {
			if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
				return err
			}
		}
		return nil
	}
}

func failingCloner(err error) ClonerFunc {
	return func(context.Context, string, string) error { return err }
}

var errCloneExit = errors.New("exit status 128")

func newTestBootstrapper(t *testing.T, opts ...Option) (*Bootstrapper, *fakeLauncher) {
	t.Helper()
	launcher := &fakeLauncher{}
	defaults := []Option{
		WithCloner(fakeCloner(map[string]string{"README.md": "# widget\n"})),
		WithDetector(&fakeDetector{}),
		WithLauncher(launcher),
	}
	return New(append(defaults, opts...)...), launcher
}

func emptyLibrary() *rules.Library {
	return rules.NewLibrary(rules.Layer{Name: "empty", FS: fstest.MapFS{}})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func entryNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
