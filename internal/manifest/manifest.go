// Package manifest reads descriptive metadata from the package manifest of
// a cloned project (package.json, go.mod).
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// ErrNoManifest is returned when dir holds no recognized manifest.
var ErrNoManifest = errors.New("no recognized manifest")

// Info is what a manifest says about a project.
type Info struct {
	Kind        string `json:"kind"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Module      string `json:"module,omitempty"`
}

type reader struct {
	file string
	read func(path string, data []byte) (Info, error)
}

var readers = []reader{
	{file: "package.json", read: readPackageJSON},
	{file: "go.mod", read: readGoMod},
}

// Read returns the first manifest found in dir.
func Read(dir string) (Info, error) {
	for _, r := range readers {
		path := filepath.Join(dir, r.file)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Info{}, fmt.Errorf("reading %s: %w", path, err)
		}
		return r.read(path, data)
	}
	return Info{}, fmt.Errorf("%w in %s", ErrNoManifest, dir)
}

func readPackageJSON(path string, data []byte) (Info, error) {
	var pkg struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Info{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Info{
		Kind:        "package.json",
		Name:        pkg.Name,
		Description: strings.TrimSpace(pkg.Description),
	}, nil
}

func readGoMod(path string, data []byte) (Info, error) {
	mod, err := modfile.ParseLax(path, data, nil)
	if err != nil {
		return Info{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if mod.Module == nil {
		return Info{}, fmt.Errorf("parsing %s: missing module directive", path)
	}
	modPath := mod.Module.Mod.Path
	info := Info{
		Kind:   "go.mod",
		Name:   modPath[strings.LastIndex(modPath, "/")+1:],
		Module: modPath,
	}
	if mod.Go != nil {
		info.Description = fmt.Sprintf("Go module %s (go %s)", modPath, mod.Go.Version)
	} else {
		info.Description = "Go module " + modPath
	}
	return info, nil
}
