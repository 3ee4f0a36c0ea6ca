// Package rules loads and renders the teaching instructions installed into
// a bootstrapped project for each editor.
//
// Assets are looked up through ordered layers. The built-in layer is
// embedded in the binary; a custom directory configured by the user is
// searched first:
//
//	lib := rules.NewLibrary(rules.DirLayer("/home/me/rules"), rules.Builtin())
//	asset, err := lib.Load(editor.Cursor)
//	content, err := asset.Render(rules.Data{ProjectName: "widget"})
package rules

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/adrg/frontmatter"

	"github.com/gorewood/build-my-own/internal/editor"
)

//go:embed assets/*.md
var builtinFS embed.FS

// ErrAssetNotFound is returned when no layer provides an editor's asset.
var ErrAssetNotFound = errors.New("rules asset not found")

// Layer is one source of rules assets.
type Layer struct {
	Name string
	FS   fs.FS
}

// Builtin returns the layer embedded in the binary.
func Builtin() Layer {
	sub, err := fs.Sub(builtinFS, "assets")
	if err != nil {
		panic(fmt.Sprintf("rules: embedded assets missing: %v", err))
	}
	return Layer{Name: "built-in", FS: sub}
}

// DirLayer returns a layer reading assets from a directory on disk.
func DirLayer(dir string) Layer {
	return Layer{Name: dir, FS: os.DirFS(dir)}
}

// Library resolves assets across layers, first match wins.
type Library struct {
	layers []Layer
}

// NewLibrary creates a library searching layers in order.
func NewLibrary(layers ...Layer) *Library {
	return &Library{layers: layers}
}

// Default returns a library with only the built-in assets.
func Default() *Library {
	return NewLibrary(Builtin())
}

// Metadata is the optional YAML frontmatter of an asset.
type Metadata struct {
	Description string `yaml:"description"`
	Globs       string `yaml:"globs"`
	AlwaysApply bool   `yaml:"alwaysApply"`
}

// Asset is an editor's default rules template.
type Asset struct {
	Editor editor.Kind
	Name   string
	Source string
	Meta   Metadata
	Raw    []byte
	body   []byte
}

// AssetName returns the file name an editor's asset is stored under.
func AssetName(kind editor.Kind) string {
	return string(kind) + ".md"
}

// Load finds the asset for kind.
func (l *Library) Load(kind editor.Kind) (*Asset, error) {
	name := AssetName(kind)
	for _, layer := range l.layers {
		if layer.FS == nil {
			continue
		}
		data, err := fs.ReadFile(layer.FS, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s from %s: %w", name, layer.Name, err)
		}
		return parseAsset(kind, name, layer.Name, data)
	}
	return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
}

// Info summarizes an asset for listings.
type Info struct {
	Editor      editor.Kind `json:"editor"`
	Source      string      `json:"source"`
	Description string      `json:"description,omitempty"`
}

// PreviewData stands in for a project when describing assets outside of one.
var PreviewData = Data{
	ProjectName:      "<name>",
	ProjectPath:      "<base>/<name>",
	OriginalDir:      "<base>/<name>/<name>-original",
	OriginalDirName:  "<name>-original",
	WorkspaceDir:     "<base>/<name>/<name>-my-own",
	WorkspaceDirName: "<name>-my-own",
}

// List returns info for every registered editor whose asset resolves.
// Descriptions are rendered with PreviewData; one that fails to render is
// left empty.
func (l *Library) List() []Info {
	var infos []Info
	for _, kind := range editor.Kinds() {
		asset, err := l.Load(kind)
		if err != nil {
			continue
		}
		data := PreviewData
		data.Editor = kind
		description, _ := asset.Description(data)
		infos = append(infos, Info{Editor: kind, Source: asset.Source, Description: description})
	}
	return infos
}

func parseAsset(kind editor.Kind, name, source string, data []byte) (*Asset, error) {
	var meta Metadata
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter of %s: %w", name, err)
	}
	return &Asset{
		Editor: kind,
		Name:   name,
		Source: source,
		Meta:   meta,
		Raw:    data,
		body:   body,
	}, nil
}

// Description renders the frontmatter description, or the first markdown
// heading of the body when there is none, with data.
func (a *Asset) Description(data Data) (string, error) {
	text := a.Meta.Description
	if text == "" {
		for line := range strings.Lines(string(a.body)) {
			line = strings.TrimSpace(line)
			if heading, ok := strings.CutPrefix(line, "# "); ok {
				text = heading
				break
			}
		}
	}
	if text == "" {
		return "", nil
	}
	out, err := execute(a.Name+" description", text, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Data is what an asset template can reference.
type Data struct {
	ProjectName      string
	ProjectPath      string
	OriginalDir      string
	OriginalDirName  string
	WorkspaceDir     string
	WorkspaceDirName string
	Editor           editor.Kind
}

// Render executes the asset, frontmatter included, as a text/template with
// sprig functions. Text without actions renders unchanged.
func (a *Asset) Render(data Data) ([]byte, error) {
	return execute(a.Name, string(a.Raw), data)
}

func execute(name, text string, data Data) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing rules template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering rules template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
