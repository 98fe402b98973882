package loader

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) ReadDir(path string) ([]fs.DirEntry, error) {
	prefix := strings.TrimSuffix(path, "/") + "/"
	var names []string
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			rest := strings.TrimPrefix(p, prefix)
			if !strings.Contains(rest, "/") {
				names = append(names, rest)
			}
		}
	}
	if len(names) == 0 {
		return nil, fs.ErrNotExist
	}
	sort.Strings(names)
	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, memDirEntry{name: n})
	}
	return entries, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: filepath.Base(path)}, nil
	}
	return nil, fs.ErrNotExist
}

type memDirEntry struct {
	name string
}

func (e memDirEntry) Name() string               { return e.name }
func (e memDirEntry) IsDir() bool                { return false }
func (e memDirEntry) Type() fs.FileMode          { return 0 }
func (e memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{name: e.name}, nil }

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestYAMLLoader_LoadFrom(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
editor:
  tabSize: 4
  wordWrap: on
languages:
  - go
  - rust
`)

	l := NewYAMLLoaderWithFS(memfs)
	config, err := l.LoadFrom("/config.yaml")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	editor, ok := config["editor"].(map[string]any)
	if !ok {
		t.Fatal("editor should be a map")
	}
	if editor["tabSize"] != 4 {
		t.Errorf("tabSize = %v, want 4", editor["tabSize"])
	}

	langs, ok := config["languages"].([]any)
	if !ok || len(langs) != 2 {
		t.Fatalf("languages = %v, want 2-element list", config["languages"])
	}
}

func TestYAMLLoader_LoadFrom_NotFound(t *testing.T) {
	l := NewYAMLLoaderWithFS(NewMemFS())

	config, err := l.LoadFrom("/missing.yaml")
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil for missing file", config)
	}
}

func TestYAMLLoader_LoadFrom_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "key: [unclosed")

	l := NewYAMLLoaderWithFS(memfs)
	_, err := l.LoadFrom("/bad.yaml")
	if err == nil {
		t.Fatal("expected parse error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if pe.Path != "/bad.yaml" {
		t.Errorf("Path = %q, want /bad.yaml", pe.Path)
	}
	if pe.Unwrap() == nil {
		t.Error("ParseError should wrap the yaml error")
	}
}

func TestYAMLLoader_LoadInto(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/lang.yaml", `
name: Go
extensions: [go, mod]
`)

	var out struct {
		Name       string   `yaml:"name"`
		Extensions []string `yaml:"extensions"`
	}

	l := NewYAMLLoaderWithFS(memfs)
	found, err := l.LoadInto("/lang.yaml", &out)
	if err != nil {
		t.Fatalf("LoadInto() error = %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if out.Name != "Go" {
		t.Errorf("Name = %q, want Go", out.Name)
	}
	if len(out.Extensions) != 2 || out.Extensions[0] != "go" {
		t.Errorf("Extensions = %v, want [go mod]", out.Extensions)
	}
}

func TestYAMLLoader_LoadInto_NotFound(t *testing.T) {
	l := NewYAMLLoaderWithFS(NewMemFS())

	var out map[string]any
	found, err := l.LoadInto("/missing.yaml", &out)
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if found {
		t.Error("found = true, want false")
	}
}

func TestYAMLLoader_LoadInto_TypeMismatch(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/lang.yaml", "name: [not, a, string]")

	var out struct {
		Name string `yaml:"name"`
	}

	l := NewYAMLLoaderWithFS(memfs)
	_, err := l.LoadInto("/lang.yaml", &out)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
}

func TestYAMLLoader_LoadFromReader(t *testing.T) {
	l := NewYAMLLoader()

	config, err := l.LoadFromReader(strings.NewReader("lexer: cpp"))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if config["lexer"] != "cpp" {
		t.Errorf("lexer = %v, want cpp", config["lexer"])
	}
}
