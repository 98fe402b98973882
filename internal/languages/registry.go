package languages

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dshills/lexstyle/internal/config/datadir"
	"github.com/dshills/lexstyle/internal/config/loader"
)

// DefaultAppName is the subdirectory of each data directory layer that
// holds the language configuration.
const DefaultAppName = "lexstyle"

// DefaultLanguage is the classification returned for extensions with
// no registered language.
const DefaultLanguage = "text"

// Registry holds the known languages, their display names, and the
// file-extension associations, merged across the data directory layers.
type Registry struct {
	appName string
	dirs    []datadir.Dir
	fs      loader.FileSystem
	loader  *loader.YAMLLoader
	log     zerolog.Logger

	// names preserves first-seen order across layers, deduplicated.
	names      []string
	menuItems  map[string]string
	extensions map[string]string
}

// Option configures a Registry.
type Option func(*Registry)

// WithAppName overrides the per-layer subdirectory name.
func WithAppName(name string) Option {
	return func(r *Registry) { r.appName = name }
}

// WithDirs overrides the data directory layers. Dirs are visited in
// slice order; later entries override earlier ones during merging.
func WithDirs(dirs []datadir.Dir) Option {
	return func(r *Registry) { r.dirs = dirs }
}

// WithFileSystem overrides the file system, for testing.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(r *Registry) { r.fs = fs }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// New creates an empty registry. Call Load to populate it.
func New(opts ...Option) *Registry {
	r := &Registry{
		appName:    DefaultAppName,
		dirs:       datadir.Dirs(),
		fs:         loader.DefaultFS(),
		log:        zerolog.Nop(),
		menuItems:  make(map[string]string),
		extensions: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.loader = loader.NewYAMLLoaderWithFS(r.fs)
	return r
}

// registryEntry is one language in a languages.yaml registry file.
type registryEntry struct {
	Name       string   `yaml:"name"`
	Extensions []string `yaml:"extensions"`
}

// Load scans <layer>/<app>/languages.yaml across all layers and
// rebuilds the registry. Layers without a registry file are skipped;
// a malformed file aborts the load and returns the parse error.
func (r *Registry) Load() error {
	r.names = r.names[:0]
	clear(r.menuItems)
	clear(r.extensions)

	for _, dir := range r.dirs {
		if dir.Path == "" {
			continue
		}
		path := filepath.Join(dir.Path, r.appName, "languages.yaml")

		var doc yaml.Node
		found, err := r.loader.LoadInto(path, &doc)
		if err != nil {
			return err
		}
		if !found {
			r.log.Debug().Stringer("layer", dir.Kind).Msg("no language registry in layer")
			continue
		}

		if err := r.mergeRegistryFile(path, &doc); err != nil {
			return err
		}
		r.log.Debug().Stringer("layer", dir.Kind).Str("path", path).Msg("loaded language registry")
	}

	return nil
}

// mergeRegistryFile folds one layer's registry document into the
// registry. The document is walked as a yaml.Node so languages keep
// their file order in the name list.
func (r *Registry) mergeRegistryFile(path string, doc *yaml.Node) error {
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil // empty file
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &loader.ParseError{Path: path, Message: "top level must be a mapping of language keys"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value

		var entry registryEntry
		if err := root.Content[i+1].Decode(&entry); err != nil {
			return &loader.ParseError{
				Path:    path,
				Message: fmt.Sprintf("language %q: %s", key, err),
				Err:     err,
			}
		}

		for _, ext := range entry.Extensions {
			r.extensions[ext] = key
		}
		if !slices.Contains(r.names, key) {
			r.names = append(r.names, key)
		}
		r.menuItems[key] = entry.Name
	}

	return nil
}

// GetLanguageForExtension returns the language registered for a file
// extension. Unmapped extensions classify as DefaultLanguage with a
// false found flag.
func (r *Registry) GetLanguageForExtension(ext string) (string, bool) {
	if lang, ok := r.extensions[ext]; ok {
		return lang, true
	}
	return DefaultLanguage, false
}

// SortAlphabetically sorts the language list in place. Presentation
// ordering only; extension lookup is unaffected.
func (r *Registry) SortAlphabetically() {
	sort.Strings(r.names)
}

// Names returns the language keys in their current order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// MenuItem returns the display name for a language key.
func (r *Registry) MenuItem(lang string) (string, bool) {
	name, ok := r.menuItems[lang]
	return name, ok
}

// Extensions returns a snapshot of the extension to language mapping.
func (r *Registry) Extensions() map[string]string {
	out := make(map[string]string, len(r.extensions))
	for ext, lang := range r.extensions {
		out[ext] = lang
	}
	return out
}
