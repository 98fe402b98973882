package languages

import (
	"path/filepath"
)

// lexersSubdir is where each data directory layer keeps external lexer
// libraries, outside the app subdirectory.
const lexersSubdir = "scintilla/lexers"

// LoadExternalLexers scans <layer>/scintilla/lexers in every data
// directory and instructs the editor to load each regular file found
// there as a lexer library, in enumeration order. Layers without the
// directory are skipped. Load failures are the editor's to handle;
// none are reported here.
func (r *Registry) LoadExternalLexers(ed Styler) {
	for _, dir := range r.dirs {
		if dir.Path == "" {
			continue
		}
		lexersDir := filepath.Join(dir.Path, filepath.FromSlash(lexersSubdir))

		entries, err := r.fs.ReadDir(lexersDir)
		if err != nil {
			r.log.Debug().Stringer("layer", dir.Kind).Msg("no external lexers in layer")
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(lexersDir, entry.Name())
			r.log.Debug().Str("path", path).Msg("loading external lexer")
			ed.LoadLexerLibrary(path)
		}
	}
}
