// Package languages loads and applies per-language syntax highlighting
// configuration for lexstyle.
//
// Configuration is layered across the four standard data directories
// (see internal/config/datadir). Each layer may contribute:
//
//   - <layer>/<app>/languages.yaml: the language registry, mapping an
//     internal language key to a display name and file extensions.
//   - <layer>/<app>/languages/<key>.yaml: the full lexer, keyword,
//     substyle, comment, and style configuration for one language.
//   - <layer>/scintilla/lexers/*: external lexer libraries.
//
// Later layers override earlier ones: extension mappings and display
// names are last-write-wins, and per-language style maps are folded so
// keys from a later layer replace the same keys from an earlier layer
// while keys present only in earlier layers survive.
//
// A missing file in any layer is normal absence and is skipped.
// Malformed files abort the operation with a *loader.ParseError, and
// specs that fail schema validation abort with a *ValidationError.
//
// The Registry is not safe for concurrent use; populate it during
// startup and call ApplyLanguage from the goroutine that owns the
// editor.
package languages
