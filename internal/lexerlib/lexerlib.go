// Package lexerlib loads external lexer libraries.
//
// External lexers are shared libraries (.so on Linux, .dylib on macOS)
// exporting the Scintilla lexer entry point:
//
//	ILexer5 *CreateLexer(const char *name);
//
// An editor implementation satisfies the styling surface's
// LoadLexerLibrary call by opening the library here and creating lexers
// from it by name.
package lexerlib

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
)

// createLexerSymbol is the entry point every external lexer exports.
const createLexerSymbol = "CreateLexer"

// Errors returned when loading lexer libraries.
var (
	// ErrUnsupported indicates the platform cannot load shared libraries.
	ErrUnsupported = errors.New("external lexers not supported on this platform")

	// ErrUnknownLexer indicates the library has no lexer with the requested name.
	ErrUnknownLexer = errors.New("unknown lexer name")
)

// LibExtension returns the shared library extension for the current platform.
func LibExtension() string {
	if runtime.GOOS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

// LibraryName derives a lexer library's display name from its path:
// the base name with any "lib" prefix and shared-library extension
// stripped. "/usr/local/share/scintilla/lexers/libzig.so" names "zig".
func LibraryName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, "lib")
}

// IsLexerLibrary reports whether a file name looks like a lexer
// library for the current platform.
func IsLexerLibrary(name string) bool {
	return strings.HasSuffix(name, LibExtension())
}
