//go:build darwin || linux || freebsd

package lexerlib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Library is an opened external lexer library.
type Library struct {
	path        string
	handle      uintptr
	createLexer func(name string) uintptr
}

// Open dlopens the lexer library at path and resolves its CreateLexer
// entry point.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("opening lexer library %s: %w", path, err)
	}

	lib := &Library{path: path, handle: handle}
	purego.RegisterLibFunc(&lib.createLexer, handle, createLexerSymbol)
	return lib, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// CreateLexer instantiates the named lexer and returns an opaque
// pointer to it, owned by the editor that requested it.
func (l *Library) CreateLexer(name string) (uintptr, error) {
	ptr := l.createLexer(name)
	if ptr == 0 {
		return 0, fmt.Errorf("%s: %w: %q", l.path, ErrUnknownLexer, name)
	}
	return ptr, nil
}

// Close unloads the library. Lexers created from it must not be used
// afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}
