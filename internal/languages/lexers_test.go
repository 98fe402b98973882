package languages

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadExternalLexers(t *testing.T) {
	dirs := testLayers(t, 2)

	// First layer has two lexer libraries and a stray subdirectory.
	writeLayerFile(t, dirs[0].Path, "scintilla/lexers/ada.so", "")
	writeLayerFile(t, dirs[0].Path, "scintilla/lexers/zig.so", "")
	if err := os.MkdirAll(filepath.Join(dirs[0].Path, "scintilla", "lexers", "backup"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Second layer has one.
	writeLayerFile(t, dirs[1].Path, "scintilla/lexers/nim.so", "")

	r := New(WithDirs(dirs))
	ed := &fakeStyler{}
	r.LoadExternalLexers(ed)

	want := []string{
		"LoadLexerLibrary(" + filepath.Join(dirs[0].Path, "scintilla", "lexers", "ada.so") + ")",
		"LoadLexerLibrary(" + filepath.Join(dirs[0].Path, "scintilla", "lexers", "zig.so") + ")",
		"LoadLexerLibrary(" + filepath.Join(dirs[1].Path, "scintilla", "lexers", "nim.so") + ")",
	}
	if !reflect.DeepEqual(ed.calls, want) {
		t.Errorf("calls = %v, want %v", ed.calls, want)
	}
}

func TestLoadExternalLexers_NoDirectory(t *testing.T) {
	r := New(WithDirs(testLayers(t, 4)))
	ed := &fakeStyler{}

	r.LoadExternalLexers(ed)

	if len(ed.calls) != 0 {
		t.Errorf("calls = %v, want none when lexers directories are absent", ed.calls)
	}
}
