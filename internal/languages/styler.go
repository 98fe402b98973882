package languages

// Styler is the editor styling surface language configuration is
// applied against. A Scintilla-like widget satisfies it by forwarding
// each call to the corresponding editor message. Calls are
// fire-and-forget: editor-side failures are not observable here.
type Styler interface {
	// SetLexer selects a built-in lexer by numeric id.
	SetLexer(id int)

	// SetLexerLanguage selects an external lexer by name.
	SetLexerLanguage(name string)

	// SetProperty sets a lexer property.
	SetProperty(name, value string)

	// SetKeywords sets the keyword list for a keyword set index.
	SetKeywords(set int, keywords string)

	// AllocateSubstyles allocates n contiguous substyle ids for a lexem
	// class and returns the first allocated id.
	AllocateSubstyles(class, n int) int

	// SetIdentifiers registers the identifiers styled by a substyle id.
	// The identifiers argument is a space-separated list.
	SetIdentifiers(substyle int, identifiers string)

	// SetCommentLine sets the single-line comment token.
	SetCommentLine(token string)

	// SetCommentBlock sets the block comment token pair.
	SetCommentBlock(open, close string)

	// LoadLexerLibrary loads an external lexer library from a path.
	LoadLexerLibrary(path string)

	// FreeSubstyles releases all previously allocated substyle ids.
	FreeSubstyles()
}
