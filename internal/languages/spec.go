package languages

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LanguageSpec is the schema of a per-language configuration file
// (<layer>/<app>/languages/<key>.yaml).
//
//	lexer: int if built into the editor, string if external (required)
//	properties: string -> string map of lexer properties
//	keywords: keyword set index -> space-separated keyword string
//	identifiers: lexem class id -> identifier set strings, one per substyle
//	comments:
//	  line: string
//	  block: pair of strings (open, close)
//	styles: lexem class id -> editor style id
//	substyles: lexem class id -> editor style ids, one per substyle
//
// Identifier strings are matched positionally with styles in substyles.
// Arrays instead of maps are used because substyles are allocated
// contiguously: if allocation returns 128, the 1st entry gets id 128,
// the 2nd 129, and so on. Substyling of a lexem class must be supported
// by the selected lexer.
type LanguageSpec struct {
	Lexer       LexerRef          `yaml:"lexer"`
	Properties  map[string]string `yaml:"properties"`
	Keywords    map[int]string    `yaml:"keywords"`
	Identifiers map[int][]string  `yaml:"identifiers"`
	Comments    Comments          `yaml:"comments"`
	Styles      map[int]int       `yaml:"styles"`
	Substyles   map[int][]int     `yaml:"substyles"`
}

// Comments holds the comment tokens a language uses.
type Comments struct {
	// Line is the single-line comment token (empty if none).
	Line string `yaml:"line"`

	// Block is the block comment token pair: open, close.
	Block []string `yaml:"block"`
}

// LexerRef is the lexer field of a language spec. It is a numeric id
// when the lexer ships with the editor, or a name when the lexer is an
// external library. The value is tried as an integer first.
type LexerRef struct {
	id     int
	name   string
	isID   bool
	isName bool
}

// LexerID creates a reference to a built-in lexer.
func LexerID(id int) LexerRef {
	return LexerRef{id: id, isID: true}
}

// LexerName creates a reference to an external lexer.
func LexerName(name string) LexerRef {
	return LexerRef{name: name, isName: true}
}

// ID returns the numeric lexer id and whether the reference is numeric.
func (r LexerRef) ID() (int, bool) {
	return r.id, r.isID
}

// Name returns the external lexer name.
func (r LexerRef) Name() string {
	return r.name
}

// IsZero reports whether the lexer field was absent.
func (r LexerRef) IsZero() bool {
	return !r.isID && !r.isName
}

// UnmarshalYAML decodes the lexer field, trying int before string.
func (r *LexerRef) UnmarshalYAML(value *yaml.Node) error {
	var id int
	if err := value.Decode(&id); err == nil {
		*r = LexerID(id)
		return nil
	}

	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("lexer must be an int or a string: %w", err)
	}
	*r = LexerName(name)
	return nil
}

// Validate checks the spec for schema violations that the apply step
// must not silently inherit: a missing lexer, a malformed block comment
// pair, and substyle mappings that reference lexem classes never
// declared under identifiers.
func (s *LanguageSpec) Validate() error {
	if s.Lexer.IsZero() {
		return ErrLexerMissing
	}

	if n := len(s.Comments.Block); n != 0 && n != 2 {
		return &ValidationError{
			Field:   "comments.block",
			Message: "block comment must be an open/close pair",
			Value:   s.Comments.Block,
		}
	}

	for class, styles := range s.Substyles {
		idents, ok := s.Identifiers[class]
		if !ok {
			return &ValidationError{
				Field:   fmt.Sprintf("substyles.%d", class),
				Message: "lexem class not declared under identifiers",
				Value:   class,
			}
		}
		if len(styles) > len(idents) {
			return &ValidationError{
				Field:   fmt.Sprintf("substyles.%d", class),
				Message: fmt.Sprintf("%d styles for %d identifier sets", len(styles), len(idents)),
				Value:   styles,
			}
		}
	}

	return nil
}
