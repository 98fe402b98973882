package languages

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
)

// ApplyLanguage configures the editor for a language by folding
// <layer>/<app>/languages/<lang>.yaml over all data directory layers.
//
// Previously allocated substyles are always freed first. Each layer
// found is validated and applied in full (lexer, properties, keywords,
// identifiers, comments), and its style contribution is merged into the
// returned style map with later layers winning on key collisions.
// Layers without a file for the language are skipped. The returned map
// from style and substyle ids to editor style ids belongs to the
// caller, which uses it to finish configuring presentation.
func (r *Registry) ApplyLanguage(ed Styler, lang string) (map[int]int, error) {
	ed.FreeSubstyles()

	merged := make(map[int]int)
	for _, dir := range r.dirs {
		if dir.Path == "" {
			continue
		}
		path := filepath.Join(dir.Path, r.appName, "languages", lang+".yaml")

		var spec LanguageSpec
		found, err := r.loader.LoadInto(path, &spec)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		r.log.Debug().Stringer("layer", dir.Kind).Str("language", lang).Msg("applying language layer")
		for id, style := range applyLayer(ed, &spec) {
			merged[id] = style
		}
	}

	return merged, nil
}

// applyLayer issues one layer's editor calls and returns the layer's
// style map contribution. Identifier substyles are allocated before the
// substyle mapping is resolved, because the mapping needs the starting
// ids the editor hands back.
func applyLayer(ed Styler, spec *LanguageSpec) map[int]int {
	if id, ok := spec.Lexer.ID(); ok {
		ed.SetLexer(id)
	} else {
		ed.SetLexerLanguage(spec.Lexer.Name())
	}

	for _, name := range sortedKeys(spec.Properties) {
		ed.SetProperty(name, spec.Properties[name])
	}

	for _, set := range sortedKeys(spec.Keywords) {
		ed.SetKeywords(set, spec.Keywords[set])
	}

	// One substyle per identifier set, allocated contiguously per class.
	substyleStart := make(map[int]int, len(spec.Identifiers))
	for _, class := range sortedKeys(spec.Identifiers) {
		idents := spec.Identifiers[class]
		// TODO: allocate once per language instead of on every apply.
		start := ed.AllocateSubstyles(class, len(idents))
		substyleStart[class] = start
		for i, set := range idents {
			ed.SetIdentifiers(start+i, set)
		}
	}

	if spec.Comments.Line != "" {
		ed.SetCommentLine(spec.Comments.Line)
	}
	if len(spec.Comments.Block) == 2 {
		ed.SetCommentBlock(spec.Comments.Block[0], spec.Comments.Block[1])
	}

	styleMap := make(map[int]int, len(spec.Styles)+len(spec.Substyles))
	for class, style := range spec.Styles {
		styleMap[class] = style
	}
	for class, styles := range spec.Substyles {
		// Validate guarantees the class was declared under identifiers.
		start := substyleStart[class]
		for i, style := range styles {
			styleMap[start+i] = style
		}
	}

	return styleMap
}

// sortedKeys returns the map's keys in ascending order, for a stable
// editor call sequence.
func sortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
