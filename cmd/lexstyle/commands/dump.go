package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <language>",
		Short: "Show the editor calls and merged style map for a language",
		Long: `Dump applies a language's layered configuration against a recording
styling surface and prints every call an editor would receive, followed
by the merged style map the caller gets back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()
			ed := &printStyler{w: cmd.OutOrStdout(), nextSubstyle: 128}

			styleMap, err := reg.ApplyLanguage(ed, args[0])
			if err != nil {
				return err
			}

			ids := make([]int, 0, len(styleMap))
			for id := range styleMap {
				ids = append(ids, id)
			}
			sort.Ints(ids)

			fmt.Fprintln(cmd.OutOrStdout(), "style map:")
			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d -> %d\n", id, styleMap[id])
			}
			return nil
		},
	}
}

// printStyler is a styling surface that prints every call instead of
// driving an editor. Substyle allocation hands out contiguous ids the
// way Scintilla does, so dumps show realistic substyle numbers.
type printStyler struct {
	w            io.Writer
	nextSubstyle int
}

func (p *printStyler) emit(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printStyler) SetLexer(id int)           { p.emit("set lexer %d", id) }
func (p *printStyler) SetLexerLanguage(n string) { p.emit("set lexer language %q", n) }
func (p *printStyler) SetProperty(k, v string)   { p.emit("set property %s=%s", k, v) }
func (p *printStyler) SetKeywords(s int, w string) {
	p.emit("set keywords[%d] = %q", s, w)
}
func (p *printStyler) SetIdentifiers(s int, i string) {
	p.emit("set identifiers[%d] = %q", s, i)
}
func (p *printStyler) SetCommentLine(t string) { p.emit("set line comment %q", t) }
func (p *printStyler) SetCommentBlock(o, c string) {
	p.emit("set block comment %q %q", o, c)
}
func (p *printStyler) LoadLexerLibrary(path string) { p.emit("load lexer library %s", path) }
func (p *printStyler) FreeSubstyles()               { p.emit("free substyles") }

func (p *printStyler) AllocateSubstyles(class, n int) int {
	start := p.nextSubstyle
	p.nextSubstyle += n
	p.emit("allocate %d substyles for class %d at %d", n, class, start)
	return start
}
