package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/lexstyle/internal/config/datadir"
	"github.com/dshills/lexstyle/internal/lexerlib"
)

func newLexersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lexers",
		Short: "List external lexer libraries found in each layer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, dir := range datadir.Dirs() {
				if dir.Path == "" {
					continue
				}
				lexersDir := filepath.Join(dir.Path, "scintilla", "lexers")

				entries, err := os.ReadDir(lexersDir)
				if err != nil {
					continue
				}
				for _, entry := range entries {
					if entry.IsDir() {
						continue
					}
					path := filepath.Join(lexersDir, entry.Name())
					note := ""
					if !lexerlib.IsLexerLibrary(entry.Name()) {
						note = " (not a lexer library for this platform)"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s (%s)%s\n",
						dir.Kind, path, lexerlib.LibraryName(path), note)
				}
			}
			return nil
		},
	}
}
