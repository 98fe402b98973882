package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the languages known across all configuration layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()
			if err := reg.Load(); err != nil {
				return err
			}
			reg.SortAlphabetically()

			// Invert the extension map for display.
			extsByLang := make(map[string][]string)
			for ext, lang := range reg.Extensions() {
				extsByLang[lang] = append(extsByLang[lang], ext)
			}

			for _, key := range reg.Names() {
				name, _ := reg.MenuItem(key)
				exts := extsByLang[key]
				sort.Strings(exts)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-24s %s\n", key, name, strings.Join(exts, " "))
			}
			return nil
		},
	}
}
