package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/lexstyle/internal/config/datadir"
	"github.com/dshills/lexstyle/internal/config/loader"
	"github.com/dshills/lexstyle/internal/languages"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <language>",
		Short: "Validate a language's configuration in every layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := args[0]
			yl := loader.NewYAMLLoader()

			found := 0
			failed := 0
			for _, dir := range datadir.Dirs() {
				if dir.Path == "" {
					continue
				}
				path := filepath.Join(dir.Path, appName, "languages", lang+".yaml")

				var spec languages.LanguageSpec
				ok, err := yl.LoadInto(path, &spec)
				if err == nil && ok {
					err = spec.Validate()
				}
				switch {
				case err != nil:
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s: %v\n", dir.Kind, path, err)
				case !ok:
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s (absent)\n", dir.Kind)
				default:
					found++
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s: ok\n", dir.Kind, path)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d layer(s) invalid for %s", failed, lang)
			}
			if found == 0 {
				return fmt.Errorf("no configuration found for %s in any layer", lang)
			}
			return nil
		},
	}
}
