package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/definition"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build [NAME...]",
		Short: "Print the patterns of a definition file",
		Long: `Build every pattern of the definition file, or only the named ones, and
print them one per line as NAME<TAB>PATTERN.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.document()
			if err != nil {
				return err
			}

			built, err := buildSelected(doc, args)
			if err != nil {
				return err
			}
			a.log.Debug("built %d pattern(s)", len(built))

			out := cmd.OutOrStdout()
			if a.format() == formatJSON {
				for _, b := range built {
					if err := writeJSON(out, b); err != nil {
						return err
					}
				}
				return nil
			}

			for _, b := range built {
				fmt.Fprintf(out, "%s\t%s\n", b.Name, b.Pattern)
			}
			return nil
		},
	}
}

func buildSelected(doc *definition.Document, names []string) ([]definition.Built, error) {
	if len(names) == 0 {
		return doc.Build()
	}

	built := make([]definition.Built, 0, len(names))
	for _, name := range names {
		p, err := doc.Lookup(name)
		if err != nil {
			return nil, err
		}
		built = append(built, definition.Built{Name: name, Pattern: p})
	}
	return built, nil
}
