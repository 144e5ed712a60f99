package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/pattern"
)

func newEscapeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "escape TEXT...",
		Short: "Print each argument as a literal pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if a.format() == formatJSON {
				for _, text := range args {
					rec := struct {
						Text    string          `json:"text"`
						Pattern pattern.Pattern `json:"pattern"`
					}{Text: text, Pattern: pattern.Literal(text)}
					if err := writeJSON(out, rec); err != nil {
						return err
					}
				}
				return nil
			}

			for _, text := range args {
				fmt.Fprintln(out, pattern.Literal(text))
			}
			return nil
		},
	}
}
