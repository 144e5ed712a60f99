package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/regexp"
)

var errNoMatch = errors.New("input did not match")

type matchResult struct {
	Input  string            `json:"input"`
	Match  bool              `json:"match"`
	Groups map[string]string `json:"groups,omitempty"`
}

func newMatchCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match NAME INPUT...",
		Short: "Check inputs against a named pattern",
		Long: `Compile the named pattern and report, for each input, whether it matches
and what each named group captured.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := a.compile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, in := range args[1:] {
				res := matchResult{Input: in, Groups: re.NamedSubmatch(in)}
				res.Match = res.Groups != nil
				if !res.Match {
					failed++
				}

				if a.format() == formatJSON {
					if err := writeJSON(out, res); err != nil {
						return err
					}
					continue
				}

				status := "match"
				if !res.Match {
					status = "no match"
				}
				fmt.Fprintf(out, "%s\t%s\n", in, status)

				keys := make([]string, 0, len(res.Groups))
				for k := range res.Groups {
					keys = append(keys, k)
				}
				slices.Sort(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "  %s=%s\n", k, res.Groups[k])
				}
			}

			if strict && failed > 0 {
				return fmt.Errorf("%w: %d of %d", errNoMatch, failed, len(args)-1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any input does not match")

	return cmd
}

func (a *app) compile(name string) (*regexp.Regexp, error) {
	doc, err := a.document()
	if err != nil {
		return nil, err
	}

	p, err := doc.Lookup(name)
	if err != nil {
		return nil, err
	}

	re, err := regexp.CompilePattern(p)
	if err != nil {
		return nil, err
	}
	a.log.Debug("compiled %s as %s with %s", name, re, re.Engine())

	return re, nil
}
