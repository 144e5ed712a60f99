package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.dw1.io/rex/internal/input"
)

var errUnreadable = errors.New("unreadable input")

type grepHit struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

func newGrepCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grep NAME [PATH...]",
		Short: "Print lines of files that match a named pattern",
		Long: `Scan each file line by line and print the lines matching the named pattern
as PATH:LINE:TEXT. With no PATH, or when PATH is -, standard input is read.
Files that cannot be opened are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := a.compile(args[0])
			if err != nil {
				return err
			}

			paths := args[1:]
			if len(paths) == 0 {
				paths = []string{input.Stdin}
			}

			out := cmd.OutOrStdout()
			hits, skipped := 0, 0

			for _, path := range paths {
				var src *input.Source
				if path == input.Stdin {
					src, err = input.Read(input.StdinName, cmd.InOrStdin())
				} else {
					src, err = input.Open(a.fs, path)
				}
				if err != nil {
					a.log.Warning("skipping %s: %v", path, err)
					skipped++
					continue
				}
				a.log.Debug("scanning %s (mapped=%t)", src.Name(), src.Mapped())

				err = src.Lines(func(n int, line string) error {
					if !re.MatchString(line) {
						return nil
					}
					hits++

					if a.format() == formatJSON {
						return writeJSON(out, grepHit{Path: src.Name(), Line: n, Text: line})
					}
					_, err := fmt.Fprintf(out, "%s:%d:%s\n", src.Name(), n, line)
					return err
				})
				if cerr := src.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return fmt.Errorf("%s: %w", src.Name(), err)
				}
			}

			a.log.Debug("%d matching line(s)", hits)
			if skipped > 0 {
				return fmt.Errorf("%w: %d of %d", errUnreadable, skipped, len(paths))
			}
			return nil
		},
	}
}
