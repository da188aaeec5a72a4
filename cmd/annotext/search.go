package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext/buffer"
)

var errNoMatch = errors.New("no match")

type searchOptions struct {
	from     string
	backward bool
}

func newSearchCmd(global *globalOptions) *cobra.Command {
	opts := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search FILE QUERY",
		Short: "Print the line:grapheme location of the next match",
		Long: `search looks for QUERY starting at --from and wraps around the end of the
file once. With --backward it finds the last match ending at or before --from.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseLocation(opts.from)
			if err != nil {
				return err
			}

			_, log, done, err := global.setup()
			if err != nil {
				return err
			}
			defer done()

			b, err := openBuffer(args[0], log)
			if err != nil {
				return err
			}

			query := args[1]
			search := b.SearchForward
			if opts.backward {
				search = b.SearchBackward
			}
			loc, ok := search(query, from)
			log.Debug("search",
				zap.String("query", query),
				zap.Stringer("from", from),
				zap.Bool("backward", opts.backward),
				zap.Bool("found", ok),
			)
			if !ok {
				return fmt.Errorf("%w for %q", errNoMatch, query)
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "0:0", "start `line:grapheme`, both 0-based")
	cmd.Flags().BoolVar(&opts.backward, "backward", false, "search towards the start of the file")
	return cmd
}

// parseLocation parses "line:grapheme". A bare line number means grapheme 0.
func parseLocation(s string) (buffer.Location, error) {
	lineStr, gStr, hasG := strings.Cut(strings.TrimSpace(s), ":")
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 0 {
		return buffer.Location{}, fmt.Errorf("invalid location %q: line must be a non-negative integer", s)
	}
	g := 0
	if hasG {
		g, err = strconv.Atoi(gStr)
		if err != nil || g < 0 {
			return buffer.Location{}, fmt.Errorf("invalid location %q: grapheme must be a non-negative integer", s)
		}
	}
	return buffer.Location{LineIdx: line, GraphemeIdx: g}, nil
}
