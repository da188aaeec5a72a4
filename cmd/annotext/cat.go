package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/annotext/buffer"
	"github.com/iw2rmb/annotext/editor"
	"github.com/iw2rmb/annotext/highlight"
)

type catOptions struct {
	query string
	plain bool
}

func newCatCmd(global *globalOptions) *cobra.Command {
	opts := &catOptions{}
	cmd := &cobra.Command{
		Use:   "cat FILE",
		Short: "Print a file with syntax and search highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, done, err := global.setup()
			if err != nil {
				return err
			}
			defer done()

			b, err := openBuffer(args[0], log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			if opts.plain {
				r.SetColorProfile(termenv.Ascii)
			}
			return writeHighlighted(out, b, highlight.Options{
				Query:        opts.query,
				FileType:     b.FileInfo().FileType,
				HighlightAll: true,
			}, styleFor(r, cfg))
		},
	}
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "highlight every occurrence of `text`")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors")
	return cmd
}

// writeHighlighted renders every line of b the way the editor draws it,
// one styled run at a time.
func writeHighlighted(w io.Writer, b *buffer.Buffer, opt highlight.Options, st editor.Style) error {
	h := highlight.New(opt)
	highlight.Lines(h, b, b.Height())

	var sb strings.Builder
	for i := 0; i < b.Height(); i++ {
		line, _ := b.Line(i)
		s := line.AnnotatedSubstring(buffer.GraphemeRange{Start: 0, End: line.GraphemeCount()}, i, h)
		for p := range s.All() {
			style := st.Text
			if p.Annotated {
				style = st.Kind(p.Kind)
			}
			sb.WriteString(style.Render(p.Text))
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, sb.String())
	return err
}
