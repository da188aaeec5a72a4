package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/annotext"
	"github.com/iw2rmb/annotext/buffer"
	"github.com/iw2rmb/annotext/config"
	"github.com/iw2rmb/annotext/editor"
	"github.com/iw2rmb/annotext/internal/logging"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "annotext [file]",
		Short: "Edit a text file in the terminal",
		Long: `annotext opens file in a full-screen editor. Ctrl-F searches, Ctrl-S saves
and Ctrl-Q quits. Without a file it starts an empty, unnamed buffer.`,
		Args:         cobra.MaximumNArgs(1),
		Version:      annotext.Version(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd, opts, path)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/annotext/config.toml)")

	cmd.AddCommand(newCatCmd(opts), newSearchCmd(opts))
	return cmd
}

// setup loads the configuration and opens the logger. The caller closes
// the returned cleanup func.
func (o *globalOptions) setup() (*config.Config, *zap.Logger, func(), error) {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, nil, nil, err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, nil, nil, err
	}

	log, closer, err := logging.New(cfg.Log, os.Getenv)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("config loaded", zap.String("path", path))
	return cfg, log, func() { _ = closer.Close() }, nil
}

// styleFor builds the default style on r and applies the configured theme
// over the built-in kind colors.
func styleFor(r *lipgloss.Renderer, cfg *config.Config) editor.Style {
	st := editor.DefaultStyleFor(r)
	for k, c := range cfg.ThemeColors() {
		colors := editor.DefaultKindColors[k]
		if c.Foreground != "" {
			colors.Foreground = c.Foreground
		}
		if c.Background != "" {
			colors.Background = c.Background
		}
		st = st.WithKindColors(k, colors)
	}
	return st
}

func openBuffer(path string, log *zap.Logger) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.New(buffer.Options{}), nil
	}
	b, err := buffer.Load(path, buffer.Options{})
	if err != nil {
		return nil, err
	}
	log.Info("file loaded",
		zap.String("path", path),
		zap.Int("lines", b.Height()),
		zap.Stringer("type", b.FileInfo().FileType),
	)
	return b, nil
}

func runEditor(cmd *cobra.Command, opts *globalOptions, path string) error {
	cfg, log, done, err := opts.setup()
	if err != nil {
		return err
	}
	defer done()

	b, err := openBuffer(path, log)
	if err != nil {
		return err
	}

	m := editor.New(editor.Config{
		Buffer:       b,
		ShowLineNums: cfg.Editor.ShowLineNumbers,
		ScrollMargin: cfg.Editor.ScrollMargin,
		HighlightAll: cfg.Search.HighlightAll,
		Style:        styleFor(lipgloss.DefaultRenderer(), cfg),
		Logger:       log,
	})

	p := tea.NewProgram(app{editor: m}, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// app adapts the editor component to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
