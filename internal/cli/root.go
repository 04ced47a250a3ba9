package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"blogcreator/internal/config"
	"blogcreator/internal/editor"
	"blogcreator/internal/fetch"
	"blogcreator/internal/logs"
	"blogcreator/internal/platform"
	"blogcreator/internal/post"
	"blogcreator/internal/tui"
)

type globalOptions struct {
	dir   string
	theme string
}

func (o *globalOptions) load() (*config.Config, error) {
	cfg, err := config.Load(config.CLIFlags{
		DocumentsDir: o.dir,
		CodeTheme:    o.theme,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewEngine wires the editor engine to the real file store, HTTP fetcher
// and system URL opener.
func NewEngine(cfg *config.Config) *editor.Engine {
	return editor.NewEngine(editor.Collaborators{
		Store:   post.Store{},
		Fetcher: fetch.NewHTTPFetcher(cfg.FetchTimeout),
		Opener:  editor.OpenerFunc(platform.OpenURL),
		Now:     time.Now,
	})
}

// NewRootCommand creates the top-level Cobra command that launches the
// editor and hosts the batch subcommands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "blogcreator [post.json]",
		Short: "Write blog posts in markdown from your terminal.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if err := config.EnsureConfigFile(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not create config file: %v\n", err)
			}
			if configDir, err := config.GetConfigDir(); err == nil {
				if err := logs.Initialize(configDir); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not initialize logger: %v\n", err)
				}
				defer logs.Close()
			}

			path := ""
			if len(args) == 1 {
				path = resolvePath(args[0])
			}
			return runEditor(ctx, cfg, path)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", "Documents directory for open and save dialogs")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "Syntax highlighting theme for code blocks")

	cmd.AddCommand(
		newExportCommand(),
		newImportCommand(),
		newShowCommand(opts),
	)

	return cmd
}

func runEditor(ctx context.Context, cfg *config.Config, path string) error {
	logs.Logger.Println("Starting editor")

	app := tui.NewAppModel(cfg, NewEngine(cfg), path)
	if err := app.Err(); err != nil {
		return err
	}

	final, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	if m, ok := final.(tui.AppModel); ok {
		return m.Err()
	}
	return nil
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is the entry point used by main.go.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
