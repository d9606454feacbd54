package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/mdorg/internal/config"
	"github.com/faizmokh/mdorg/internal/outline"
	"github.com/faizmokh/mdorg/internal/timestamp"
	"github.com/faizmokh/mdorg/internal/ui"
	"github.com/faizmokh/mdorg/internal/version"
)

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, store *config.Store) *cobra.Command {
	a := &app{store: store}
	var (
		verbose bool
		line    int
	)

	cmd := &cobra.Command{
		Use:     "mdorg [file]",
		Short:   "Edit org-style timestamps, clock tables and task headings in Markdown files.",
		Version: version.Info(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			m := ui.NewModel(ctx, ui.Options{
				Manager: a.manager,
				Editor:  a.editor,
				Writer:  a.writer,
				Logger:  a.logger,
				Path:    args[0],
				Line:    line - 1,
			})
			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.Flags().IntVar(&line, "line", 1, "Line (1-based) to place the cursor on")

	cmd.AddCommand(
		newStepCommand(ctx, a, timestamp.Up),
		newStepCommand(ctx, a, timestamp.Down),
		newClocktableCommand(ctx, a),
		newClockCommand(ctx, a),
		newStatusCommand(ctx, a, outline.StatusTodo),
		newStatusCommand(ctx, a, outline.StatusDone),
		newArchiveCommand(ctx, a),
		newPromoteCommand(ctx, a),
		newSearchCommand(ctx, a),
		newTagCommand(ctx, a),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that loads settings and executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	store, err := config.Load(config.Options{})
	if err != nil {
		return err
	}
	cmd := NewRootCommand(ctx, store)
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/mdorg/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
