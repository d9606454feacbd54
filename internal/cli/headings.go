package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mdorg/internal/outline"
)

func newStatusCommand(ctx context.Context, a *app, status outline.Status) *cobra.Command {
	var line int
	name := strings.ToLower(string(status))

	cmd := &cobra.Command{
		Use:   name + " <file>",
		Short: "Mark the heading on a line as " + string(status) + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLineFlag(cmd); err != nil {
				return err
			}
			index, err := lineIndex(line)
			if err != nil {
				return err
			}
			updated, err := a.writer.SetStatus(ctx, args[0], index, status)
			if err != nil {
				return err
			}
			printSuccess(cmd, "%s", updated)
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Heading line (1-based)")
	return cmd
}

func newArchiveCommand(ctx context.Context, a *app) *cobra.Command {
	var line int

	cmd := &cobra.Command{
		Use:   "archive <file>",
		Short: "Move the heading owning a line into <file>.archive.md.",
		Long: `archive finds the nearest heading at or above --line and moves it with its
subtree to the end of the archive file, preceded by its ancestor headings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLineFlag(cmd); err != nil {
				return err
			}
			index, err := lineIndex(line)
			if err != nil {
				return err
			}
			heading, archivePath, err := a.writer.Archive(ctx, args[0], index)
			if err != nil {
				return err
			}
			printSuccess(cmd, "Moved %q to %s", heading.Text, displayPath(a.manager.BasePath(), archivePath))
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Line (1-based) inside the heading to archive")
	return cmd
}

func newPromoteCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		line     int
		maintain string
	)

	cmd := &cobra.Command{
		Use:   "promote <file>",
		Short: "Move the heading owning a line under # incoming of the maintain file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLineFlag(cmd); err != nil {
				return err
			}
			index, err := lineIndex(line)
			if err != nil {
				return err
			}
			target := a.cfg.MaintainFilePath
			if maintain != "" {
				target = maintain
			}
			heading, err := a.writer.Promote(ctx, args[0], index, target)
			if err != nil {
				return err
			}
			printSuccess(cmd, "Promoted %q to %s", heading.Text, displayPath(a.manager.BasePath(), target))
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Line (1-based) inside the heading to promote")
	cmd.Flags().StringVar(&maintain, "maintain", "", "Maintain file (default: maintainFilePath setting)")
	return cmd
}
