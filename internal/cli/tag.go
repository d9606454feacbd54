package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTagCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Show the active file tag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := a.cfg.Tag()
			if err != nil {
				return fmt.Errorf("tag %q: %w", a.cfg.CurrentTag, err)
			}
			pattern := tag.Pattern
			if pattern == "" {
				pattern = "all files"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", tag.Name, pattern)
			return nil
		},
	}

	cycle := &cobra.Command{
		Use:   "cycle",
		Short: "Switch to the next configured file tag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			next, err := a.store.CycleTag()
			if err != nil {
				return err
			}
			a.cfg.CurrentTag = next
			printSuccess(cmd, "Tag: %s", next)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "files",
		Short: "List workspace Markdown files matching the active tag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := a.manager.MarkdownFiles()
			if err != nil {
				return err
			}
			matched, err := a.cfg.FilterFiles(all)
			if err != nil {
				return fmt.Errorf("tag %q: %w", a.cfg.CurrentTag, err)
			}

			out := cmd.OutOrStdout()
			if len(matched) == 0 {
				_, _ = faintColor.Fprintf(out, "No files match tag %s\n", a.cfg.CurrentTag)
				return nil
			}
			for _, path := range matched {
				fmt.Fprintln(out, displayPath(a.manager.BasePath(), path))
			}
			return nil
		},
	}

	cmd.AddCommand(cycle, list)
	return cmd
}
