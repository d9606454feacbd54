package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/timestamp"
)

func newStepCommand(ctx context.Context, a *app, dir timestamp.Direction) *cobra.Command {
	var (
		line int
		col  int
		text string
	)

	verb := "Increment"
	if dir == timestamp.Down {
		verb = "Decrement"
	}

	cmd := &cobra.Command{
		Use:   dir.String() + " [file]",
		Short: verb + " the timestamp field under a column.",
		Long: verb + ` the year, month, day, weekday, hour or minute of the timestamp
at --col. Clock pairs get their duration recomputed. With a file the line is
rewritten in place; with --text the new line is printed only.`,
		Example: `  mdorg ` + dir.String() + ` notes.md --line 12 --col 26
  mdorg ` + dir.String() + ` --text "CLOCK: [2025-12-09 Вт 17:00]" --col 19`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("col") {
				return fmt.Errorf("--col is required")
			}

			if cmd.Flags().Changed("text") {
				if len(args) > 0 {
					return fmt.Errorf("--text cannot be combined with a file")
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.editor.Edit(text, col, dir))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a file or --text is required")
			}
			if err := requireLineFlag(cmd); err != nil {
				return err
			}
			index, err := lineIndex(line)
			if err != nil {
				return err
			}

			doc, err := a.manager.Open(args[0])
			if err != nil {
				return err
			}
			current, err := doc.Line(index)
			if err != nil {
				return err
			}

			result := a.editor.Apply(current, col, dir)
			if !result.Changed || result.Line == current {
				a.logger.Debug("no-op edit", zap.String("path", doc.Path), zap.Int("line", line), zap.Int("col", col))
				fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			}
			if err := doc.SetLine(index, result.Line); err != nil {
				return err
			}
			if err := a.manager.Save(doc); err != nil {
				return err
			}
			a.logger.Debug("timestamp edited",
				zap.String("field", result.Field.String()),
				zap.Bool("paired", result.Paired))

			fmt.Fprintln(cmd.OutOrStdout(), result.Line)
			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", 0, "Line number (1-based) within the file")
	cmd.Flags().IntVar(&col, "col", 0, "Character column (0-based) of the cursor")
	cmd.Flags().StringVar(&text, "text", "", "Edit this line instead of a file and print the result")

	return cmd
}
