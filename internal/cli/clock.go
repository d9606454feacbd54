package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/faizmokh/mdorg/internal/clocktable"
)

func newClocktableCommand(ctx context.Context, a *app) *cobra.Command {
	var at int

	cmd := &cobra.Command{
		Use:   "clocktable <file>",
		Short: "Build a Markdown table of clocked time per heading.",
		Long: `clocktable asks markdown-org-extract for the tasks of the file and sums
their CLOCK entries. Without --at the table is printed; with --at it is
inserted into the file before that line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.manager.Resolve(args[0])
			if err != nil {
				return err
			}

			tasks, err := a.extractor.Tasks(ctx, path)
			if err != nil {
				return fmt.Errorf("generate clock table: %w", err)
			}
			table, err := clocktable.Build(tasks)
			if err != nil {
				return fmt.Errorf("generate clock table: %w", err)
			}

			if !cmd.Flags().Changed("at") {
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			}

			index, err := lineIndex(at)
			if err != nil {
				return err
			}
			doc, err := a.manager.Open(path)
			if err != nil {
				return err
			}
			clocktable.Insert(doc, index, table)
			if err := a.manager.Save(doc); err != nil {
				return err
			}
			printSuccess(cmd, "Inserted clock table into %s", displayPath(a.manager.BasePath(), path))
			return nil
		},
	}

	cmd.Flags().IntVar(&at, "at", 0, "Insert before this line (1-based) instead of printing")

	return cmd
}

func newClockCommand(ctx context.Context, a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Inspect CLOCK entries.",
	}

	report := &cobra.Command{
		Use:   "report <file>",
		Short: "Show clocked time per heading as a terminal table.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.manager.Resolve(args[0])
			if err != nil {
				return err
			}
			tasks, err := a.extractor.Tasks(ctx, path)
			if err != nil {
				return fmt.Errorf("clock report: %w", err)
			}
			summary, err := clocktable.Summarize(tasks)
			if err != nil {
				return fmt.Errorf("clock report: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(summary.Rows) == 0 {
				_, _ = faintColor.Fprintln(out, "No CLOCK entries found.")
				return nil
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("Heading"), bold.Sprint("Time"))
			for _, row := range summary.Rows {
				tbl.AddRow(row.Heading, row.Time)
			}
			tbl.AddRow(bold.Sprint("Total"), bold.Sprint(clocktable.FormatDuration(summary.Total)))
			tbl.RightAlign(1)

			_, _ = headingColor.Fprintln(out, displayPath(a.manager.BasePath(), path))
			fmt.Fprintln(out, tbl)
			return nil
		},
	}

	cmd.AddCommand(report)
	return cmd
}
