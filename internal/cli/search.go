package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/faizmokh/mdorg/internal/outline"
)

func newSearchCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		statusFlag    string
		caseSensitive bool
		outputJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search headings across files matching the active tag.",
		Long: `search lists the headings whose title contains term in every workspace
Markdown file selected by the active tag. A term starting with "#" matches the
priority cookie instead, so "#A" finds [#A] headings.`,
		Example: `  mdorg search report
  mdorg search "#A" --status todo --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(args[0])
			if term == "" {
				return fmt.Errorf("term is required")
			}

			var status outline.Status
			if statusFlag != "" {
				s, ok := outline.ParseStatus(statusFlag)
				if !ok {
					return fmt.Errorf("invalid --status %q (expected todo or done)", statusFlag)
				}
				status = s
			}

			results, err := searchTasks(ctx, a, term, status, caseSensitive)
			if err != nil {
				return err
			}
			if outputJSON {
				return printSearchResultsJSON(cmd, results)
			}
			printSearchResultsText(cmd, term, a.cfg.CurrentTag, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Only headings with this keyword (todo or done)")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Match term with case sensitivity")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit results as JSON objects")

	return cmd
}

type searchResult struct {
	Path string       `json:"path"`
	Task outline.Task `json:"task"`
}

func searchTasks(ctx context.Context, a *app, term string, status outline.Status, caseSensitive bool) ([]searchResult, error) {
	all, err := a.manager.MarkdownFiles()
	if err != nil {
		return nil, err
	}
	paths, err := a.cfg.FilterFiles(all)
	if err != nil {
		return nil, fmt.Errorf("tag %q: %w", a.cfg.CurrentTag, err)
	}

	var results []searchResult
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := a.manager.Open(path)
		if err != nil {
			return nil, err
		}
		for _, task := range outline.Tasks(doc.Lines) {
			if status != "" && task.Status != status {
				continue
			}
			if task.Matches(term, caseSensitive) {
				results = append(results, searchResult{
					Path: displayPath(a.manager.BasePath(), path),
					Task: task,
				})
			}
		}
	}
	return results, nil
}

func printSearchResultsText(cmd *cobra.Command, term, tag string, results []searchResult) {
	out := cmd.OutOrStdout()
	_, _ = headingColor.Fprintf(out, "Results for %q in tag %s\n", term, tag)
	if len(results) == 0 {
		_, _ = faintColor.Fprintln(out, "(no matches)")
		return
	}

	for _, res := range results {
		fmt.Fprintf(out, "%s:%d %s\n", res.Path, res.Task.Line+1, formatTask(res.Task))
	}
}

func formatTask(task outline.Task) string {
	var parts []string
	if task.Status != "" {
		parts = append(parts, string(task.Status))
	}
	if task.Priority != "" {
		parts = append(parts, "[#"+task.Priority+"]")
	}
	parts = append(parts, task.Title)
	return strings.Join(parts, " ")
}

func printSearchResultsJSON(cmd *cobra.Command, results []searchResult) error {
	if results == nil {
		results = []searchResult{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
