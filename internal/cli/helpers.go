package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// lineIndex converts a 1-based --line flag into a 0-based index.
func lineIndex(line int) (int, error) {
	if line < 1 {
		return 0, fmt.Errorf("invalid line %d (expected 1 or more)", line)
	}
	return line - 1, nil
}

func requireLineFlag(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("line") {
		return fmt.Errorf("--line is required")
	}
	return nil
}

var (
	successColor = color.New(color.FgGreen)
	headingColor = color.New(color.Bold, color.Underline)
	faintColor   = color.New(color.Faint)
)

func printSuccess(cmd *cobra.Command, format string, args ...any) {
	_, _ = successColor.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

// displayPath shortens paths inside base to a relative form.
func displayPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
