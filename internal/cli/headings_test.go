package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/faizmokh/mdorg/internal/outline"
)

func TestStatusCommands(t *testing.T) {
	a, workspace := newTestApp(t, "")
	path := filepath.Join(workspace, "tasks.md")
	writeFile(t, path, "## [#A] Ship release\n")
	ctx := context.Background()

	out := executeCommand(t, newStatusCommand(ctx, a, outline.StatusDone), "tasks.md", "--line", "1")
	assertContains(t, out, "## DONE [#A] Ship release")

	out = executeCommand(t, newStatusCommand(ctx, a, outline.StatusTodo), "tasks.md", "--line", "1")
	assertContains(t, out, "## TODO [#A] Ship release")

	if got := readFile(t, path); got != "## TODO [#A] Ship release\n" {
		t.Fatalf("file = %q", got)
	}
}

func TestStatusCommandRequiresLine(t *testing.T) {
	a, workspace := newTestApp(t, "")
	writeFile(t, filepath.Join(workspace, "tasks.md"), "## Task\n")

	if err := executeCommandErr(t, newStatusCommand(context.Background(), a, outline.StatusDone), "tasks.md"); err == nil {
		t.Fatalf("expected --line to be required")
	}
}

func TestPromoteCommandWithoutMaintainFile(t *testing.T) {
	a, workspace := newTestApp(t, "")
	writeFile(t, filepath.Join(workspace, "tasks.md"), "## Task\n")

	err := executeCommandErr(t, newPromoteCommand(context.Background(), a), "tasks.md", "--line", "1")
	if !errors.Is(err, outline.ErrMaintainPathUnset) {
		t.Fatalf("error = %v, want ErrMaintainPathUnset", err)
	}
}

func TestPromoteCommandMaintainFlag(t *testing.T) {
	a, workspace := newTestApp(t, "")
	writeFile(t, filepath.Join(workspace, "tasks.md"), "## Task\n")
	target := filepath.Join(workspace, "other.md")

	out := executeCommand(t, newPromoteCommand(context.Background(), a), "tasks.md", "--line", "1", "--maintain", target)
	assertContains(t, out, `Promoted "Task" to other.md`)
	if got := readFile(t, target); got != "# incoming\n## Task\n" {
		t.Fatalf("maintain = %q", got)
	}
}

func TestArchiveCommandWithoutHeading(t *testing.T) {
	a, workspace := newTestApp(t, "")
	writeFile(t, filepath.Join(workspace, "notes.md"), "just text\n")

	err := executeCommandErr(t, newArchiveCommand(context.Background(), a), "notes.md", "--line", "1")
	if !errors.Is(err, outline.ErrHeadingNotFound) {
		t.Fatalf("error = %v, want ErrHeadingNotFound", err)
	}
}
