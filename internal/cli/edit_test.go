package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/faizmokh/mdorg/internal/files"
	"github.com/faizmokh/mdorg/internal/timestamp"
)

func TestStepCommandTextMode(t *testing.T) {
	a, _ := newTestApp(t, "")

	out := executeCommand(t, newStepCommand(context.Background(), a, timestamp.Down),
		"--text", clockLine, "--col", "23")
	assertContains(t, out, "[2025-12-09 Вт 16:00]--[2025-12-09 Вт 20:30] =>  4:30")
}

func TestStepCommandUsesConfiguredLocale(t *testing.T) {
	a, _ := newTestApp(t, "locale: en\n")

	out := executeCommand(t, newStepCommand(context.Background(), a, timestamp.Up),
		"--text", "<2025-12-09 Tue 10:00>", "--col", "9")
	assertContains(t, out, "<2025-12-10 Wed 10:00>")
}

func TestStepCommandLeavesUntouchedLine(t *testing.T) {
	a, workspace := newTestApp(t, "")
	path := filepath.Join(workspace, "log.md")
	writeFile(t, path, "plain text\n"+clockLine+"\n")

	out := executeCommand(t, newStepCommand(context.Background(), a, timestamp.Up),
		"log.md", "--line", "1", "--col", "3")
	assertContains(t, out, "plain text")
	if got := readFile(t, path); got != "plain text\n"+clockLine+"\n" {
		t.Fatalf("file changed: %q", got)
	}
}

func TestStepCommandValidatesFlags(t *testing.T) {
	a, workspace := newTestApp(t, "")
	writeFile(t, filepath.Join(workspace, "log.md"), clockLine+"\n")
	ctx := context.Background()

	if err := executeCommandErr(t, newStepCommand(ctx, a, timestamp.Up), "log.md", "--line", "1"); err == nil {
		t.Fatalf("expected --col to be required")
	}
	if err := executeCommandErr(t, newStepCommand(ctx, a, timestamp.Up), "--col", "3"); err == nil {
		t.Fatalf("expected a file or --text to be required")
	}
	if err := executeCommandErr(t, newStepCommand(ctx, a, timestamp.Up), "log.md", "--text", "x", "--col", "0"); err == nil {
		t.Fatalf("expected --text with a file to fail")
	}
	if err := executeCommandErr(t, newStepCommand(ctx, a, timestamp.Up), "log.md", "--line", "0", "--col", "3"); err == nil {
		t.Fatalf("expected line 0 to be rejected")
	}
	err := executeCommandErr(t, newStepCommand(ctx, a, timestamp.Up), "log.md", "--line", "5", "--col", "3")
	if !errors.Is(err, files.ErrLineOutOfRange) {
		t.Fatalf("error = %v, want ErrLineOutOfRange", err)
	}
}
