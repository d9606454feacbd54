package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/clocktable"
	"github.com/faizmokh/mdorg/internal/config"
	"github.com/faizmokh/mdorg/internal/outline"
	"github.com/faizmokh/mdorg/internal/timestamp"
)

const clockLine = "`CLOCK: [2025-12-09 Вт 17:00]--[2025-12-09 Вт 20:30] =>  3:30`"

type fakeExtractor struct {
	tasks []clocktable.Task
	err   error
	files []string
}

func (f *fakeExtractor) Tasks(_ context.Context, file string) ([]clocktable.Task, error) {
	f.files = append(f.files, file)
	return f.tasks, f.err
}

// newTestApp wires an app over a temp workspace with the given settings file.
func newTestApp(t *testing.T, settings string) (*app, string) {
	t.Helper()
	home := t.TempDir()
	workspace := filepath.Join(home, "org")
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("MDORG_HOME", workspace)
	t.Setenv("MDORG_CONFIG_PATH", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)
	chdir(t, workspace)

	if settings != "" {
		if err := os.WriteFile(filepath.Join(home, ".mdorg.yaml"), []byte(settings), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	store, err := config.Load(config.Options{})
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg, err := store.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}

	a := &app{store: store}
	if err := a.wire(cfg, zap.NewNop()); err != nil {
		t.Fatalf("wire: %v", err)
	}
	return a, workspace
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	a, workspace := newTestApp(t, "maintainFilePath: ~/org/maintain.md\n")
	a.extractor = &fakeExtractor{tasks: []clocktable.Task{
		{Heading: "TODO [#A] Write report", TotalClockTime: "3:30"},
	}}

	path := filepath.Join(workspace, "work.md")
	writeFile(t, path, "# Project\n## Write report\n"+clockLine+"\n## Idea\nsketch\n")

	// 1. Mark the heading as TODO.
	todoOut := executeCommand(t, newStatusCommand(ctx, a, outline.StatusTodo), "work.md", "--line", "2")
	assertContains(t, todoOut, "## TODO Write report")

	// 2. Stretch the clock by an hour from the end hour field.
	upOut := executeCommand(t, newStepCommand(ctx, a, timestamp.Up), "work.md", "--line", "3", "--col", "46")
	assertContains(t, upOut, "[2025-12-09 Вт 21:30] =>  4:30")

	// 3. Insert a clock table under the project heading.
	tableOut := executeCommand(t, newClocktableCommand(ctx, a), "work.md", "--at", "2")
	assertContains(t, tableOut, "Inserted clock table into work.md")

	// 4. Promote the idea into the maintain file.
	promoteOut := executeCommand(t, newPromoteCommand(ctx, a), "work.md", "--line", "11")
	assertContains(t, promoteOut, `Promoted "Idea" to maintain.md`)

	// 5. Archive the report.
	archiveOut := executeCommand(t, newArchiveCommand(ctx, a), "work.md", "--line", "9")
	assertContains(t, archiveOut, `Moved "TODO Write report" to work.md.archive.md`)

	wantDoc := strings.Join([]string{
		"# Project",
		"| Heading      | Time |",
		"|--------------|------|",
		"| Write report | 3:30 |",
		"|--------------|------|",
		"| **Total**    | **3:30** |",
	}, "\n") + "\n"
	if got := readFile(t, path); got != wantDoc {
		t.Fatalf("work.md = %q, want %q", got, wantDoc)
	}

	wantArchive := "# Project\n## TODO Write report\n`CLOCK: [2025-12-09 Вт 17:00]--[2025-12-09 Вт 21:30] =>  4:30`\n"
	if got := readFile(t, path+".archive.md"); got != wantArchive {
		t.Fatalf("archive = %q, want %q", got, wantArchive)
	}
	if got := readFile(t, filepath.Join(workspace, "maintain.md")); got != "# incoming\n## Idea\nsketch\n" {
		t.Fatalf("maintain = %q", got)
	}
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func executeCommandErr(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd.Execute()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	if err := os.Chdir(abs); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Chdir restore: %v", err)
		}
	})
}
