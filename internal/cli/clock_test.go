package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/faizmokh/mdorg/internal/clocktable"
)

func TestClocktableCommandPrintsTable(t *testing.T) {
	a, workspace := newTestApp(t, "")
	fake := &fakeExtractor{tasks: []clocktable.Task{
		{Heading: "Task 1", TotalClockTime: "2:30"},
		{Heading: "Task 2", TotalClockTime: "1:45"},
	}}
	a.extractor = fake
	writeFile(t, filepath.Join(workspace, "sample.md"), "## TODO Task 1\n")

	out := executeCommand(t, newClocktableCommand(context.Background(), a), "sample.md")
	assertContains(t, out, "| Task 1  | 2:30 |")
	assertContains(t, out, "| **Total** | **4:15** |")

	if len(fake.files) != 1 || fake.files[0] != filepath.Join(workspace, "sample.md") {
		t.Fatalf("extractor called with %q", fake.files)
	}
	if got := readFile(t, filepath.Join(workspace, "sample.md")); got != "## TODO Task 1\n" {
		t.Fatalf("file changed without --at: %q", got)
	}
}

func TestClocktableCommandWithoutClocks(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.extractor = &fakeExtractor{tasks: []clocktable.Task{{Heading: "Task without clocks"}}}

	out := executeCommand(t, newClocktableCommand(context.Background(), a), "empty.md")
	assertContains(t, out, "| No CLOCK entries found | 0:00 |")
}

func TestClocktableCommandSurfacesExtractorError(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.extractor = &fakeExtractor{err: &clocktable.ExtractorError{
		Path:   "markdown-org-extract",
		Err:    errors.New("exit status 1"),
		Stderr: "Extractor error",
	}}

	err := executeCommandErr(t, newClocktableCommand(context.Background(), a), "sample.md")
	var extErr *clocktable.ExtractorError
	if !errors.As(err, &extErr) {
		t.Fatalf("error = %v, want *clocktable.ExtractorError", err)
	}
	assertContains(t, err.Error(), "Extractor error")
}

func TestClockReportCommand(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.extractor = &fakeExtractor{tasks: []clocktable.Task{
		{Heading: "DONE [#B] Review", TotalClockTime: "0:45"},
		{Heading: "Plan", TotalClockTime: "1:30"},
	}}

	out := executeCommand(t, newClockCommand(context.Background(), a), "report", "notes.md")
	assertContains(t, out, "notes.md")
	assertContains(t, out, "Review")
	assertNotContains(t, out, "[#B]")
	assertContains(t, out, "Total")
	assertContains(t, out, "2:15")
}

func TestClockReportCommandEmpty(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.extractor = &fakeExtractor{}

	out := executeCommand(t, newClockCommand(context.Background(), a), "report", "notes.md")
	assertContains(t, out, "No CLOCK entries found.")
}
