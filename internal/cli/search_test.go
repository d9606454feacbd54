package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestSearchCommandText(t *testing.T) {
	a, workspace := newTestApp(t, tagSettings)
	writeFile(t, filepath.Join(workspace, "work-tasks.md"), "# Work\n## TODO [#A] Write report\n## DONE Send report\n")
	writeFile(t, filepath.Join(workspace, "personal-tasks.md"), "## TODO Read report\n")

	out := executeCommand(t, newSearchCommand(context.Background(), a), "REPORT")
	assertContains(t, out, `Results for "REPORT" in tag ALL`)
	assertContains(t, out, "personal-tasks.md:1 TODO Read report")
	assertContains(t, out, "work-tasks.md:2 TODO [#A] Write report")
	assertContains(t, out, "work-tasks.md:3 DONE Send report")

	out = executeCommand(t, newSearchCommand(context.Background(), a), "report", "--status", "done")
	assertContains(t, out, "Send report")
	assertNotContains(t, out, "Write report")

	out = executeCommand(t, newSearchCommand(context.Background(), a), "nothing")
	assertContains(t, out, "(no matches)")
}

func TestSearchCommandHonoursTagAndPriority(t *testing.T) {
	a, workspace := newTestApp(t, strings.Replace(tagSettings, "currentTag: ALL", "currentTag: WORK", 1))
	writeFile(t, filepath.Join(workspace, "work-tasks.md"), "## TODO [#A] Write report\n## TODO [#B] File expenses\n")
	writeFile(t, filepath.Join(workspace, "personal-tasks.md"), "## TODO [#A] Call home\n")

	out := executeCommand(t, newSearchCommand(context.Background(), a), "#A", "--json")

	var results []struct {
		Path string `json:"path"`
		Task struct {
			Line     int    `json:"line"`
			Priority string `json:"priority"`
			Title    string `json:"title"`
		} `json:"task"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, out)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, want 1", results)
	}
	if results[0].Path != "work-tasks.md" || results[0].Task.Title != "Write report" || results[0].Task.Line != 0 {
		t.Fatalf("result = %+v", results[0])
	}
}

func TestSearchCommandRejectsBadStatus(t *testing.T) {
	a, _ := newTestApp(t, "")
	if err := executeCommandErr(t, newSearchCommand(context.Background(), a), "x", "--status", "maybe"); err == nil {
		t.Fatalf("expected invalid status error")
	}
}
