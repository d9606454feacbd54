package outline

import (
	"regexp"
	"strings"
)

var taskPattern = regexp.MustCompile(`^(#+)\s+(?:(TODO|DONE)\s+)?(?:\[#([A-Z])\]\s*)?(.*)$`)

// Task is one heading line broken into its keyword, priority and title.
type Task struct {
	// Line is the 0-based index of the heading.
	Line     int    `json:"line"`
	Level    int    `json:"level"`
	Status   Status `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	Title    string `json:"title"`
}

// Tasks lists every heading of lines in document order.
func Tasks(lines []string) []Task {
	var tasks []Task
	for i, line := range lines {
		if _, _, ok := ParseHeading(line); !ok {
			continue
		}
		m := taskPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tasks = append(tasks, Task{
			Line:     i,
			Level:    len(m[1]),
			Status:   Status(m[2]),
			Priority: m[3],
			Title:    strings.TrimSpace(m[4]),
		})
	}
	return tasks
}

// Matches reports whether the title contains term. A leading "#" limits the
// match to the priority letter, so "#A" finds `[#A]` tasks.
func (t Task) Matches(term string, caseSensitive bool) bool {
	if p, ok := strings.CutPrefix(term, "#"); ok {
		return p != "" && strings.EqualFold(t.Priority, p)
	}
	title := t.Title
	if !caseSensitive {
		title = strings.ToLower(title)
		term = strings.ToLower(term)
	}
	return strings.Contains(title, term)
}
