package clocktable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/faizmokh/mdorg/internal/files"
)

// EmptyTable is emitted when no task carries clocked time.
const EmptyTable = "| Heading | Time |\n|---------|------|\n| No CLOCK entries found | 0:00 |"

var statusPrefix = regexp.MustCompile(`^(TODO|DONE)\s+(\[#[A-Z]\]\s+)?`)

// ParseDuration reads "H:MM" as minutes. Both halves carry their own sign,
// so "-1:-30" is -90.
func ParseDuration(s string) (int, error) {
	hours, mins, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("duration %q: missing colon", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hours))
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", s, err)
	}
	m, err := strconv.Atoi(strings.TrimSpace(mins))
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", s, err)
	}
	return h*60 + m, nil
}

// FormatDuration renders minutes as "H:MM" with floored hours.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if mins < 0 {
		hours--
		mins += 60
	}
	return fmt.Sprintf("%d:%02d", hours, mins)
}

// Row is one line of the clock table.
type Row struct {
	Heading string
	Time    string
}

// Summary is the clocked time of a set of tasks.
type Summary struct {
	Rows  []Row
	Total int
}

// Summarize keeps the tasks that have clocked time and adds them up. Task
// keywords and priority cookies are stripped from headings.
func Summarize(tasks []Task) (Summary, error) {
	var s Summary
	for _, t := range tasks {
		if t.TotalClockTime == "" {
			continue
		}
		minutes, err := ParseDuration(t.TotalClockTime)
		if err != nil {
			return Summary{}, fmt.Errorf("task %q: %w", t.Heading, err)
		}
		s.Total += minutes
		s.Rows = append(s.Rows, Row{
			Heading: statusPrefix.ReplaceAllString(t.Heading, ""),
			Time:    t.TotalClockTime,
		})
	}
	return s, nil
}

// Build renders tasks as a Markdown table with a bold total row.
func Build(tasks []Task) (string, error) {
	s, err := Summarize(tasks)
	if err != nil {
		return "", err
	}
	if len(s.Rows) == 0 {
		return EmptyTable, nil
	}

	total := FormatDuration(s.Total)
	headingWidth := len("Heading")
	timeWidth := max(len("Time"), width(total))
	for _, row := range s.Rows {
		headingWidth = max(headingWidth, width(row.Heading))
		timeWidth = max(timeWidth, width(row.Time))
	}

	rule := "|" + strings.Repeat("-", headingWidth+2) + "|" + strings.Repeat("-", timeWidth+2) + "|"
	lines := make([]string, 0, len(s.Rows)+4)
	lines = append(lines, "| "+pad("Heading", headingWidth)+" | "+pad("Time", timeWidth)+" |")
	lines = append(lines, rule)
	for _, row := range s.Rows {
		lines = append(lines, "| "+pad(row.Heading, headingWidth)+" | "+pad(row.Time, timeWidth)+" |")
	}
	lines = append(lines, rule)
	lines = append(lines, "| "+pad("**Total**", headingWidth)+" | **"+total+"**"+strings.Repeat(" ", timeWidth-width(total))+" |")

	return strings.Join(lines, "\n"), nil
}

// Insert places table before the 0-based line index of doc. An index past
// the end appends.
func Insert(doc *files.Document, index int, table string) {
	doc.Insert(index, strings.Split(table, "\n")...)
}

func width(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
