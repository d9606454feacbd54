package outline

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`^(#+)\s+(.+)$`)
	boundaryPattern = regexp.MustCompile(`^(#+)\s+`)
	statusPattern   = regexp.MustCompile(`^(#+)\s+(?:(?:TODO|DONE)\s*)?(\[#[A-Z]\]\s*)?(.+)$`)
	incomingPattern = regexp.MustCompile(`(?i)^#\s+incoming$`)
)

// ParseHeading reports the level and text of an ATX heading line.
func ParseHeading(line string) (int, string, bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// SetStatus rewrites a heading line as `<hashes> <status> [#P] <title>`,
// replacing any existing TODO/DONE keyword and keeping a leading priority
// cookie. Lines that are not headings are returned unchanged with ok false.
func SetStatus(line string, status Status) (string, bool) {
	m := statusPattern.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}

	var b strings.Builder
	b.WriteString(m[1])
	b.WriteByte(' ')
	b.WriteString(string(status))
	b.WriteByte(' ')
	if priority := strings.TrimSpace(m[2]); priority != "" {
		b.WriteString(priority)
		b.WriteByte(' ')
	}
	b.WriteString(m[3])
	return b.String(), true
}

// FindHeading returns the nearest heading at or above index together with
// its subtree.
func FindHeading(lines []string, index int) (Heading, error) {
	if index < 0 || index >= len(lines) {
		return Heading{}, fmt.Errorf("line %d of %d: %w", index+1, len(lines), ErrLineOutOfRange)
	}

	for i := index; i >= 0; i-- {
		level, text, ok := ParseHeading(lines[i])
		if !ok {
			continue
		}
		return Heading{
			Level: level,
			Text:  text,
			Line:  i,
			Lines: subtree(lines, i, level),
		}, nil
	}
	return Heading{}, ErrHeadingNotFound
}

func subtree(lines []string, start, level int) []string {
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if m := boundaryPattern.FindStringSubmatch(lines[i]); m != nil && len(m[1]) <= level {
			end = i
			break
		}
	}
	return append([]string(nil), lines[start:end]...)
}

// Ancestors walks upward from index and returns the headings enclosing a
// heading of the given level, outermost first. Only heading lines are kept.
func Ancestors(lines []string, index, level int) []Heading {
	var chain []Heading
	current := level
	for i := index - 1; i >= 0 && current > 1; i-- {
		l, text, ok := ParseHeading(lines[i])
		if !ok || l >= current {
			continue
		}
		chain = append([]Heading{{Level: l, Text: text, Line: i, Lines: []string{lines[i]}}}, chain...)
		current = l
	}
	return chain
}

// demote pushes every heading in body one level deeper.
func demote(body []string) []string {
	out := make([]string, len(body))
	for i, line := range body {
		if level, text, ok := ParseHeading(line); ok {
			line = strings.Repeat("#", level+1) + " " + text
		}
		out[i] = line
	}
	return out
}

func findIncoming(lines []string) int {
	for i, line := range lines {
		if incomingPattern.MatchString(line) {
			return i
		}
	}
	return -1
}
