package outline

import "strings"

// Heading is an ATX heading together with the subtree it owns.
type Heading struct {
	Level int
	// Text is everything after the hashes, status keywords included.
	Text string
	// Line is the 0-based index of the heading line.
	Line int
	// Lines holds the heading line followed by its body, up to the next
	// heading of the same or a shallower level.
	Lines []string
}

// End returns the index one past the last line of the subtree.
func (h Heading) End() int {
	return h.Line + len(h.Lines)
}

// Render writes the heading line back out from Level and Text.
func (h Heading) Render() string {
	return strings.Repeat("#", h.Level) + " " + h.Text
}

// Status is a task keyword written after the heading hashes.
type Status string

const (
	// StatusTodo marks headings that still need doing.
	StatusTodo Status = "TODO"
	// StatusDone marks headings that are completed.
	StatusDone Status = "DONE"
)

// ParseStatus accepts "todo"/"done" in any case.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StatusTodo):
		return StatusTodo, true
	case string(StatusDone):
		return StatusDone, true
	default:
		return "", false
	}
}
