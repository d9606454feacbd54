package files

import (
	"fmt"
	"strings"
)

// Document is a Markdown file held as lines. It remembers the line ending
// and whether the file ended with one so an untouched line round-trips.
type Document struct {
	Path  string
	Lines []string

	newline      string
	finalNewline bool
}

// NewDocument builds an in-memory document from raw text.
func NewDocument(path, content string) *Document {
	return parseDocument(path, content)
}

func parseDocument(path, content string) *Document {
	doc := &Document{Path: path, newline: "\n"}
	if strings.Contains(content, "\r\n") {
		doc.newline = "\r\n"
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}
	if content == "" {
		doc.finalNewline = true
		return doc
	}

	lines := strings.Split(content, "\n")
	// Split leaves a trailing empty element when the input ends with a newline.
	if lines[len(lines)-1] == "" {
		doc.finalNewline = true
		lines = lines[:len(lines)-1]
	}
	doc.Lines = lines
	return doc
}

// Line returns the line at the 0-based index.
func (d *Document) Line(index int) (string, error) {
	if index < 0 || index >= len(d.Lines) {
		return "", fmt.Errorf("line %d of %d: %w", index+1, len(d.Lines), ErrLineOutOfRange)
	}
	return d.Lines[index], nil
}

// SetLine replaces the line at the 0-based index.
func (d *Document) SetLine(index int, text string) error {
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("line %d of %d: %w", index+1, len(d.Lines), ErrLineOutOfRange)
	}
	d.Lines[index] = text
	return nil
}

// Insert places lines before the 0-based index; an index past the end appends.
func (d *Document) Insert(index int, lines ...string) {
	if index < 0 || index > len(d.Lines) {
		index = len(d.Lines)
	}
	out := make([]string, 0, len(d.Lines)+len(lines))
	out = append(out, d.Lines[:index]...)
	out = append(out, lines...)
	out = append(out, d.Lines[index:]...)
	d.Lines = out
}

// Remove deletes lines [start, end) and returns them.
func (d *Document) Remove(start, end int) ([]string, error) {
	if start < 0 || end > len(d.Lines) || start > end {
		return nil, fmt.Errorf("lines %d-%d of %d: %w", start+1, end, len(d.Lines), ErrLineOutOfRange)
	}
	removed := append([]string(nil), d.Lines[start:end]...)
	d.Lines = append(d.Lines[:start], d.Lines[end:]...)
	return removed, nil
}

// Empty reports whether the document has no text.
func (d *Document) Empty() bool {
	return len(d.Lines) == 0
}

// String renders the document with its original line ending.
func (d *Document) String() string {
	if len(d.Lines) == 0 {
		return ""
	}
	content := strings.Join(d.Lines, d.newline)
	if d.finalNewline {
		content += d.newline
	}
	return content
}
