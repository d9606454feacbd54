package outline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/files"
)

// Writer applies heading operations to documents on disk.
type Writer struct {
	manager *files.Manager
	logger  *zap.Logger
}

// NewWriter wires the dependencies required to rewrite Markdown documents.
func NewWriter(manager *files.Manager, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{manager: manager, logger: logger}
}

// SetStatus rewrites the heading on the 0-based line of path. The returned
// string is the new line.
func (w *Writer) SetStatus(ctx context.Context, path string, line int, status Status) (string, error) {
	doc, err := w.open(path)
	if err != nil {
		return "", err
	}
	current, err := lineAt(doc, line)
	if err != nil {
		return "", err
	}

	updated, ok := SetStatus(current, status)
	if !ok {
		return "", fmt.Errorf("line %d: %w", line+1, ErrHeadingNotFound)
	}
	if updated == current {
		w.logger.Debug("status unchanged", zap.String("path", doc.Path), zap.Int("line", line+1))
		return updated, nil
	}
	if err := doc.SetLine(line, updated); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return updated, w.manager.Save(doc)
}

// Archive moves the subtree owning the 0-based line of path to the end of
// the document's archive file, preceded by its ancestor headings. It returns
// the moved heading and the archive path.
func (w *Writer) Archive(ctx context.Context, path string, line int) (Heading, string, error) {
	doc, err := w.open(path)
	if err != nil {
		return Heading{}, "", err
	}
	heading, err := FindHeading(doc.Lines, line)
	if err != nil {
		return Heading{}, "", err
	}

	archivePath := files.ArchivePath(doc.Path)
	archive, err := w.manager.Open(archivePath)
	if err != nil {
		return Heading{}, "", err
	}

	var block []string
	for _, ancestor := range Ancestors(doc.Lines, heading.Line, heading.Level) {
		block = append(block, ancestor.Render())
	}
	block = append(block, heading.Lines...)
	appendSeparated(archive, block)

	// Destination first: a failed save leaves the source intact.
	if err := ctx.Err(); err != nil {
		return Heading{}, "", err
	}
	if err := w.manager.Save(archive); err != nil {
		return Heading{}, "", err
	}
	if _, err := doc.Remove(heading.Line, heading.End()); err != nil {
		return Heading{}, "", err
	}
	if err := w.manager.Save(doc); err != nil {
		return Heading{}, "", err
	}

	w.logger.Debug("heading archived",
		zap.String("heading", heading.Text),
		zap.String("from", doc.Path),
		zap.String("to", archivePath))
	return heading, archivePath, nil
}

// Promote moves the subtree owning the 0-based line of path under the
// `# incoming` section of the maintain file as a level-2 heading. Nested
// headings are demoted one level. The section is created at the end of the
// maintain file when missing.
func (w *Writer) Promote(ctx context.Context, path string, line int, maintainPath string) (Heading, error) {
	if maintainPath == "" {
		return Heading{}, ErrMaintainPathUnset
	}

	doc, err := w.open(path)
	if err != nil {
		return Heading{}, err
	}
	heading, err := FindHeading(doc.Lines, line)
	if err != nil {
		return Heading{}, err
	}

	maintain, err := w.manager.Open(maintainPath)
	if err != nil {
		return Heading{}, err
	}

	block := append([]string{"## " + heading.Text}, demote(heading.Lines[1:])...)
	if at := findIncoming(maintain.Lines); at >= 0 {
		maintain.Insert(at+1, append(block, "")...)
	} else {
		appendSeparated(maintain, append([]string{"# incoming"}, block...))
	}

	if err := ctx.Err(); err != nil {
		return Heading{}, err
	}
	if err := w.manager.Save(maintain); err != nil {
		return Heading{}, err
	}
	if _, err := doc.Remove(heading.Line, heading.End()); err != nil {
		return Heading{}, err
	}
	if err := w.manager.Save(doc); err != nil {
		return Heading{}, err
	}

	w.logger.Debug("heading promoted",
		zap.String("heading", heading.Text),
		zap.String("from", doc.Path),
		zap.String("to", maintain.Path))
	return heading, nil
}

func (w *Writer) open(path string) (*files.Document, error) {
	if w == nil || w.manager == nil {
		return nil, errors.New("writer not initialized with file manager")
	}
	return w.manager.Open(path)
}

func lineAt(doc *files.Document, line int) (string, error) {
	text, err := doc.Line(line)
	if errors.Is(err, files.ErrLineOutOfRange) {
		return "", fmt.Errorf("line %d of %d: %w", line+1, len(doc.Lines), ErrLineOutOfRange)
	}
	return text, err
}

// appendSeparated adds block at the end of doc, keeping one blank line
// between it and existing text.
func appendSeparated(doc *files.Document, block []string) {
	if n := len(doc.Lines); n > 0 && doc.Lines[n-1] != "" {
		doc.Insert(n, "")
	}
	doc.Insert(len(doc.Lines), block...)
}
