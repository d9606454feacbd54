package clocktable

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// DefaultExtractor is looked up on PATH when no extractor path is configured.
const DefaultExtractor = "markdown-org-extract"

// Extractor lists the tasks of a Markdown file.
type Extractor interface {
	Tasks(ctx context.Context, file string) ([]Task, error)
}

// ExtractorError reports an extractor that could not start or exited
// non-zero, with whatever it wrote to stderr.
type ExtractorError struct {
	Path   string
	Err    error
	Stderr string
}

func (e *ExtractorError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Path, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExtractorError) Unwrap() error {
	return e.Err
}

// CommandExtractor runs the extractor binary once per request.
type CommandExtractor struct {
	Path   string
	Logger *zap.Logger
}

// Args returns the extractor command line for file.
func Args(file string) []string {
	return []string{
		"--dir", filepath.Dir(file),
		"--glob", filepath.Base(file),
		"--format", "json",
		"--tasks",
	}
}

// Tasks runs the extractor against the directory of file, restricted to file
// itself, and decodes its JSON report.
func (c *CommandExtractor) Tasks(ctx context.Context, file string) ([]Task, error) {
	path := c.Path
	if path == "" {
		path = DefaultExtractor
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	args := Args(file)
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	logger.Debug("extractor finished",
		zap.String("path", path),
		zap.Strings("args", args),
		zap.Duration("elapsed", time.Since(started)),
		zap.Error(err))
	if err != nil {
		return nil, &ExtractorError{Path: path, Err: err, Stderr: stderr.String()}
	}

	var tasks []Task
	if err := json.Unmarshal(stdout.Bytes(), &tasks); err != nil {
		return nil, fmt.Errorf("decode extractor output: %w", err)
	}
	return tasks, nil
}
