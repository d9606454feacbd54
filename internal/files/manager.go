package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// ArchiveSuffix is appended to a document path to name its archive.
	ArchiveSuffix = ".archive.md"
)

// Manager centralizes where Markdown documents live on disk and how they are
// read and rewritten.
type Manager struct {
	basePath string
	logger   *zap.Logger
}

// NewManager constructs a Manager rooted at the provided workspace. If basePath
// is empty, it falls back to ~/org (or another location determined by
// ResolveBasePath).
func NewManager(basePath string, logger *zap.Logger) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandPath(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Manager{basePath: abs, logger: logger}, nil
}

// BasePath returns the workspace root.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Resolve expands ~ and makes path absolute. Relative paths are taken from
// the working directory, the same way a shell would.
func (m *Manager) Resolve(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// ArchivePath names the archive file that collects subtrees moved out of doc.
func ArchivePath(doc string) string {
	return doc + ArchiveSuffix
}

// MarkdownFiles lists every .md file under the workspace, sorted. Hidden
// directories and archive files are skipped.
func (m *Manager) MarkdownFiles() ([]string, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	var found []string
	err := filepath.WalkDir(m.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != m.basePath && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, ArchiveSuffix) || !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk workspace: %w", err)
	}

	sort.Strings(found)
	return found, nil
}

// Open reads the document at path. A missing file yields an empty document
// that Save will create.
func (m *Manager) Open(path string) (*Document, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	abs, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Document{Path: abs, newline: "\n", finalNewline: true}, nil
		}
		return nil, fmt.Errorf("read %s: %w", abs, err)
	}
	return parseDocument(abs, string(data)), nil
}

// Save writes doc back to disk atomically, creating parent directories.
func (m *Manager) Save(doc *Document) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(filepath.Dir(doc.Path), dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := writeAtomic(doc.Path, doc.String()); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	m.logger.Debug("document saved", zap.String("path", doc.Path), zap.Int("lines", len(doc.Lines)))
	return nil
}

func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, ".mdorg-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := fs.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
