// Package config loads mdorg settings from .mdorg.yaml, the environment and
// an optional .env file.
package config

import (
	"path/filepath"
	"strings"
)

// Setting keys as they appear in .mdorg.yaml.
const (
	KeyWorkspaceDir     = "workspaceDir"
	KeyExtractorPath    = "extractorPath"
	KeyMaintainFilePath = "maintainFilePath"
	KeyLocale           = "locale"
	KeyLogLevel         = "logLevel"
	KeyFileTags         = "fileTags"
	KeyCurrentTag       = "currentTag"
)

const (
	DefaultExtractorPath = "markdown-org-extract"
	DefaultLocale        = "ru"
	DefaultLogLevel      = "warn"
	DefaultTag           = "ALL"
)

// FileTag narrows the workspace to files whose name contains Pattern.
type FileTag struct {
	Name    string `mapstructure:"name" validate:"required"`
	Pattern string `mapstructure:"pattern"`
}

// Match reports whether the file at path belongs to the tag. An empty
// pattern matches every file; otherwise the base name must contain the
// pattern, ignoring case.
func (t FileTag) Match(path string) bool {
	if t.Pattern == "" {
		return true
	}
	return strings.Contains(strings.ToLower(filepath.Base(path)), strings.ToLower(t.Pattern))
}

// Config is the decoded, validated settings snapshot.
type Config struct {
	WorkspaceDir     string    `mapstructure:"workspaceDir" validate:"required"`
	ExtractorPath    string    `mapstructure:"extractorPath" validate:"required"`
	MaintainFilePath string    `mapstructure:"maintainFilePath"`
	Locale           string    `mapstructure:"locale" validate:"required,locale"`
	LogLevel         string    `mapstructure:"logLevel" validate:"oneof=debug info warn error"`
	FileTags         []FileTag `mapstructure:"fileTags" validate:"min=1,dive"`
	CurrentTag       string    `mapstructure:"currentTag" validate:"required"`
}

// Tag returns the active file tag.
func (c Config) Tag() (FileTag, error) {
	for _, tag := range c.FileTags {
		if tag.Name == c.CurrentTag {
			return tag, nil
		}
	}
	return FileTag{}, ErrUnknownTag
}

// NextTag returns the name following the active tag in FileTags, wrapping
// at the end. An unknown active tag restarts the cycle at the first entry.
func (c Config) NextTag() string {
	if len(c.FileTags) == 0 {
		return c.CurrentTag
	}
	for i, tag := range c.FileTags {
		if tag.Name == c.CurrentTag {
			return c.FileTags[(i+1)%len(c.FileTags)].Name
		}
	}
	return c.FileTags[0].Name
}

// FilterFiles keeps the paths matching the active tag.
func (c Config) FilterFiles(paths []string) ([]string, error) {
	tag, err := c.Tag()
	if err != nil {
		return nil, err
	}
	var kept []string
	for _, p := range paths {
		if tag.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
