package files

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// DefaultDirName defines the workspace folder under the user's home directory.
	DefaultDirName = "org"
)

// ResolveBasePath determines the Markdown workspace, defaulting to ~/org.
// The location can be overridden by exporting MDORG_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("MDORG_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandPath(override)
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return homedir.Expand(input)
}
