package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the settings file looked up in the working directory.
const DefaultFileName = "settings.json"

var (
	// ErrEmpty means the settings file has no content at all.
	ErrEmpty = errors.New("unexpected end of input, possibly an empty file")
	// ErrSyntax means the settings file could not be parsed.
	ErrSyntax = errors.New("invalid settings syntax")
	// ErrRootNotObject means the document root is not an object. The file must
	// start and end with curly brackets even if it holds no settings.
	ErrRootNotObject = errors.New("settings root must be an object")
)

// LoadFile reads and parses a settings file. The format is picked from the
// extension: .yaml and .yml are YAML, anything else is JSON (comments allowed).
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var tree *Tree

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		tree, err = ParseYAML(data)
	default:
		tree, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return tree, nil
}
