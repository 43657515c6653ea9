package schema

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadDir loads every .quops file directly inside dir (not recursing
// into subdirectories) as a top-level schema, resolving dependencies
// against files in the same directory. It lets every schema in a
// directory be checked in one pass without requiring each one to be
// reachable from an annotated Go type. The quopsgen "validate" command
// does not call it; that command scans Go packages for directives.
func LoadDir(dir string) (map[string]Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newParseError(dir, "", err.Error())
	}

	l := NewLoader()
	out := make(map[string]Schema)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".quops") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".quops")
		s, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}
