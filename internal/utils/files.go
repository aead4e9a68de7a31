package utils

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// FindTetFiles recursively finds all .tet files in the specified
// directory, in deterministic path order.
func FindTetFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories
		if d.IsDir() {
			return nil
		}

		if filepath.Ext(path) == ".tet" {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
