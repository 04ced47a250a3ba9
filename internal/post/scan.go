package post

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

const maxScanDepth = 3

// List returns the .json files under dir, at most three directories deep.
// Hidden directories are skipped. Paths are sorted.
func List(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}

		if d.IsDir() {
			if path == dir {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			rel, _ := filepath.Rel(dir, path)
			if strings.Count(rel, string(filepath.Separator))+1 >= maxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(filepath.Ext(path), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
