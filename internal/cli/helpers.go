package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePath resolves a post path argument to an absolute path, expanding ~/.
func resolvePath(arg string) string {
	if strings.HasPrefix(arg, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			arg = filepath.Join(home, arg[2:])
		}
	}
	if abs, err := filepath.Abs(arg); err == nil {
		return abs
	}
	return arg
}

// markdownPath swaps the extension of a post file for .md
func markdownPath(postPath string) string {
	return strings.TrimSuffix(postPath, filepath.Ext(postPath)) + ".md"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
