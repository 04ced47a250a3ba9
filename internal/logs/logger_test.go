package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	Logger.Printf("hello from test")

	content, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !strings.Contains(string(content), "[blogcreator] ") || !strings.Contains(string(content), "hello from test") {
		t.Errorf("unexpected log content: %q", content)
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
