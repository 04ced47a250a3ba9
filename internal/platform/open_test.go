package platform

import (
	"path/filepath"
	"testing"
)

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos    string
		program string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
	}

	for _, tt := range tests {
		cmd, err := openCommand(tt.goos, "https://example.com")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.goos, err)
		}
		if filepath.Base(cmd.Args[0]) != tt.program {
			t.Errorf("%s: expected %s, got %s", tt.goos, tt.program, cmd.Args[0])
		}
		if cmd.Args[len(cmd.Args)-1] != "https://example.com" {
			t.Errorf("%s: expected url as last argument, got %v", tt.goos, cmd.Args)
		}
	}

	if _, err := openCommand("plan9", "https://example.com"); err == nil {
		t.Error("expected error for unsupported platform")
	}
}
