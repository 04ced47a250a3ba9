package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so no real config file is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BLOGCREATOR_DOCS_DIR", "")
	t.Setenv("BLOGCREATOR_CODE_THEME", "")
	return home
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DocumentsDir != filepath.Join(home, "Documents") {
		t.Errorf("expected documents dir under home, got %q", cfg.DocumentsDir)
	}
	if cfg.CodeTheme != "monokai" {
		t.Errorf("expected default theme 'monokai', got %q", cfg.CodeTheme)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("expected no fetch timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.DefaultTab != "content" {
		t.Errorf("expected default tab 'content', got %q", cfg.DefaultTab)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "blogcreator")
	os.MkdirAll(dir, 0755)
	os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{
		"documents_dir": "~/blog/posts",
		"code_theme": "dracula",
		"fetch_timeout_seconds": 5,
		"default_tab": "meta"
	}`), 0644)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DocumentsDir != filepath.Join(home, "blog", "posts") {
		t.Errorf("expected expanded documents dir, got %q", cfg.DocumentsDir)
	}
	if cfg.CodeTheme != "dracula" {
		t.Errorf("expected dracula, got %q", cfg.CodeTheme)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.FetchTimeout)
	}
	if cfg.DefaultTab != "meta" {
		t.Errorf("expected meta tab, got %q", cfg.DefaultTab)
	}
}

func TestLoad_EnvVar(t *testing.T) {
	isolate(t)
	t.Setenv("BLOGCREATOR_DOCS_DIR", "/tmp/env-posts")
	t.Setenv("BLOGCREATOR_CODE_THEME", "github")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DocumentsDir != "/tmp/env-posts" {
		t.Errorf("expected /tmp/env-posts, got %q", cfg.DocumentsDir)
	}
	if cfg.CodeTheme != "github" {
		t.Errorf("expected github, got %q", cfg.CodeTheme)
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("BLOGCREATOR_DOCS_DIR", "/tmp/env-posts")

	cfg, err := Load(CLIFlags{DocumentsDir: "/tmp/cli-posts", CodeTheme: "vim"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.DocumentsDir != "/tmp/cli-posts" {
		t.Errorf("expected /tmp/cli-posts, got %q", cfg.DocumentsDir)
	}
	if cfg.CodeTheme != "vim" {
		t.Errorf("expected vim, got %q", cfg.CodeTheme)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "blogcreator", "config.json")
	settings, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("expected readable config file: %v", err)
	}
	if settings.DocumentsDir != "~/Documents" || settings.CodeTheme != "monokai" {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	// Existing files are left alone
	os.WriteFile(path, []byte(`{"code_theme":"vim"}`), 0644)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	settings, _ = loadConfigFile(path)
	if settings.CodeTheme != "vim" {
		t.Errorf("expected existing file kept, got %+v", settings)
	}
}
