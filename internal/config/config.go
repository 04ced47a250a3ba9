package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultCodeTheme = "monokai"
	defaultTab       = "content"
)

// Config holds the unified application configuration
type Config struct {
	DocumentsDir string        `json:"documents_dir"`
	CodeTheme    string        `json:"code_theme"`
	FetchTimeout time.Duration `json:"-"`
	DefaultTab   string        `json:"default_tab"`
}

// Settings represents the config file structure
type Settings struct {
	DocumentsDir        string `json:"documents_dir,omitempty"`
	CodeTheme           string `json:"code_theme,omitempty"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds,omitempty"`
	DefaultTab          string `json:"default_tab,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DocumentsDir string
	CodeTheme    string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		CodeTheme:  defaultCodeTheme,
		DefaultTab: defaultTab,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DocumentsDir != "" {
				cfg.DocumentsDir = expandPath(fileConfig.DocumentsDir)
			}
			if fileConfig.CodeTheme != "" {
				cfg.CodeTheme = fileConfig.CodeTheme
			}
			if fileConfig.FetchTimeoutSeconds > 0 {
				cfg.FetchTimeout = time.Duration(fileConfig.FetchTimeoutSeconds) * time.Second
			}
			if fileConfig.DefaultTab != "" {
				cfg.DefaultTab = fileConfig.DefaultTab
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envDir := os.Getenv("BLOGCREATOR_DOCS_DIR"); envDir != "" {
		cfg.DocumentsDir = expandPath(envDir)
	}
	if envTheme := os.Getenv("BLOGCREATOR_CODE_THEME"); envTheme != "" {
		cfg.CodeTheme = envTheme
	}

	// Priority 1: CLI flags override everything
	if flags.DocumentsDir != "" {
		cfg.DocumentsDir = expandPath(flags.DocumentsDir)
	}
	if flags.CodeTheme != "" {
		cfg.CodeTheme = flags.CodeTheme
	}

	// Default directory if nothing configured
	if cfg.DocumentsDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DocumentsDir = defaultDir
	}

	return cfg, nil
}

// GetDefaultDir returns the user's documents folder
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Documents"), nil
}

// GetConfigDir returns the directory holding config.json and debug.log
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "blogcreator"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		DocumentsDir: "~/Documents",
		CodeTheme:    defaultCodeTheme,
		DefaultTab:   defaultTab,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
