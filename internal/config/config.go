package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/favbackup/bookmark-backup/internal/models"
)

// FileName is the name of the config file inside the backup root.
const FileName = "config.json"

// BackupConfig holds the per-browser enable flags. It is persisted as
// a small JSON file in the backup root.
type BackupConfig struct {
	BackupChrome  bool `json:"backup_chrome"`
	BackupEdge    bool `json:"backup_edge"`
	BackupFirefox bool `json:"backup_firefox"`
}

// Default returns the default configuration with every browser enabled.
func Default() BackupConfig {
	return BackupConfig{
		BackupChrome:  true,
		BackupEdge:    true,
		BackupFirefox: true,
	}
}

// Enabled reports whether backups are enabled for the given browser.
func (c BackupConfig) Enabled(b models.Browser) bool {
	switch b {
	case models.BrowserChrome:
		return c.BackupChrome
	case models.BrowserEdge:
		return c.BackupEdge
	case models.BrowserFirefox:
		return c.BackupFirefox
	}
	return false
}

// Load reads the config file from the backup root. A missing or
// malformed file yields the defaults, never an error.
func Load(backupDir string) BackupConfig {
	cfg := Default()

	content, err := os.ReadFile(filepath.Join(backupDir, FileName))
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(content, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config file into the backup root.
func Save(backupDir string, cfg BackupConfig) error {
	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(backupDir, FileName), content, 0644)
}
