// Package backup manages the backup set on disk: creating timestamped
// copies of browser bookmark stores, listing and pruning them,
// restoring a chosen copy and exporting the set as ZIP or HTML.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/favbackup/bookmark-backup/internal/bookmarks"
	"github.com/favbackup/bookmark-backup/internal/browser"
	"github.com/favbackup/bookmark-backup/internal/config"
	"github.com/favbackup/bookmark-backup/internal/models"
)

// backup filenames are bookmarks_<timestamp>.<ext>; one-second
// granularity, so two backups within the same second overwrite each
// other. Accepted limitation.
const timestampLayout = "20060102_150405"

// Manager owns the backup root directory and its configuration. All
// exported methods serialize on one mutex: the scheduler and the
// interactive surface share a single Manager and never run two
// operations concurrently.
type Manager struct {
	mu  sync.Mutex
	dir string
	cfg config.BackupConfig

	// indirection for tests; default to the real resolvers and clock
	sourcePath func(models.Browser) (string, error)
	now        func() time.Time
}

// NewManager creates the backup root if needed and loads its config.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	return &Manager{
		dir:        dir,
		cfg:        config.Load(dir),
		sourcePath: browser.SourcePath,
		now:        time.Now,
	}, nil
}

// Dir returns the backup root directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Config returns the current configuration.
func (m *Manager) Config() config.BackupConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// SetConfig replaces the configuration and persists it.
func (m *Manager) SetConfig(cfg config.BackupConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	return config.Save(m.dir, cfg)
}

// BackupAll copies the bookmark store of every enabled browser into
// its backup subdirectory. One result per enabled browser; a missing
// source or failed copy yields a failure result, never an error.
func (m *Manager) BackupAll() []models.BackupResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	var results []models.BackupResult
	for _, b := range models.Browsers() {
		if !m.cfg.Enabled(b) {
			continue
		}
		results = append(results, m.backupBrowser(b))
	}
	return results
}

func (m *Manager) backupBrowser(b models.Browser) models.BackupResult {
	source, err := m.sourcePath(b)
	if err != nil {
		if errors.Is(err, browser.ErrProfileNotFound) {
			return models.BackupResult{Browser: b, Success: false, Message: "Firefox profile not found"}
		}
		return models.BackupResult{Browser: b, Success: false, Message: err.Error()}
	}
	if _, err := os.Stat(source); err != nil {
		return models.BackupResult{Browser: b, Success: false, Message: "bookmarks file not found"}
	}

	browserDir := filepath.Join(m.dir, string(b))
	if err := os.MkdirAll(browserDir, 0755); err != nil {
		return models.BackupResult{Browser: b, Success: false, Message: fmt.Sprintf("error: %v", err)}
	}

	name := fmt.Sprintf("bookmarks_%s.%s", m.now().Format(timestampLayout), b.Ext())
	if err := copyFile(source, filepath.Join(browserDir, name)); err != nil {
		return models.BackupResult{Browser: b, Success: false, Message: fmt.Sprintf("error: %v", err)}
	}
	return models.BackupResult{Browser: b, Success: true, Message: "saved: " + name}
}

// List returns the backup slots of a browser, most recent first.
// Unreadable entries are skipped rather than failing the listing.
func (m *Manager) List(b models.Browser) []models.BackupFile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list(b)
}

func (m *Manager) list(b models.Browser) []models.BackupFile {
	browserDir := filepath.Join(m.dir, string(b))
	entries, err := os.ReadDir(browserDir)
	if err != nil {
		return nil
	}

	var backups []models.BackupFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, models.BackupFile{
			Name: e.Name(),
			Path: filepath.Join(browserDir, e.Name()),
			Date: info.ModTime(),
			Size: info.Size(),
		})
	}
	sort.Slice(backups, func(i, j int) bool { return backups[i].Date.After(backups[j].Date) })
	return backups
}

// Cleanup deletes every backup file across all browsers whose
// modification time is strictly older than keepDays before now, and
// returns the number of files removed. Per-file failures are skipped.
func (m *Manager) Cleanup(keepDays int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().AddDate(0, 0, -keepDays)
	deleted := 0
	for _, b := range models.Browsers() {
		browserDir := filepath.Join(m.dir, string(b))
		entries, err := os.ReadDir(browserDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			info, err := e.Info()
			if err != nil || info.IsDir() {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if os.Remove(filepath.Join(browserDir, e.Name())) == nil {
					deleted++
				}
			}
		}
	}
	return deleted
}

// Restore copies a chosen backup over the browser's live bookmark
// store. An existing live file is first copied to a .bak sibling (one
// slot, overwritten by a repeated restore). Returns a user-facing
// message on success.
func (m *Manager) Restore(b models.Browser, backupPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, err := m.sourcePath(b)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(target); err == nil {
		if err := copyFile(target, target+".bak"); err != nil {
			return "", fmt.Errorf("save current file: %w", err)
		}
	}

	if err := copyFile(backupPath, target); err != nil {
		return "", fmt.Errorf("restore backup: %w", err)
	}

	message := fmt.Sprintf("%s bookmarks restored successfully", b)
	if b == models.BrowserFirefox {
		// Firefox holds places.sqlite open while running
		message += "\n(Firefox must be restarted)"
	}
	return message, nil
}

// ExportHTML renders the newest backup of a browser as a standalone
// HTML document at dest.
func (m *Manager) ExportHTML(b models.Browser, dest string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	backups := m.list(b)
	if len(backups) == 0 {
		return fmt.Errorf("no backup found for %s", b)
	}
	latest := backups[0]

	var roots []models.BookmarkNode
	switch {
	case strings.HasSuffix(latest.Name, ".sqlite"):
		rows, err := bookmarks.ReadPlaces(latest.Path)
		if err != nil {
			return err
		}
		roots = bookmarks.BuildFromRows(rows)
	default:
		var err error
		roots, err = bookmarks.ReadJSONFile(latest.Path)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(dest, []byte(bookmarks.RenderHTML(roots)), 0644); err != nil {
		return fmt.Errorf("write html export: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
