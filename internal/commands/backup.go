// Package commands implements the one-shot CLI operations. Each
// command wraps the shared backup manager and prints its outcome to
// stdout.
package commands

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
)

// BackupCommand runs a full backup of every enabled browser.
type BackupCommand struct {
	manager *backup.Manager
}

// NewBackupCommand creates a new backup command
func NewBackupCommand(manager *backup.Manager) *BackupCommand {
	return &BackupCommand{manager: manager}
}

// Execute backs up all enabled browsers and reports per-browser results.
func (c *BackupCommand) Execute() error {
	results := c.manager.BackupAll()

	succeeded := 0
	for _, r := range results {
		status := "FAILED"
		if r.Success {
			status = "OK"
			succeeded++
		}
		fmt.Printf("%-8s %s  %s\n", r.Browser, status, r.Message)
	}
	fmt.Printf("Backup finished: %d of %d succeeded.\n", succeeded, len(results))
	return nil
}
