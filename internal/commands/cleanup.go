package commands

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
)

// CleanupCommand deletes backups older than the retention window.
type CleanupCommand struct {
	manager *backup.Manager
}

// NewCleanupCommand creates a new cleanup command
func NewCleanupCommand(manager *backup.Manager) *CleanupCommand {
	return &CleanupCommand{manager: manager}
}

// Execute removes backups older than keepDays days.
func (c *CleanupCommand) Execute(keepDays int) error {
	if keepDays <= 0 {
		return fmt.Errorf("retention must be a positive number of days, got %d", keepDays)
	}
	deleted := c.manager.Cleanup(keepDays)
	fmt.Printf("Deleted %d backup file(s) older than %d days.\n", deleted, keepDays)
	return nil
}
