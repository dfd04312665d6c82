package commands

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
	"github.com/favbackup/bookmark-backup/internal/models"
)

// RestoreCommand copies a chosen backup over the live bookmark store.
type RestoreCommand struct {
	manager *backup.Manager
}

// NewRestoreCommand creates a new restore command
func NewRestoreCommand(manager *backup.Manager) *RestoreCommand {
	return &RestoreCommand{manager: manager}
}

// Execute restores backupPath for the given browser.
func (c *RestoreCommand) Execute(browser models.Browser, backupPath string) error {
	message, err := c.manager.Restore(browser, backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	fmt.Println(message)
	return nil
}
