package commands

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
	"github.com/favbackup/bookmark-backup/internal/models"
)

// ListCommand prints the backup slots of a browser, newest first.
type ListCommand struct {
	manager *backup.Manager
}

// NewListCommand creates a new list command
func NewListCommand(manager *backup.Manager) *ListCommand {
	return &ListCommand{manager: manager}
}

// Execute lists all backups of the given browser.
func (c *ListCommand) Execute(browser models.Browser) error {
	backups := c.manager.List(browser)
	if len(backups) == 0 {
		fmt.Printf("No backups found for %s.\n", browser)
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Date.Format("2006-01-02 15:04:05"), b.Name, b.Size)
	}
	return nil
}
