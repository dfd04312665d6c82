package commands

import (
	"fmt"

	"github.com/favbackup/bookmark-backup/internal/backup"
	"github.com/favbackup/bookmark-backup/internal/models"
)

// ExportZipCommand packs the whole backup set into a ZIP archive.
type ExportZipCommand struct {
	manager *backup.Manager
}

// NewExportZipCommand creates a new ZIP export command
func NewExportZipCommand(manager *backup.Manager) *ExportZipCommand {
	return &ExportZipCommand{manager: manager}
}

// Execute writes the archive to destPath. A non-empty password
// produces an encrypted archive.
func (c *ExportZipCommand) Execute(destPath, password string) error {
	if err := c.manager.ExportZip(destPath, password); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported backups to %s\n", destPath)
	return nil
}

// ExportHTMLCommand renders a browser's newest backup as HTML.
type ExportHTMLCommand struct {
	manager *backup.Manager
}

// NewExportHTMLCommand creates a new HTML export command
func NewExportHTMLCommand(manager *backup.Manager) *ExportHTMLCommand {
	return &ExportHTMLCommand{manager: manager}
}

// Execute renders the newest backup of the given browser to destPath.
func (c *ExportHTMLCommand) Execute(browser models.Browser, destPath string) error {
	if err := c.manager.ExportHTML(browser, destPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Printf("Exported %s bookmarks to %s\n", browser, destPath)
	return nil
}
