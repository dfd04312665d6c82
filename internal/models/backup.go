package models

import "time"

// Browser identifies a supported browser. The string value doubles as
// the name of the browser's subdirectory under the backup root.
type Browser string

const (
	BrowserChrome  Browser = "Chrome"
	BrowserEdge    Browser = "Edge"
	BrowserFirefox Browser = "Firefox"
)

// Browsers returns all supported browsers in a fixed order.
func Browsers() []Browser {
	return []Browser{BrowserChrome, BrowserEdge, BrowserFirefox}
}

// Ext returns the file extension used for this browser's backups.
func (b Browser) Ext() string {
	if b == BrowserFirefox {
		return "sqlite"
	}
	return "json"
}

// BackupFile describes one backup slot on disk. Immutable once written.
type BackupFile struct {
	Name string
	Path string
	Date time.Time
	Size int64
}

// BackupResult reports the outcome of backing up a single browser.
// Never persisted.
type BackupResult struct {
	Browser Browser
	Success bool
	Message string
}
