package backup

import (
	"log/slog"
	"time"
)

// Schedule starts a background goroutine that runs a full backup every
// interval, for the lifetime of the process. An in-flight backup
// always runs to completion; interactive operations on the same
// Manager wait on its lock in the meantime.
func Schedule(m *Manager, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			results := m.BackupAll()
			ok := 0
			for _, r := range results {
				if r.Success {
					ok++
				} else {
					slog.Warn("scheduled backup failed", "browser", r.Browser, "message", r.Message)
				}
			}
			slog.Info("scheduled backup finished", "succeeded", ok, "total", len(results))
		}
	}()
}
