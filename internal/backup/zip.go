package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexmullins/zip"

	"github.com/favbackup/bookmark-backup/internal/models"
)

// ExportZip writes every backup file into a ZIP archive at dest under
// a <Browser>/<filename> entry path, deflate-compressed. A non-empty
// password produces an encrypted archive. Any create or read failure
// aborts the export; a partial archive is left for the caller to
// discard.
func (m *Manager) ExportZip(dest, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create zip file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, b := range models.Browsers() {
		browserDir := filepath.Join(m.dir, string(b))
		entries, err := os.ReadDir(browserDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := fmt.Sprintf("%s/%s", b, e.Name())

			var w io.Writer
			if password != "" {
				w, err = zw.Encrypt(name, password)
			} else {
				w, err = zw.Create(name)
			}
			if err != nil {
				return fmt.Errorf("create zip entry %s: %w", name, err)
			}

			src, err := os.Open(filepath.Join(browserDir, e.Name()))
			if err != nil {
				return fmt.Errorf("read %s: %w", e.Name(), err)
			}
			_, err = io.Copy(w, src)
			src.Close()
			if err != nil {
				return fmt.Errorf("write zip entry %s: %w", name, err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize zip file: %w", err)
	}
	return nil
}
