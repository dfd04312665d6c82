package browser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/favbackup/bookmark-backup/internal/models"
)

func TestPlacesPath(t *testing.T) {
	profiles := t.TempDir()
	for _, dir := range []string{"a1b2c3.default", "d4e5f6.default-release", "g7h8i9.dev-edition-default"} {
		if err := os.Mkdir(filepath.Join(profiles, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// a stray file with the suffix must not match
	if err := os.WriteFile(filepath.Join(profiles, "file.default-release"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	path, err := PlacesPath(profiles)
	if err != nil {
		t.Fatalf("PlacesPath failed: %v", err)
	}
	want := filepath.Join(profiles, "d4e5f6.default-release", "places.sqlite")
	if path != want {
		t.Errorf("got %s, want %s", path, want)
	}
}

func TestPlacesPathNoReleaseProfile(t *testing.T) {
	profiles := t.TempDir()
	if err := os.Mkdir(filepath.Join(profiles, "a1b2c3.default"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := PlacesPath(profiles)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestPlacesPathMissingDir(t *testing.T) {
	_, err := PlacesPath(filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSourcePathChromium(t *testing.T) {
	for _, b := range []models.Browser{models.BrowserChrome, models.BrowserEdge} {
		path, err := SourcePath(b)
		if err != nil {
			t.Fatalf("SourcePath(%s) failed: %v", b, err)
		}
		if filepath.Base(path) != "Bookmarks" {
			t.Errorf("%s: expected a Bookmarks file, got %s", b, path)
		}
		if !strings.Contains(path, string(os.PathSeparator)) {
			t.Errorf("%s: suspicious path %s", b, path)
		}
	}
}

func TestSourcePathUnknown(t *testing.T) {
	if _, err := SourcePath(models.Browser("Opera")); err == nil {
		t.Error("expected an error for an unknown browser")
	}
}
