// Package browser resolves where each supported browser keeps its live
// bookmark store on the current platform. It only probes the
// filesystem, it never reads or parses store contents.
package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/favbackup/bookmark-backup/internal/models"
)

// ErrProfileNotFound is returned when no Firefox release profile
// directory can be located.
var ErrProfileNotFound = errors.New("firefox profile not found")

// releaseProfileSuffix marks the default Firefox release profile
// directory, e.g. "x1y2z3.default-release".
const releaseProfileSuffix = ".default-release"

// SourcePath returns the path of the live bookmark store for the given
// browser: the Bookmarks JSON file for Chrome/Edge, places.sqlite
// inside the release profile for Firefox. The path is resolved, not
// checked for existence, except for the Firefox profile scan.
func SourcePath(b models.Browser) (string, error) {
	switch b {
	case models.BrowserChrome:
		return chromiumBookmarksPath("Google", "Chrome", "google-chrome")
	case models.BrowserEdge:
		return chromiumBookmarksPath("Microsoft", "Edge", "microsoft-edge")
	case models.BrowserFirefox:
		profiles, err := firefoxProfilesDir()
		if err != nil {
			return "", err
		}
		return PlacesPath(profiles)
	}
	return "", fmt.Errorf("unknown browser %q", b)
}

// PlacesPath scans a Firefox profiles directory for the release
// profile and returns its places.sqlite path.
func PlacesPath(profilesDir string) (string, error) {
	entries, err := os.ReadDir(profilesDir)
	if err != nil {
		return "", ErrProfileNotFound
	}
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), releaseProfileSuffix) {
			return filepath.Join(profilesDir, e.Name(), "places.sqlite"), nil
		}
	}
	return "", ErrProfileNotFound
}

// chromiumBookmarksPath builds the default-profile Bookmarks path for a
// Chromium-based browser. vendor/product name the Windows/macOS install
// directories, linuxDir the XDG config directory.
func chromiumBookmarksPath(vendor, product, linuxDir string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, vendor, product, "User Data", "Default", "Bookmarks"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if vendor == "Microsoft" {
			// macOS Edge nests directly under Application Support
			return filepath.Join(home, "Library", "Application Support", "Microsoft Edge", "Default", "Bookmarks"), nil
		}
		return filepath.Join(home, "Library", "Application Support", vendor, product, "Default", "Bookmarks"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", linuxDir, "Default", "Bookmarks"), nil
	}
}

func firefoxProfilesDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("APPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(base, "Mozilla", "Firefox", "Profiles"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".mozilla", "firefox"), nil
	}
}
