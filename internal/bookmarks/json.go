// Package bookmarks builds the canonical bookmark tree from browser
// stores and serializes it to HTML. Chrome and Edge keep a JSON tree,
// Firefox keeps a relational SQLite database; both normalize to
// models.BookmarkNode.
package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/favbackup/bookmark-backup/internal/models"
)

// ErrSourceNotFound is returned when a bookmark store file is missing.
var ErrSourceNotFound = errors.New("bookmark store not found")

// jsonNode mirrors one node of a Chromium Bookmarks document.
type jsonNode struct {
	Type     string     `json:"type"`
	Name     string     `json:"name"`
	URL      string     `json:"url"`
	Children []jsonNode `json:"children"`
}

// jsonDocument mirrors the top level of a Chromium Bookmarks document.
type jsonDocument struct {
	Roots map[string]jsonNode `json:"roots"`
}

// Chromium writes these roots in this order; any extra keys come after,
// sorted, so output stays deterministic.
var knownRoots = []string{"bookmark_bar", "other", "synced"}

// BuildFromJSON parses a Chromium Bookmarks document and returns one
// folder node per root entry. Nodes with unrecognized type values are
// skipped silently; a folder without children still yields an empty
// container.
func BuildFromJSON(data []byte) ([]models.BookmarkNode, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bookmarks json: %w", err)
	}

	roots := make([]models.BookmarkNode, 0, len(doc.Roots))
	for _, key := range rootOrder(doc.Roots) {
		if node, ok := convertJSONNode(doc.Roots[key]); ok {
			roots = append(roots, node)
		}
	}
	return roots, nil
}

// ReadJSONFile reads and parses a Chromium Bookmarks file.
func ReadJSONFile(path string) ([]models.BookmarkNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("read bookmarks file: %w", err)
	}
	return BuildFromJSON(data)
}

// rootOrder returns the root keys in deterministic order: the known
// Chromium roots first, then any remaining keys sorted.
func rootOrder(roots map[string]jsonNode) []string {
	order := make([]string, 0, len(roots))
	seen := make(map[string]bool, len(roots))
	for _, key := range knownRoots {
		if _, ok := roots[key]; ok {
			order = append(order, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range roots {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// convertJSONNode converts one document node. The second return value
// is false for unrecognized type values.
func convertJSONNode(n jsonNode) (models.BookmarkNode, bool) {
	switch n.Type {
	case "url":
		return models.BookmarkNode{
			Type: models.NodeLink,
			Name: n.Name,
			URL:  n.URL,
		}, true
	case "folder":
		children := make([]models.BookmarkNode, 0, len(n.Children))
		for _, c := range n.Children {
			if child, ok := convertJSONNode(c); ok {
				children = append(children, child)
			}
		}
		return models.BookmarkNode{
			Type:     models.NodeFolder,
			Name:     n.Name,
			Children: children,
		}, true
	}
	return models.BookmarkNode{}, false
}
