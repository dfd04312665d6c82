package bookmarks

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	"github.com/favbackup/bookmark-backup/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// Firefox keeps bookmarks in moz_bookmarks, a flat table where every
// row points at its parent. The five standard containers have fixed
// ids; everything the user sees hangs below them.
const (
	rootMenu    = 2
	rootToolbar = 3
	rootTags    = 4
	rootUnfiled = 5
	rootMobile  = 6
)

var firefoxRoots = []struct {
	ID   int64
	Name string
}{
	{rootMenu, "Bookmarks Menu"},
	{rootToolbar, "Bookmarks Toolbar"},
	{rootTags, "Tags"},
	{rootUnfiled, "Other Bookmarks"},
	{rootMobile, "Mobile Bookmarks"},
}

// maxTreeDepth bounds materialization so that a parent-id cycle in a
// damaged database cannot recurse forever. Real bookmark trees stay
// far below this.
const maxTreeDepth = 64

// PlaceRow is one row of the recursive places query: a bookmark or
// folder with its parent, ordering position and nesting depth.
type PlaceRow struct {
	ID       int64
	ParentID int64
	Title    *string
	URL      *string // non-nil iff the row is a link
	Position int64
	Depth    int64
}

// placesQuery walks moz_bookmarks down from the five fixed roots and
// joins moz_places for the link URLs. Separators (type 3) carry
// neither title nor URL and are excluded. Self-parenting rows from a
// damaged database would loop the recursion forever, so both arms
// refuse them and the recursive arm stops at maxTreeDepth. Ordered by
// (parent, position) so children come out in display order.
const placesQuery = `
WITH RECURSIVE tree(id, parent, title, url, position, depth) AS (
	SELECT b.id, b.parent, b.title, p.url, b.position, 0
	FROM moz_bookmarks b
	LEFT JOIN moz_places p ON p.id = b.fk
	WHERE b.parent IN (2, 3, 4, 5, 6) AND b.type IN (1, 2) AND b.id <> b.parent
	UNION ALL
	SELECT b.id, b.parent, b.title, p.url, b.position, t.depth + 1
	FROM moz_bookmarks b
	LEFT JOIN moz_places p ON p.id = b.fk
	JOIN tree t ON b.parent = t.id
	WHERE b.type IN (1, 2) AND b.id <> b.parent AND t.depth < %d
)
SELECT id, parent, title, url, position, depth
FROM tree
ORDER BY parent, position`

// ReadPlaces opens a places.sqlite database read-only and returns
// every bookmark row reachable from the five standard roots.
func ReadPlaces(path string) ([]PlaceRow, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open places database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(placesQuery, maxTreeDepth))
	if err != nil {
		return nil, fmt.Errorf("query places database: %w", err)
	}
	defer rows.Close()

	var out []PlaceRow
	for rows.Next() {
		var r PlaceRow
		var title, url sql.NullString
		if err := rows.Scan(&r.ID, &r.ParentID, &title, &url, &r.Position, &r.Depth); err != nil {
			return nil, fmt.Errorf("scan places row: %w", err)
		}
		if title.Valid {
			r.Title = &title.String
		}
		if url.Valid {
			r.URL = &url.String
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read places rows: %w", err)
	}
	return out, nil
}

// BuildFromRows reconstructs the nested bookmark tree from the flat
// row set, one folder per standard root. Children are ordered by
// position at every level. Rows not reachable from the roots (null or
// cyclic parents) are dropped; so are rows with neither a title nor a
// usable position.
func BuildFromRows(rows []PlaceRow) []models.BookmarkNode {
	children := make(map[int64][]PlaceRow)
	for _, r := range rows {
		if r.Title == nil && r.Position < 0 {
			continue // malformed row: no title and no usable position
		}
		children[r.ParentID] = append(children[r.ParentID], r)
	}
	for id := range children {
		rs := children[id]
		sort.SliceStable(rs, func(i, j int) bool { return rs[i].Position < rs[j].Position })
	}

	roots := make([]models.BookmarkNode, 0, len(firefoxRoots))
	for _, root := range firefoxRoots {
		roots = append(roots, models.BookmarkNode{
			Type:     models.NodeFolder,
			Name:     root.Name,
			Children: materialize(root.ID, children, 1),
		})
	}
	return roots
}

func materialize(parentID int64, children map[int64][]PlaceRow, depth int) []models.BookmarkNode {
	if depth > maxTreeDepth {
		return []models.BookmarkNode{}
	}
	rows := children[parentID]
	nodes := make([]models.BookmarkNode, 0, len(rows))
	for _, r := range rows {
		name := ""
		if r.Title != nil {
			name = *r.Title
		}
		if r.URL != nil {
			nodes = append(nodes, models.BookmarkNode{
				Type: models.NodeLink,
				Name: name,
				URL:  *r.URL,
			})
			continue
		}
		// self-parenting rows would otherwise recurse into themselves
		if r.ID == parentID {
			continue
		}
		nodes = append(nodes, models.BookmarkNode{
			Type:     models.NodeFolder,
			Name:     name,
			Children: materialize(r.ID, children, depth+1),
		})
	}
	return nodes
}
