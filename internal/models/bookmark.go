package models

// NodeType represents the type of a bookmark tree node (folder or link)
type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeLink   NodeType = "link"
)

// BookmarkNode is one node of the canonical bookmark tree, independent
// of the browser it was read from. A folder carries Children (possibly
// empty, never dropped), a link carries URL. Child order is the order
// the source stores: array order for Chromium JSON, the position column
// for Firefox.
type BookmarkNode struct {
	Type     NodeType
	Name     string
	URL      string         // only for links
	Children []BookmarkNode // only for folders
}

// CountNodes returns the number of folders and links in the tree,
// the node itself included.
func (n BookmarkNode) CountNodes() (folders, links int) {
	switch n.Type {
	case NodeLink:
		return 0, 1
	case NodeFolder:
		folders = 1
		for _, c := range n.Children {
			f, l := c.CountNodes()
			folders += f
			links += l
		}
	}
	return folders, links
}
