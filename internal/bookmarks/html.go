package bookmarks

import (
	"fmt"
	"html"
	"strings"

	"github.com/favbackup/bookmark-backup/internal/models"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Bookmarks</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        ul { list-style-type: none; }
        a { text-decoration: none; color: #0066cc; }
        a:hover { text-decoration: underline; }
        .folder { font-weight: bold; margin: 10px 0; }
    </style>
</head>
<body>
    <h1>Bookmarks</h1>
`

// RenderHTML serializes a canonical tree to a single self-contained
// HTML document. Each element of roots is expected to be a folder; at
// depth 0 only its children are rendered, since the top-level source
// groupings carry no meaningful name. Every title and URL is escaped
// on output, and the result is byte-identical for the same input tree.
func RenderHTML(roots []models.BookmarkNode) string {
	var b strings.Builder
	b.WriteString(htmlHeader)
	for _, root := range roots {
		writeFolder(&b, root, 0)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeFolder(b *strings.Builder, node models.BookmarkNode, depth int) {
	indent := strings.Repeat("    ", depth)
	if depth > 0 {
		fmt.Fprintf(b, "%s<div class=\"folder\">%s</div>\n", indent, html.EscapeString(node.Name))
	}
	fmt.Fprintf(b, "%s<ul>\n", indent)
	for _, child := range node.Children {
		switch child.Type {
		case models.NodeFolder:
			writeFolder(b, child, depth+1)
		case models.NodeLink:
			fmt.Fprintf(b, "%s    <li><a href=\"%s\">%s</a></li>\n",
				indent, html.EscapeString(child.URL), html.EscapeString(child.Name))
		}
	}
	fmt.Fprintf(b, "%s</ul>\n", indent)
}
