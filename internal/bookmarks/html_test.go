package bookmarks

import (
	"strings"
	"testing"

	"github.com/favbackup/bookmark-backup/internal/models"

	"golang.org/x/net/html"
)

func sampleTree() []models.BookmarkNode {
	return []models.BookmarkNode{
		{
			Type: models.NodeFolder,
			Name: "bookmark_bar",
			Children: []models.BookmarkNode{
				{Type: models.NodeLink, Name: "Go", URL: "https://go.dev"},
				{
					Type: models.NodeFolder,
					Name: "Work",
					Children: []models.BookmarkNode{
						{Type: models.NodeLink, Name: "Mail", URL: "https://mail.example.com"},
					},
				},
			},
		},
	}
}

// collectAnchors parses the document and returns href -> link text.
func collectAnchors(t *testing.T, doc string) map[string]string {
	t.Helper()

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("rendered document does not parse: %v", err)
	}

	anchors := make(map[string]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = attr.Val
				}
			}
			if n.FirstChild != nil {
				anchors[href] = n.FirstChild.Data
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return anchors
}

func TestRenderHTML(t *testing.T) {
	doc := RenderHTML(sampleTree())

	anchors := collectAnchors(t, doc)
	if len(anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d: %v", len(anchors), anchors)
	}
	if anchors["https://go.dev"] != "Go" {
		t.Errorf("missing or wrong anchor for go.dev: %v", anchors)
	}
	if anchors["https://mail.example.com"] != "Mail" {
		t.Errorf("missing or wrong anchor for mail: %v", anchors)
	}

	// depth-0 root groupings render without a heading
	if strings.Contains(doc, "bookmark_bar") {
		t.Error("top-level root name must not appear in the document")
	}
	// nested folders do render their name
	if !strings.Contains(doc, `<div class="folder">Work</div>`) {
		t.Error("nested folder heading missing")
	}
}

func TestRenderHTMLEscaping(t *testing.T) {
	tree := []models.BookmarkNode{
		{
			Type: models.NodeFolder,
			Name: "root",
			Children: []models.BookmarkNode{
				{Type: models.NodeLink, Name: "<script>alert(1)</script>", URL: `https://example.com/?q="><script>`},
				{Type: models.NodeFolder, Name: "Evil & <Folder>", Children: []models.BookmarkNode{}},
			},
		},
	}

	doc := RenderHTML(tree)

	if strings.Contains(doc, "<script>") {
		t.Error("unescaped script tag in output")
	}
	if !strings.Contains(doc, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("title not escaped")
	}
	if !strings.Contains(doc, `<div class="folder">Evil &amp; &lt;Folder&gt;</div>`) {
		t.Error("folder name not escaped")
	}

	// the parsed anchor must round-trip back to the raw values
	anchors := collectAnchors(t, doc)
	if _, ok := anchors[`https://example.com/?q="><script>`]; !ok {
		t.Errorf("escaped href did not round-trip: %v", anchors)
	}
}

func TestRenderHTMLDeterministic(t *testing.T) {
	first := RenderHTML(sampleTree())
	second := RenderHTML(sampleTree())
	if first != second {
		t.Error("rendering the same tree twice must be byte-identical")
	}
}

func TestRenderHTMLEmptyFolder(t *testing.T) {
	tree := []models.BookmarkNode{
		{
			Type: models.NodeFolder,
			Name: "root",
			Children: []models.BookmarkNode{
				{Type: models.NodeFolder, Name: "Empty", Children: []models.BookmarkNode{}},
			},
		},
	}

	doc := RenderHTML(tree)
	if !strings.Contains(doc, `<div class="folder">Empty</div>`) {
		t.Error("empty folder heading missing")
	}
	// the empty container is rendered, not omitted
	if strings.Count(doc, "<ul>") != 2 {
		t.Errorf("expected the root list and the empty folder list, got %d lists", strings.Count(doc, "<ul>"))
	}
}
