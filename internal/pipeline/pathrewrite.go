package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths converts relative image and link paths in an HTML
// fragment to absolute file:// URLs under sourceDir, so a document written to
// a temporary location still resolves its images. Paths escaping sourceDir
// are left alone. On any failure the fragment is returned unchanged.
func RewriteRelativePaths(fragment, sourceDir string) string {
	if sourceDir == "" || !mayHaveRelativePaths(fragment) {
		return fragment
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return fragment
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return fragment
	}

	changed := false
	for _, n := range nodes {
		changed = rewriteNode(n, absSourceDir) || changed
	}
	if !changed {
		return fragment
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return fragment
		}
	}
	return buf.String()
}

// mayHaveRelativePaths is a cheap pre-check that avoids re-rendering
// fragments without images or links.
func mayHaveRelativePaths(fragment string) bool {
	lower := strings.ToLower(fragment)
	return strings.Contains(lower, "<img") || strings.Contains(lower, "<a ")
}

// rewriteNode traverses the tree and reports whether any attribute changed.
func rewriteNode(n *html.Node, sourceDir string) bool {
	changed := false
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			changed = rewriteAttr(n, "src", sourceDir)
		case atom.A:
			changed = rewriteAttr(n, "href", sourceDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		changed = rewriteNode(c, sourceDir) || changed
	}
	return changed
}

func rewriteAttr(n *html.Node, attrName, sourceDir string) bool {
	changed := false
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, filepath.FromSlash(attr.Val))
		if !isPathUnderDir(absPath, sourceDir) {
			continue
		}

		n.Attr[i].Val = pathToFileURL(absPath)
		changed = true
	}
	return changed
}

// isRelativePath reports whether path is a relative file reference: not an
// anchor, not absolute, and without a URL scheme.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return false
	}
	if u, err := url.Parse(path); err != nil || u.Scheme != "" {
		return false
	}
	return true
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
