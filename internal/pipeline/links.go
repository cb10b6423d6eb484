package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RewriteRelativePaths turns relative img[src] and a[href] values into
// absolute file:// URLs rooted at sourceDir. URLs, anchors, absolute paths and
// paths escaping sourceDir are left as written. An empty sourceDir is a no-op.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	root, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	walk(doc, func(n *html.Node) {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", root)
		case "a":
			rewriteAttr(n, "href", root)
		}
	})

	var out strings.Builder
	if err := html.Render(&out, doc); err != nil {
		return "", err
	}
	return out.String(), nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func rewriteAttr(n *html.Node, key, root string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativeRef(attr.Val) {
			continue
		}
		target, err := url.PathUnescape(attr.Val)
		if err != nil {
			target = attr.Val
		}
		// Fragments and queries on local files only matter for links.
		target, fragment, _ := strings.Cut(target, "#")

		abs := filepath.Join(root, filepath.FromSlash(target))
		if !within(abs, root) {
			continue
		}
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), Fragment: fragment}
		if !strings.HasPrefix(u.Path, "/") {
			u.Path = "/" + u.Path // Windows drive paths
		}
		n.Attr[i].Val = u.String()
	}
}

func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return false // http:, https:, mailto:, data:, file: ...
	}
	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
