package testutils

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// RenderDOM renders n and parses the result.
func RenderDOM(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return ParseDOM(t, buf.String())
}

// ParseDOM parses an HTML document or fragment.
func ParseDOM(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// FindAll returns every element carrying the attribute, in document order.
func FindAll(root *html.Node, key string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := Attr(n, key); ok {
				out = append(out, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// ByID returns the first element with the id, or nil.
func ByID(root *html.Node, id string) *html.Node {
	for _, n := range FindAll(root, "id") {
		if v, _ := Attr(n, "id"); v == id {
			return n
		}
	}
	return nil
}

// Text returns the trimmed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
