package dom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Raw text elements do not carry markup; their text children are serialized
// verbatim (see https://html.spec.whatwg.org/#raw-text-elements).
var rawTextElements = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Iframe:    true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Noscript:  true,
	atom.Plaintext: true,
	atom.Xmp:       true,
}

// IsRawText is a predicate: are the children of n serialized without escaping?
func IsRawText(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && rawTextElements[n.DataAtom]
}

// InnerHTML returns the serialized children of element n.
func InnerHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	raw := IsRawText(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if raw && c.Type == html.TextNode {
			buf.WriteString(c.Data)
			continue
		}
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("dom: rendering children of <%s>: %w", n.Data, err)
		}
	}
	return buf.String(), nil
}

// SetInnerHTML replaces the children of element n. For raw text elements,
// e.g. <script>, s becomes the content of a single text node. For all other
// elements s is parsed as an HTML fragment in the context of n.
func SetInnerHTML(n *html.Node, s string) error {
	if n == nil {
		return nil
	}
	RemoveChildren(n)
	if IsRawText(n) {
		if s != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		}
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(s), n)
	if err != nil {
		tracer().Errorf("dom: cannot parse inner HTML for <%s>", n.Data)
		return fmt.Errorf("dom: parsing inner HTML for <%s>: %w", n.Data, err)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// TextContent returns the concatenated data of the text children of n.
// It does not descend into child elements.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// Unescape replaces HTML character references like "&lt;" with the
// characters they stand for.
func Unescape(s string) string {
	return html.UnescapeString(s)
}
