package dom

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementsByTagName returns all descendants of n which are elements with
// the given tag name, in document order. n itself is never included.
// Tag names are matched case-insensitively.
func ElementsByTagName(n *html.Node, tag string) []*html.Node {
	if n == nil {
		return nil
	}
	sel, err := cascadia.Compile(strings.ToLower(tag))
	if err != nil {
		tracer().Errorf("dom: cannot compile selector for tag %q: %v", tag, err)
		return nil
	}
	return cascadia.QueryAll(n, sel)
}

// FirstElementByTagName returns the first descendant of n which is an
// element with the given tag name, or nil.
func FirstElementByTagName(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	sel, err := cascadia.Compile(strings.ToLower(tag))
	if err != nil {
		tracer().Errorf("dom: cannot compile selector for tag %q: %v", tag, err)
		return nil
	}
	return cascadia.Query(n, sel)
}

// Attr returns the value of attribute key of element n. Missing attributes
// are reported as the empty string, as the W3C DOM does.
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// HasAttr is a predicate: does element n carry an attribute key?
func HasAttr(n *html.Node, key string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}

// SetAttr sets attribute key of element n to val. An existing attribute
// keeps its position within the attribute list.
func SetAttr(n *html.Node, key string, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: strings.ToLower(key), Val: val})
}

// OwnerDocument walks up the parent chain of n and returns the document
// node at the root. If the root is not a document node, ErrNoDocument is
// returned.
func OwnerDocument(n *html.Node) (*html.Node, error) {
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.DocumentNode {
			return p, nil
		}
	}
	return nil, ErrNoDocument
}

// NewElement creates a detached element node for a known HTML atom.
func NewElement(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

// RemoveChildren detaches all children of n.
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// Detach removes n from its parent, if it has one.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
