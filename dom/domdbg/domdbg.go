/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// ToTree creates a printable tree for a DOM (sub-)tree.
// Elements are listed with their attributes, text nodes with a shortened
// version of their text.
func ToTree(doc *html.Node) treeprint.Tree {
	t := treeprint.New()
	if doc == nil {
		t.SetValue("<nil>")
		return t
	}
	t.SetValue(nodeLabel(doc))
	children(doc, t)
	return t
}

// Dump returns a multi-line string representation of a DOM (sub-)tree.
func Dump(doc *html.Node) string {
	return ToTree(doc).String()
}

// Log is a helper for testing. It writes the DOM tree under doc to the
// test log.
func Log(doc *html.Node, t *testing.T) {
	t.Helper()
	t.Logf("DOM tree:\n%s", Dump(doc))
}

func children(n *html.Node, branch treeprint.Tree) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.FirstChild == nil {
			branch.AddNode(nodeLabel(c))
			continue
		}
		children(c, branch.AddBranch(nodeLabel(c)))
	}
}

func nodeLabel(n *html.Node) string {
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "<!DOCTYPE " + n.Data + ">"
	case html.TextNode:
		return shortText(n.Data)
	case html.CommentNode:
		return "<!--" + shortText(n.Data) + "-->"
	case html.ElementNode:
		var sb strings.Builder
		sb.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(&sb, " %s=%q", a.Key, a.Val)
		}
		sb.WriteString(">")
		return sb.String()
	}
	return "?"
}

func shortText(s string) string {
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return `"` + s + `"`
}
