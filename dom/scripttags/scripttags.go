package scripttags

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/pagescript/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	cdataStart = "//<![CDATA["
	cdataEnd   = "//]]>"
)

// isJavaScript is a predicate: is a script element tagged as JavaScript?
func isJavaScript(script *html.Node) bool {
	return strings.EqualFold(dom.Attr(script, "language"), "javascript") ||
		strings.EqualFold(dom.Attr(script, "type"), "text/javascript")
}

// isForeign is a predicate: is a script element explicitly tagged with a
// language and type other than JavaScript?
func isForeign(script *html.Node) bool {
	return !isJavaScript(script) && dom.Attr(script, "language") != "" && dom.Attr(script, "type") != ""
}

func canonicalize(script *html.Node) {
	dom.SetAttr(script, "language", "JavaScript")
	dom.SetAttr(script, "type", "text/javascript")
}

// FixScriptTags makes all JavaScript <script> elements of a document
// universally compatible. Every script element not explicitly tagged as
// a foreign script is tagged as JavaScript, and its code is put into a
// comment-guarded CDATA section. doc is modified in place.
func FixScriptTags(doc *html.Node) error {
	for _, script := range dom.ElementsByTagName(doc, "script") {
		if isForeign(script) {
			tracer().Debugf("leaving %s script untouched", dom.Attr(script, "language"))
			continue
		}
		canonicalize(script)
		code, err := dom.InnerHTML(script)
		if err != nil {
			return fmt.Errorf("cannot fix script tag: %w", err)
		}
		if err = dom.SetInnerHTML(script, protect(code)); err != nil {
			return fmt.Errorf("cannot fix script tag: %w", err)
		}
	}
	return nil
}

// quoted matches a stretch of code up to and including the next quoted
// string literal.
var quoted = regexp.MustCompile(`(?s)(.*?)("[^"]*"|'[^']*')`)

// protect wraps script code into a CDATA section. Code already starting with
// a guarded CDATA section is returned trimmed, but otherwise unchanged.
// Markup entities outside of string literals are unescaped. A trailing "//"
// marker is replaced by the end of the CDATA section, comments inside the
// code are left alone.
func protect(code string) string {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "//") {
		code = "//\n" + code + "\n//"
	}
	if strings.HasPrefix(code[2:], "<![CDATA[") {
		return code
	}
	chunks := splitQuoted(code)
	if _, after, found := strings.Cut(chunks[0], "//"); found {
		chunks[0] = after
	}
	last := len(chunks) - 1
	if tail := strings.TrimRight(chunks[last], " \t\r\n"); strings.HasSuffix(tail, "//") {
		chunks[last] = tail[:len(tail)-2] + cdataEnd
	} else {
		chunks[last] += "\n" + cdataEnd
	}
	chunks[0] = cdataStart + chunks[0]
	return strings.Join(chunks, "")
}

// splitQuoted splits code into chunks, alternating between code outside of
// string literals (unescaped) and string literals (verbatim). The first and
// the last chunk are always outside of string literals.
func splitQuoted(code string) []string {
	var chunks []string
	pos := 0
	for _, m := range quoted.FindAllStringSubmatchIndex(code, -1) {
		chunks = append(chunks, dom.Unescape(code[m[2]:m[3]]), code[m[4]:m[5]])
		pos = m[1]
	}
	return append(chunks, dom.Unescape(code[pos:]))
}

// GetFunctions collects the functions defined by the JavaScript scripts in
// the head of a document. Only the first <head> element is considered. If
// there is none, the table is empty.
func GetFunctions(doc *html.Node) *FunctionTable {
	fns := NewFunctionTable()
	head := dom.FirstElementByTagName(doc, "head")
	if head == nil {
		tracer().Debugf("document has no <head>, no functions")
		return fns
	}
	for _, script := range dom.ElementsByTagName(head, "script") {
		if !isJavaScript(script) {
			continue
		}
		more := GetFunctionsFromCodeString(dom.TextContent(script))
		for _, name := range more.names {
			fns.put(name, more.funcs[name])
		}
	}
	return fns
}

// CreateMissingFunctions adds all functions of fns to the head of a document
// which are not defined there already. <head> and <script> elements are
// created as required.
//
// CreateMissingFunctions is DESTRUCTIVE: see SetAllFunctions.
func CreateMissingFunctions(doc *html.Node, fns *FunctionTable) error {
	all := GetFunctions(doc)
	all.Merge(fns)
	return SetAllFunctions(doc, all)
}

// SetAllFunctions replaces all JavaScript in the head of a document by the
// functions of a table.
//
// SetAllFunctions is DESTRUCTIVE: the content of the first head script is
// overwritten with the code of all functions of fns, separated by blank lines,
// and all other scripts in the head are removed. Missing <head> and <script>
// elements are created. If the document has no <head> and no <html> element
// to create one in, ErrNoHTMLElement is returned.
func SetAllFunctions(doc *html.Node, fns *FunctionTable) error {
	if _, err := dom.OwnerDocument(doc); err != nil {
		tracer().Errorf("cannot set functions: %v", err)
		return err
	}
	head := dom.FirstElementByTagName(doc, "head")
	if head == nil {
		root := htmlElement(doc)
		if root == nil {
			return ErrNoHTMLElement
		}
		tracer().Debugf("creating <head>")
		head = dom.NewElement(atom.Head)
		root.InsertBefore(head, root.FirstChild)
	}
	scripts := dom.ElementsByTagName(head, "script")
	if len(scripts) == 0 {
		tracer().Debugf("creating <script> in <head>")
		script := dom.NewElement(atom.Script)
		canonicalize(script)
		head.AppendChild(script)
		scripts = append(scripts, script)
	}
	first := scripts[0]
	dom.RemoveChildren(first)
	first.AppendChild(&html.Node{Type: html.TextNode, Data: fns.Code()})
	for _, script := range scripts[1:] {
		dom.Detach(script)
	}
	return nil
}

func htmlElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Html {
		return n
	}
	return dom.FirstElementByTagName(n, "html")
}
