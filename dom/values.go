package dom

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// HTML is a piece of markup. Converting it to a string yields the markup
// verbatim: character references are neither decoded nor re-encoded.
type HTML string

// HTMLFromText creates markup displaying plain text t, i.e. with the special
// characters of t escaped.
func HTMLFromText(t Text) HTML {
	return HTML(html.EscapeString(string(t)))
}

// HTMLFromNode serializes a DOM node (and its subtree) as markup.
func HTMLFromNode(n *html.Node) (HTML, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("dom: rendering <%s>: %w", n.Data, err)
	}
	return HTML(buf.String()), nil
}

func (h HTML) String() string {
	return string(h)
}

// strictPolicy removes every element, leaving text only.
var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips all markup from h and returns the text a browser would
// display.
func (h HTML) PlainText() Text {
	stripped := strictPolicy.Sanitize(string(h))
	return Text(html.UnescapeString(stripped))
}

// Text is plain text, without any markup.
type Text string

func (t Text) String() string {
	return string(t)
}

// PlainText is part of interface Plaintext.
func (t Text) PlainText() Text {
	return t
}

// Plaintext is implemented by types which have a canonical plain text form.
type Plaintext interface {
	PlainText() Text
}

var _ Plaintext = Text("")
var _ Plaintext = HTML("")

// IsPlaintextCompatible is a predicate: may v be coerced to Text by AsText?
func IsPlaintextCompatible(v interface{}) bool {
	switch v.(type) {
	case string, []byte, []rune, Plaintext:
		return true
	}
	return false
}

// AsText coerces v to Text. If v is not plaintext compatible (see
// IsPlaintextCompatible), ok is false.
func AsText(v interface{}) (t Text, ok bool) {
	switch x := v.(type) {
	case Text:
		return x, true
	case string:
		return Text(x), true
	case []byte:
		return Text(x), true
	case []rune:
		return Text(string(x)), true
	case Plaintext:
		return x.PlainText(), true
	}
	return "", false
}
