package script

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pagescript/dom"
	"golang.org/x/net/html"
)

// ToJsString returns v as a properly escaped JavaScript string literal,
// enclosed in single quotes.
//
// Values are converted to text in the following order of preference:
//
//   - strings and Snippets are used as they are
//   - HTML (dom.HTML or *html.Node) is flattened to its markup. Character
//     references are not re-encoded
//   - plaintext compatible values (see dom.IsPlaintextCompatible) are
//     converted by dom.AsText
//   - everything else is formatted with fmt.Sprint
//
// The result is plain text, not a Snippet, as it is usually embedded into a
// larger piece of code.
func ToJsString(v interface{}) string {
	return quote(TextOf(v))
}

// Literal is ToJsString, returning a Snippet.
func Literal(v interface{}) Snippet {
	return Snippet(ToJsString(v))
}

// TextOf converts v to text, the way ToJsString does, but without escaping
// or quoting.
func TextOf(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case Snippet:
		return string(x)
	case dom.HTML:
		return string(x)
	case *html.Node:
		h, err := dom.HTMLFromNode(x)
		if err != nil {
			tracer().Errorf("script: cannot flatten HTML node: %v", err)
		}
		return string(h)
	}
	if t, ok := dom.AsText(v); ok {
		return string(t)
	}
	return fmt.Sprint(v)
}

// quote escapes s and wraps it in single quotes.
// Backslashes must be escaped first.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", "")
	return "'" + s + "'"
}
