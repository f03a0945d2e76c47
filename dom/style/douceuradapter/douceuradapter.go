/*
Package douceuradapter wraps style sheets parsed by github.com/aymerick/douceur.

Style sheets are either parsed from CSS text or extracted from <style>
elements of an HTML parse tree. Rules of a sheet may be rendered back to
single-line CSS text, suitable for CSSStyleSheet.insertRule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/pagescript/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'pagescript.dom'.
func tracer() tracing.Trace {
	return tracing.Select("pagescript.dom")
}

// CSSStyles wraps a douceur style sheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a style sheet.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style sheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *CSSStyles) AppendRules(other *CSSStyles) {
	if other == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
func (sheet *CSSStyles) Rules() []Rule {
	rules := make([]Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

// RuleTexts returns every rule of the sheet as CSS text on a single line,
// e.g. "p { color: red; }".
func (sheet *CSSStyles) RuleTexts() []string {
	texts := make([]string, 0, len(sheet.css.Rules))
	for _, r := range sheet.Rules() {
		texts = append(texts, r.String())
	}
	return texts
}

// Rule is an adapter for a douceur rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// String renders the rule as CSS text, collapsing all white space.
func (r Rule) String() string {
	cr := css.Rule(r)
	return strings.Join(strings.Fields(cr.String()), " ")
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	return append(css, extractStyles(body)...)
}

// PageStyles merges the style sheets of all <style> elements of a page into
// a single sheet, in document order. It returns nil if the page does not
// contain any style rules.
func PageStyles(htmldoc *html.Node) *CSSStyles {
	var sheet *CSSStyles
	for _, s := range ExtractStyleElements(htmldoc) {
		if s.Empty() {
			continue
		}
		if sheet == nil {
			sheet = s
			continue
		}
		sheet.AppendRules(s)
	}
	return sheet
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style {
			continue
		}
		c, err := Parse(dom.TextContent(ch))
		if err != nil {
			tracer().Infof("skipping <style>: %v", err)
			continue
		}
		css = append(css, c)
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
