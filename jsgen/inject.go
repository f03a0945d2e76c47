package jsgen

import (
	"strings"

	"github.com/npillmayer/pagescript/dom/style/douceuradapter"
	"github.com/npillmayer/pagescript/script"
	"golang.org/x/net/html"
)

// AddCSSRules inserts CSS rules into the first style sheet of the page.
// Unless noAddStyleTag is set, a <style> element is added to the page head
// if the page has no style sheet yet. Blank rules are skipped.
func AddCSSRules(rules []string, noAddStyleTag bool) script.Snippet {
	var js []script.Snippet
	if !noAddStyleTag {
		js = append(js,
			"if(window.document.styleSheets.length<1){",
			"var _styleTag=document.createElement('style');",
			"_styleTag.setAttribute('type','text/css');",
			"document.getElementsByTagName('head')[0].appendChild(_styleTag);",
			"}",
		)
	}
	js = append(js, "var css=window.document.styleSheets[0];")
	for _, rule := range rules {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		js = append(js, script.Snippet("css.insertRule("+script.ToJsString(rule)+",css.cssRules.length);"))
	}
	return script.Lines(js...)
}

// AddCSSText inserts CSS text into the first style sheet of the page, one
// rule per line.
func AddCSSText(css string, noAddStyleTag bool) script.Snippet {
	lines := script.Snippet(css).SplitLines(false)
	rules := make([]string, len(lines))
	for i, l := range lines {
		rules[i] = l.String()
	}
	return AddCSSRules(rules, noAddStyleTag)
}

// AddStylesheet parses a style sheet and inserts its rules into the first
// style sheet of the page. Rules may span several lines.
func AddStylesheet(css string, noAddStyleTag bool) (script.Snippet, error) {
	sheet, err := douceuradapter.Parse(css)
	if err != nil {
		return "", err
	}
	return AddCSSRules(sheet.RuleTexts(), noAddStyleTag), nil
}

// CopyPageStyles inserts the rules of all <style> elements of an HTML
// document into the first style sheet of the page. If the document does not
// contain any style rules, CopyPageStyles returns the empty Snippet.
func CopyPageStyles(doc *html.Node, noAddStyleTag bool) script.Snippet {
	sheet := douceuradapter.PageStyles(doc)
	if sheet == nil {
		return ""
	}
	return AddCSSRules(sheet.RuleTexts(), noAddStyleTag)
}

// AddJavascript appends code to the first script element of the page. Unless
// noAddScriptTag is set, a <script> element is added to the page head if the
// page has no script yet.
func AddJavascript(code script.Snippet, noAddScriptTag bool) script.Snippet {
	var js []script.Snippet
	if !noAddScriptTag {
		js = append(js,
			"if(window.document.scripts.length<1){",
			"var _scriptTag=document.createElement('script');",
			"_scriptTag.setAttribute('type','text/javascript');",
			"document.getElementsByTagName('head')[0].appendChild(_scriptTag);",
			"}",
		)
	}
	js = append(js,
		"var javascript=window.document.scripts[0];",
		script.Snippet("javascript.appendChild(document.createTextNode("+script.ToJsString(code)+"));"),
	)
	return script.Lines(js...)
}

// AddHTML inserts markup at the end of an element. If parentID is empty, the
// markup is appended to the page body. Plain text values (dom.Text, []byte,
// …) are escaped first, strings and dom.HTML are taken as markup.
func AddHTML(h interface{}, parentID string) script.Snippet {
	node := script.Snippet("document.body")
	if parentID != "" {
		node = Element(parentID)
	}
	return script.Snippet(node.String() + ".insertAdjacentHTML('beforeend'," +
		script.ToJsString(asHTML(h)) + ");")
}
