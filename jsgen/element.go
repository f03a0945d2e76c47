package jsgen

import (
	"fmt"

	"github.com/npillmayer/pagescript/dom"
	"github.com/npillmayer/pagescript/script"
	"golang.org/x/net/html"
)

// Element returns an expression referencing the element with the given id.
func Element(id string) script.Snippet {
	return script.Snippet("document.getElementById(" + script.ToJsString(id) + ")")
}

// ReplaceElementContents replaces everything within the element's tag.
// content is usually markup (a string or dom.HTML) and is not escaped
// beyond literal encoding.
func ReplaceElementContents(id string, content interface{}) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.innerHTML=%s;", Element(id), script.ToJsString(content)))
}

// AppendElementContents appends markup to the inside of an element.
func AppendElementContents(id string, content interface{}) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.innerHTML+=%s;", Element(id), script.ToJsString(content)))
}

// SetElementContents assigns markup as the contents of an element.
func SetElementContents(id string, h dom.HTML) script.Snippet {
	return ReplaceElementContents(id, h)
}

// SetElementText assigns plain text as the contents of an element. The text
// is converted to markup first, thus it is displayed verbatim.
func SetElementText(id string, t dom.Text) script.Snippet {
	return ReplaceElementContents(id, dom.HTMLFromText(t))
}

// AppendElementText appends plain text to the contents of an element.
func AppendElementText(id string, t dom.Text) script.Snippet {
	return AppendElementContents(id, dom.HTMLFromText(t))
}

// SetElementAttribute sets a single attribute value of an element.
func SetElementAttribute(id string, name string, value interface{}) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.setAttribute(%s,%s);", Element(id),
		script.ToJsString(name), script.ToJsString(value)))
}

// GetElementAttribute reads an attribute value of an element.
// Typical usage would be like
//
//	js := script.Snippet("var x=").Append(GetElementAttribute("MyButton", "value").String())
func GetElementAttribute(id string, name string) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s.getAttribute(%s);", Element(id), script.ToJsString(name)))
}

// SetElementStyle sets the entire style attribute of an element.
func SetElementStyle(id string, css string) script.Snippet {
	return SetElementAttribute(id, "style", css)
}

// SetElementStyleValue sets a single CSS property within the style attribute
// of an element. If the property exists, its value is replaced, otherwise it
// is appended. Given
//
//	<a id="me" style="font-weight:bold;border:red">
//
// SetElementStyleValue("me", "border", "black") yields
//
//	<a id="me" style="font-weight:bold;border:black">
//
// If a property occurs more than once, only the first occurence is replaced.
// Empty entries are dropped from the style list.
func SetElementStyleValue(id string, name string, value interface{}) script.Snippet {
	pair := script.ToJsString(name + ":" + script.TextOf(value))
	key := script.ToJsString(name)
	return script.Lines(
		"{",
		script.Snippet("var _element="+Element(id)+";"),
		"var _style=(_element.getAttribute('style')||'').split(';').filter(function(s){return s.trim()!='';});",
		"var _had=0;",
		"for(var i=0;i<_style.length;i++){",
		"var s=_style[i].split(':');",
		script.Snippet("if(s[0].trim()=="+key+"){"),
		script.Snippet("if(_had==0){_style[i]="+pair+";}"),
		"_had=_had+1;",
		"}",
		"}",
		script.Snippet("if(_had<=0){_style.push("+pair+");}"),
		"_element.setAttribute('style',_style.join(';'));",
		"}",
	)
}

// AddJavascriptFunction appends function code to the first script element of
// the page.
func AddJavascriptFunction(fn string) script.Snippet {
	return script.Lines(
		"var scriptTag=document.getElementsByTagName('script')[0];",
		script.Snippet("scriptTag.innerHTML=scriptTag.innerHTML+"+script.ToJsString(fn)+";"),
	)
}

// asHTML converts v to markup: plain text is escaped, strings are taken as
// markup.
func asHTML(v interface{}) dom.HTML {
	switch x := v.(type) {
	case dom.HTML:
		return x
	case string:
		return dom.HTML(x)
	case script.Snippet:
		return dom.HTML(x)
	case *html.Node:
		h, err := dom.HTMLFromNode(x)
		if err != nil {
			tracer().Errorf("jsgen: %v", err)
		}
		return h
	}
	t, ok := dom.AsText(v)
	if !ok {
		t = dom.Text(fmt.Sprint(v))
	}
	return dom.HTMLFromText(t)
}
