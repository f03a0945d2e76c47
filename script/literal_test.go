package script

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
	"github.com/npillmayer/pagescript/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestToJsStringPlain(t *testing.T) {
	for _, s := range []string{"", "hello", "a b c", `say "hi"`, "<b>&amp;</b>", "日本語"} {
		assert.Equal(t, "'"+s+"'", ToJsString(s))
	}
}

func TestToJsStringEscapes(t *testing.T) {
	assert.Equal(t, `'it\'s'`, ToJsString("it's"))
	assert.Equal(t, `'a\\b'`, ToJsString(`a\b`))
	assert.Equal(t, `'\\\''`, ToJsString(`\'`), "backslash must be escaped before the quote")
	assert.Equal(t, `'line1\nline2'`, ToJsString("line1\r\nline2"))
	assert.Equal(t, `'ab'`, ToJsString("a\rb"), "carriage returns are dropped")
	assert.Equal(t, `'\\n'`, ToJsString(`\n`))
}

func TestToJsStringValueKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagescript.script")
	defer teardown()
	//
	assert.Equal(t, `'alert(\'x\')'`, ToJsString(Snippet("alert('x')")))
	assert.Equal(t, `'<b>a &amp; b</b>'`, ToJsString(dom.HTML("<b>a &amp; b</b>")),
		"HTML is flattened without re-encoding")
	assert.Equal(t, `'text'`, ToJsString(dom.Text("text")))
	assert.Equal(t, `'bytes'`, ToJsString([]byte("bytes")))
	assert.Equal(t, `'42'`, ToJsString(42))
	assert.Equal(t, `'3.5'`, ToJsString(3.5))
	assert.Equal(t, `'true'`, ToJsString(true))
	//
	doc, err := html.Parse(strings.NewReader("<p class='x'>a<br>b</p>"))
	require.NoError(t, err)
	p := dom.FirstElementByTagName(doc, "p")
	assert.Equal(t, `'<p class="x">a<br/>b</p>'`, ToJsString(p))
	//
	assert.Equal(t, Snippet(`'x'`), Literal("x"))
}

func TestToJsStringRoundTrip(t *testing.T) {
	vm := goja.New()
	inputs := []string{
		"",
		"plain",
		"it's a \"test\"",
		`back\slash \\ and \' mixed`,
		"multi\nline\n\ntext",
		"tab\there",
		"</script><script>alert(1)</script>",
		"ünïcödé ✓",
		`'`, `\`, `\'`, "'\n'",
	}
	for _, s := range inputs {
		lit := ToJsString(s)
		v, err := vm.RunString(lit)
		require.NoError(t, err, "literal %s does not evaluate", lit)
		assert.Equal(t, s, v.String(), "round trip of %q through %s", s, lit)
	}
}
