package jsgen

import (
	"net/url"
	"testing"

	"github.com/npillmayer/pagescript/dom"
	"github.com/npillmayer/pagescript/script"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWindowRef(t *testing.T) {
	assert.Equal(t, script.Snippet(""), WindowRef(""))
	assert.Equal(t, script.Snippet(`py_windows['help']`), WindowRef("help"))
}

func TestCreateWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagescript.jsgen")
	defer teardown()
	//
	opts := WindowOptions{
		X: At(10), Y: At(20), W: At(300), H: At(200),
		NoResize:    true,
		NoStatusbar: true,
		Params:      url.Values{"q": {"a b"}, "lang": {"de"}},
	}
	js := CreateWindow("help", "http://example.com/help", opts)
	assert.Equal(t, script.Snippet(`py_windows['help']=open('http://example.com/help?lang=de&q=a+b','help',`+
		`'screenX=10,screenY=20,width=300,height=200,resizable=no,status=no');`), js)
	vm := runInBrowser(t, InitWindowRegistry(), js, InitWindowRegistry())
	assert.Equal(t, "help", evalJS(t, vm, "py_windows['help'].name"), "registry must survive re-initialization")
	//
	js = CreateWindow("plain", "page.html", WindowOptions{})
	assert.Equal(t, script.Snippet(`py_windows['plain']=open('page.html','plain','');`), js)
}

func TestCreateUnnamedWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagescript.jsgen")
	defer teardown()
	//
	js := CreateWindow("", "a.html", WindowOptions{})
	assert.Equal(t, script.Snippet(`open('a.html','','');`), js)
	vm := runInBrowser(t, InitWindowRegistry(), js)
	assert.Equal(t, "open()", evalJS(t, vm, "calls.join('|')"))
	assert.Equal(t, "0", evalJS(t, vm, "Object.keys(py_windows).length"), "unnamed windows must not be registered")
}

func TestWindowControl(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagescript.jsgen")
	defer teardown()
	//
	vm := runInBrowser(t,
		InitWindowRegistry(),
		CreateWindow("w", "a.html", WindowOptions{}),
		SelectWindow("w"),
		PrintPage("w"),
		SetWindowBounds("w", 1, 2, 300, 400),
		BrowseToPage("b.html", nil, "w"),
		SetStatusText("loading", "w"),
	)
	assert.Equal(t, "open(w)|focus()|print()|moveTo(1,2)|resizeTo(300,400)", evalJS(t, vm, "calls.join('|')"))
	assert.Equal(t, "b.html", evalJS(t, vm, "py_windows['w'].location"))
	assert.Equal(t, "loading", evalJS(t, vm, "py_windows['w'].status"))
	//
	vm = runInBrowser(t, InitWindowRegistry(), CreateWindow("w", "a.html", WindowOptions{}),
		script.Snippet("var handle=py_windows['w'];"), CloseWindow("w"))
	assert.Equal(t, "true", evalJS(t, vm, "handle.closed"))
	assert.Equal(t, "false", evalJS(t, vm, "'w' in py_windows"), "closed windows must be unregistered")
}

func TestCurrentWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagescript.jsgen")
	defer teardown()
	//
	assert.Equal(t, script.Snippet(`window.location='http://x/?q=1&b=2';`),
		BrowseToPage("http://x/?q=1", url.Values{"b": {"2"}}, ""))
	assert.Equal(t, script.Snippet(`window.status='Ready';`), SetStatusText(dom.HTML("<b>Ready</b>"), ""))
	assert.Equal(t, script.Snippet(`window.close();`), CloseWindow(""))
	vm := runInBrowser(t, BrowseToPage("index.html", url.Values{"page": {"2"}}, ""),
		PrintPage(""), SetWindowBounds("", 0, 0, 10, 10))
	assert.Equal(t, "index.html?page=2", evalJS(t, vm, "window.location"))
	assert.Equal(t, "print()|moveTo(0,0)|resizeTo(10,10)", evalJS(t, vm, "calls.join('|')"))
}
