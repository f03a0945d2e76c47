package jsgen

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/npillmayer/pagescript/dom"
	"github.com/npillmayer/pagescript/script"
)

// WindowRegistry is the name of the browser-side object mapping window names
// to window handles. CreateWindow registers new windows there, all other
// window functions look them up by name.
const WindowRegistry = "py_windows"

// InitWindowRegistry declares the window registry, unless the page already
// did so.
func InitWindowRegistry() script.Snippet {
	return "window." + WindowRegistry + "=window." + WindowRegistry + "||{};"
}

// WindowRef returns an expression referencing a window opened by CreateWindow.
// If windowName is empty, WindowRef returns the empty Snippet.
func WindowRef(windowName string) script.Snippet {
	if windowName == "" {
		return ""
	}
	return script.Snippet(WindowRegistry + "[" + script.ToJsString(windowName) + "]")
}

// windowMember references a member of a window, defaulting to the current
// window.
func windowMember(windowName string, member string) script.Snippet {
	w := WindowRef(windowName)
	if w == "" {
		w = "window"
	}
	return w + script.Snippet("."+member)
}

// BrowseToPage navigates a window to a page. Either pass the complete URL,
// or a base URL and CGI parameters; parameters are URL-encoded and sorted
// by key.
func BrowseToPage(u string, params url.Values, windowName string) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s=%s;", windowMember(windowName, "location"),
		script.ToJsString(withParams(u, params))))
}

// PrintPage sends the page of a window to the printer.
func PrintPage(windowName string) script.Snippet {
	return windowMember(windowName, "print();")
}

// SetStatusText sets the status bar text of a window. text may be anything
// printable; markup is shown as plain text, as status bars cannot render it.
func SetStatusText(text interface{}, windowName string) script.Snippet {
	if h, ok := text.(dom.HTML); ok {
		text = h.PlainText()
	}
	return script.Snippet(fmt.Sprintf("%s=%s;", windowMember(windowName, "status"),
		script.ToJsString(text)))
}

// WindowOptions control the appearance of a new window. The zero value
// opens a window with the browser's default geometry and all bars visible.
type WindowOptions struct {
	X, Y, W, H  *int       // optional geometry
	NoResize    bool       // window is not resizable
	NoMenubar   bool       // hide the menu bar
	NoStatusbar bool       // hide the status bar
	NoToolbar   bool       // hide the tool bar
	Params      url.Values // optional CGI parameters
}

// At is a helper to specify optional window geometry.
func At(v int) *int {
	return &v
}

func (opts WindowOptions) features() string {
	var f []string
	if opts.X != nil {
		f = append(f, fmt.Sprintf("screenX=%d", *opts.X))
	}
	if opts.Y != nil {
		f = append(f, fmt.Sprintf("screenY=%d", *opts.Y))
	}
	if opts.W != nil {
		f = append(f, fmt.Sprintf("width=%d", *opts.W))
	}
	if opts.H != nil {
		f = append(f, fmt.Sprintf("height=%d", *opts.H))
	}
	if opts.NoResize {
		f = append(f, "resizable=no")
	}
	if opts.NoMenubar {
		f = append(f, "menubar=no")
	}
	if opts.NoToolbar {
		f = append(f, "toolbar=no")
	}
	if opts.NoStatusbar {
		f = append(f, "status=no")
	}
	return strings.Join(f, ",")
}

// CreateWindow opens a new window and registers it under windowName.
// An unnamed window is opened without registering it, so it cannot be
// referenced by the other window functions afterwards.
func CreateWindow(windowName string, u string, opts WindowOptions) script.Snippet {
	js := script.Snippet(fmt.Sprintf("open(%s,%s,%s);",
		script.ToJsString(withParams(u, opts.Params)),
		script.ToJsString(windowName),
		script.ToJsString(opts.features())))
	if w := WindowRef(windowName); w != "" {
		js = w + "=" + js
	}
	return js
}

// SelectWindow brings a window to the front.
func SelectWindow(windowName string) script.Snippet {
	return windowMember(windowName, "focus();")
}

// CloseWindow closes a window and removes it from the window registry.
func CloseWindow(windowName string) script.Snippet {
	js := windowMember(windowName, "close();")
	if w := WindowRef(windowName); w != "" {
		js = js.Append("delete " + w.String() + ";")
	}
	return js
}

// SetWindowBounds moves and resizes a window.
func SetWindowBounds(windowName string, x, y, w, h int) script.Snippet {
	return script.Snippet(fmt.Sprintf("%s(%d,%d);%s(%d,%d);",
		windowMember(windowName, "moveTo"), x, y,
		windowMember(windowName, "resizeTo"), w, h))
}

func withParams(u string, params url.Values) string {
	if len(params) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + params.Encode()
}
