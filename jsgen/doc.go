/*
Package jsgen contains functions which return JavaScript code to perform
common tasks in a browser page: changing elements, drawing on a canvas,
opening dialogs, controlling windows and injecting CSS, scripts or HTML.

Every function is pure: it assembles a script.Snippet and never executes
anything. Untrusted text is always embedded through script.ToJsString.
Elements are referenced as

   document.getElementById('<id>')

Windows

Functions taking a window name address a window opened earlier by
CreateWindow. The generated code expects a browser-side registry, an object
named py_windows (see WindowRegistry), mapping window names to window
handles. This package does not maintain that registry, it only emits
expressions indexing into it. Pages using named windows should include the
snippet from InitWindowRegistry once. An empty window name always denotes the
current window.

Canvas

Canvas support is basic. Every canvas function obtains the 2D context of
the canvas element anew. For more, see
https://developer.mozilla.org/en-US/docs/Web/API/Canvas_API/Tutorial.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jsgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagescript.jsgen'.
func tracer() tracing.Trace {
	return tracing.Select("pagescript.jsgen")
}
