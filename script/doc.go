/*
Package script provides a string type for JavaScript source code and the
encoder turning arbitrary values into JavaScript string literals.

Snippets

Servers assembling pages often cannot tell from a function's return type
whether it produced JavaScript code or plain text. Type Snippet tags a string
as JavaScript. Decomposing a Snippet (Split, Partition, …) yields Snippets
again, so a split/re-join cycle does not lose the tag.

The content of a Snippet is never escaped implicitly. Escaping happens at
exactly one place: ToJsString, which turns data into a quoted literal.

Literals

ToJsString accepts strings, HTML, anything plaintext compatible (see package
dom) and, as a fallback, every other value, formatted with fmt.Sprint.
Escaping is done in a fixed order:

   \   →  \\
   '   →  \'
   LF  →  \n
   CR  →  (removed)

and the result is wrapped in single quotes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagescript.script'.
func tracer() tracing.Trace {
	return tracing.Select("pagescript.script")
}
