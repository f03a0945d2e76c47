/*
Package dom provides the DOM helpers pagescript needs for server-side pages.

Status

Early draft, API may change frequently. Please stay patient.

Overview

Pages are held as parse trees of golang.org/x/net/html. This package
does not wrap html.Node into a W3C-style object model; it offers a small
set of functions operating directly on *html.Node:

   ElementsByTagName(n, tag)    // descendants of n with a given tag, in document order
   Attr(n, key), SetAttr(…)     // attribute access
   InnerHTML(n), SetInnerHTML(…) // serialized children of an element
   OwnerDocument(n)             // the document node a node belongs to

Element lookup is done with CSS selectors (https://github.com/andybalholm/cascadia).

Values

Package dom distinguishes two kinds of text values: HTML (markup, flattened
verbatim when converted to a string) and Text (plain text). Functions
accepting "anything printable" use IsPlaintextCompatible and AsText to
coerce their input to Text.

None of the functions in this package may be called concurrently on the same
document without external locking.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'pagescript.dom'
func tracer() tracing.Trace {
	return tracing.Select("pagescript.dom")
}

// ErrNoDocument is returned if a node is not part of a document tree.
var ErrNoDocument = errors.New("no document associated with HTML node")
