/*
Package scripttags normalizes the <script> elements of an HTML parse tree
and manages the JavaScript functions defined in a page head.

FixScriptTags rewrites every JavaScript <script> element into a canonical
form, which may safely be embedded in HTML as well as in XHTML:

   <script language="JavaScript" type="text/javascript">//<![CDATA[
   …
   //]]></script>

Scripts in other languages, i.e. elements declaring both a non-JavaScript
language and a non-JavaScript type, are left untouched.

Function tables

GetFunctions collects the names of functions defined in the head scripts of
a page. Function bodies are not extracted yet: every function found carries
an empty body, and FunctionTable.Body reports ErrBodyExtraction for it.

CreateMissingFunctions and SetAllFunctions are DESTRUCTIVE. They replace the
content of the first head script with the concatenation of all function
bodies of a table and remove every other script from the page head. Global
variables and statements of head scripts are lost.

None of the functions in this package may be called concurrently on the same
document without external locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scripttags

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pagescript.scripttags'.
func tracer() tracing.Trace {
	return tracing.Select("pagescript.scripttags")
}

// ErrNoHTMLElement is returned if a <head> element has to be created, but
// the document has no <html> element to hold it.
var ErrNoHTMLElement = errors.New("document has no <html> element")

// ErrBodyExtraction is returned for functions whose body could not be
// extracted from script code.
var ErrBodyExtraction = errors.New("function body extraction not supported")

// ErrNoSuchFunction is returned for names not contained in a function table.
var ErrNoSuchFunction = errors.New("no such function")
