/*
Package markup parses UI template markup into immutable templates.

Templates are XML-like documents with a closed set of element names (node,
image, button, text, slot, template) plus custom component elements. The
parser is a hand-written recursive descent scanner over the raw source; it
never builds an intermediate DOM. Attribute values carry micro-grammars
which are delegated to package style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hui.markup'.
func tracer() tracing.Trace {
	return tracing.Select("hui.markup")
}
