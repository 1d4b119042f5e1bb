/*
Package style implements the style attribute model of the markup dialect:
value types for lengths, colors, rectangles and layout keywords, the closed
set of tagged style directives, the computed baseline style of a node, and
the per-field interpolation used for interaction transitions.

Each visual field has its own micro-grammar. The parsers in this package are
the single source of truth for those grammars; the markup parser dispatches
every non-structural attribute here.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'hui.style'.
func tracer() tracing.Trace {
	return tracing.Select("hui.style")
}
