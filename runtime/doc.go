/*
Package runtime instantiates parsed templates into live UI scenes.

A Scene is an arena of nodes addressed by small integer handles. It owns the
whole lifecycle of its nodes: template instantiation (including nested
components and slot splicing), property compilation, interaction-driven
style transitions and sprite animation. The scene does no layout and no
rendering; each tick it produces a resolved style per node which a host
engine consumes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hui.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("hui.runtime")
}
