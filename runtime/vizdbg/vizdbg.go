/*
Package vizdbg prints scene subtrees for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vizdbg

import (
	"fmt"

	"github.com/npillmayer/hui/markup"
	"github.com/npillmayer/hui/runtime"
	tp "github.com/xlab/treeprint"
)

// Print renders the subtree under root as an indented tree, one line per
// node with its kind, id attribute and content.
func Print(scene *runtime.Scene, root runtime.NodeID) string {
	p := tp.New()
	ppt(p, scene, root)
	return p.String()
}

func ppt(p tp.Tree, scene *runtime.Scene, id runtime.NodeID) {
	children := scene.Children(id)
	if len(children) == 0 {
		p.AddNode(label(scene, id))
		return
	}
	branch := p.AddBranch(label(scene, id))
	for _, ch := range children {
		ppt(branch, scene, ch)
	}
}

func label(scene *runtime.Scene, id runtime.NodeID) string {
	l := scene.Kind(id).String()
	if uiID := scene.UIID(id); uiID != "" {
		l += fmt.Sprintf(" #%s", uiID)
	}
	switch scene.Kind(id) {
	case markup.KindText:
		if text := scene.Text(id); text != "" {
			l += fmt.Sprintf(" %q", text)
		}
	case markup.KindImage:
		if src := scene.ImageSource(id); src != "" {
			l += fmt.Sprintf(" src=%q", src)
		}
	}
	return l
}
