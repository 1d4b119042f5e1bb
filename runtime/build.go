package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"
	"strings"

	"github.com/npillmayer/hui/markup"
	"github.com/npillmayer/hui/style"
)

// maxBuildPasses bounds component nesting depth per settle.
const maxBuildPasses = 64

// settle drives pending instantiation to a fixpoint: building an instance
// may create nested component instances, which are built in the next pass.
// After each pass slotted children are spliced and the new instances get
// their property context compiled.
func (s *Scene) settle() {
	// pass cap bounds self-referential component registrations
	for pass := 0; ; pass++ {
		if pass >= maxBuildPasses {
			tracer().Errorf("instantiation did not settle after %d passes, giving up", pass)
			break
		}
		var pending []NodeID
		for _, n := range s.nodes {
			if n != nil && n.template != nil && !n.built {
				pending = append(pending, n.id)
			}
		}
		if len(pending) == 0 {
			break
		}
		for _, id := range pending {
			s.buildInstance(id)
		}
		s.spliceSlots()
		for _, id := range pending {
			s.compileContext(id)
		}
	}
	s.runOnSpawn()
}

// buildInstance expands the template of an instance root into scene nodes.
func (s *Scene) buildInstance(root NodeID) {
	n := s.nodes[root]
	tmpl := n.template
	n.built = true

	// template property defaults never override instance properties
	if n.props == nil {
		n.props = map[string]string{}
	}
	for k, v := range tmpl.Properties {
		if _, ok := n.props[k]; !ok {
			n.props[k] = v
		}
	}

	if len(tmpl.Root) == 0 {
		tracer().Errorf("template %q has no root node", tmpl.Name)
		return
	}
	if len(tmpl.Root) > 1 {
		tracer().Errorf("template %q has multiple root nodes, ignoring all but the first", tmpl.Name)
	}

	b := &builder{
		scene:   s,
		scope:   root,
		tmpl:    tmpl,
		ids:     map[string]NodeID{},
		targets: map[NodeID]string{},
		watch:   map[string][]NodeID{},
	}
	b.buildNode(root, tmpl.Root[0])
	b.finalize()
}

// builder assembles one template instance. Cross-references (ids, targets,
// watches) resolve in finalize, after the whole tree exists.
type builder struct {
	scene      *Scene
	scope      NodeID
	tmpl       *markup.Template
	subscriber []NodeID
	ids        map[string]NodeID
	targets    map[NodeID]string
	watch      map[string][]NodeID
}

func (b *builder) buildNode(id NodeID, xn *markup.Node) {
	s := b.scene
	n := s.nodes[id]
	n.kind = xn.Kind
	n.custom = xn.Custom
	n.style = style.FromAttrs(xn.Styles)

	delay := math.Max(n.style.Computed.Delay, 0.01)
	n.hover = interactionTimer{max: delay}
	n.pressed = interactionTimer{max: delay}

	if id != b.scope {
		n.scope = b.scope
	}
	// instance roots keep the expressions of the custom element that spawned
	// them and gain those of the template root on top
	if len(xn.Expressions) > 0 {
		n.expressions = append(n.expressions, xn.Expressions...)
		b.subscriber = append(b.subscriber, id)
	}
	if len(xn.Tags) > 0 {
		n.tags = map[string]string{}
		for k, v := range xn.Tags {
			n.tags[k] = v
		}
	}
	if xn.ID != "" {
		if prev, ok := b.ids[xn.ID]; ok {
			tracer().Errorf("duplicate id %q, node %d replaces node %d", xn.ID, id, prev)
		}
		b.ids[xn.ID] = id
	}
	if xn.Target != "" {
		b.targets[id] = xn.Target
	}
	if xn.Watch != "" {
		b.watch[xn.Watch] = append(b.watch[xn.Watch], id)
	}
	n.listeners = append([]markup.Listener(nil), xn.Listeners...)

	switch xn.Kind {
	case markup.KindImage:
		n.image = &imageState{Src: xn.Src}
		if s.loader != nil && xn.Src != "" {
			n.image.Handle = s.loader.Load(xn.Src)
		}
		if anim := buildAnimation(n.style); anim != nil {
			n.anim = anim
			n.image.Frame = anim.cell(&n.style.Computed)
		}
	case markup.KindText:
		content, _ := b.tmpl.Content.Get(xn.ContentID)
		content = strings.TrimSpace(content)
		if isTemplated(content) {
			n.contentID = xn.ContentID
			b.subscriber = append(b.subscriber, id)
		}
		n.text = content
	case markup.KindSlot:
		n.slotOwner = b.scope
	case markup.KindCustom:
		n.outerExprs = xn.Expressions
		if tmpl, ok := s.comps.Lookup(xn.Custom); ok {
			n.template = tmpl
			n.component = xn.Custom
			n.built = false
		} else {
			tracer().Errorf("custom tag %q is not bound", xn.Custom)
		}
		// children wait detached until the component's slot exists
		if len(xn.Children) > 0 {
			holder := s.spawn()
			s.nodes[holder].style = style.New()
			for _, child := range xn.Children {
				cid := s.spawn()
				b.buildNode(cid, child)
				s.addChild(holder, cid)
			}
			n.unslotted = holder
		}
		if n.props == nil {
			n.props = map[string]string{}
		}
		for k, v := range xn.Defs {
			n.props[k] = v
		}
		return
	case markup.KindTemplate:
		// nested template elements don't render
		return
	}

	for _, child := range xn.Children {
		cid := s.spawn()
		b.buildNode(cid, child)
		s.addChild(id, cid)
	}
}

// finalize resolves id references collected during the build and stores the
// property subscriber list on the instance root.
func (b *builder) finalize() {
	s := b.scene
	for uiID, id := range b.ids {
		s.nodes[id].uiID = uiID
	}
	for id, targetName := range b.targets {
		if t, ok := b.ids[targetName]; ok {
			s.nodes[id].target = t
		} else {
			tracer().Errorf("target %q not found for node %d", targetName, id)
		}
	}
	for watchName, observers := range b.watch {
		if w, ok := b.ids[watchName]; ok {
			s.nodes[w].observers = observers
		} else {
			tracer().Errorf("undefined watch target %q", watchName)
		}
	}
	s.nodes[b.scope].subscribers = b.subscriber
}

// spliceSlots moves children parked under holder nodes into the slot
// placeholder of their component instance, then discards placeholder and
// holder.
func (s *Scene) spliceSlots() {
	for _, n := range s.nodes {
		if n == nil || n.unslotted == Nil {
			continue
		}
		var placeholder *node
		for _, p := range s.nodes {
			if p != nil && p.slotOwner == n.id {
				placeholder = p
				break
			}
		}
		if placeholder == nil {
			continue // component not built yet, try next pass
		}
		slotParent := s.alive(placeholder.parent)
		if slotParent == nil {
			tracer().Errorf("slot of node %d has no parent", n.id)
			continue
		}
		if holder := s.alive(n.unslotted); holder != nil {
			for _, child := range append([]NodeID(nil), holder.children...) {
				if child == slotParent.id {
					continue
				}
				s.nodes[child].insideSlot = n.id
				s.addChild(slotParent.id, child)
			}
		}
		holderID := n.unslotted
		n.unslotted = Nil
		if p := s.alive(placeholder.parent); p != nil {
			p.children = removeID(p.children, placeholder.id)
		}
		s.despawn(placeholder.id)
		s.despawn(holderID)
	}
}

// rebuildInstance tears an instance down to its root and marks it for
// rebuilding with a new template. Children that were spliced into the
// instance's slot are parked on a holder and re-spliced after the rebuild.
func (s *Scene) rebuildInstance(n *node, tmpl *markup.Template) {
	var slotted []NodeID
	for _, m := range s.nodes {
		if m != nil && m.insideSlot == n.id {
			slotted = append(slotted, m.id)
		}
	}
	if len(slotted) > 0 {
		holder := s.spawn()
		s.nodes[holder].style = style.New()
		for _, c := range slotted {
			s.nodes[c].insideSlot = Nil
			s.addChild(holder, c)
		}
		n.unslotted = holder
	}
	for _, c := range append([]NodeID(nil), n.children...) {
		s.despawn(c)
	}
	n.children = nil
	n.subscribers = nil
	n.expressions = append([]markup.ExprToken(nil), n.outerExprs...)
	n.image = nil
	n.anim = nil
	n.tags = nil
	n.text = ""
	n.contentID = 0
	n.uiID = ""
	n.template = tmpl
	n.built = false
}

// runOnSpawn fires on_spawn listeners of freshly built nodes. The listeners
// are removed afterwards so they run exactly once.
func (s *Scene) runOnSpawn() {
	for _, n := range s.nodes {
		if n == nil || len(n.listeners) == 0 {
			continue
		}
		var kept []markup.Listener
		var fire []markup.Listener
		for _, l := range n.listeners {
			if l.Event == markup.OnSpawn {
				fire = append(fire, l)
			} else {
				kept = append(kept, l)
			}
		}
		if len(fire) == 0 {
			continue
		}
		n.listeners = kept
		for _, l := range fire {
			for _, fn := range l.Fns {
				s.fns.Call(fn, n.id)
			}
		}
	}
}
