package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/hui/markup"
	"github.com/npillmayer/hui/style"
)

// NodeID is a handle to a scene node. Handles are arena indices; they stay
// valid until the node is removed and are never reused within one scene.
type NodeID int

// Nil is the invalid node handle.
const Nil NodeID = -1

// Interaction is the pointer state of a node, fed in by the host.
type Interaction uint8

// Interaction states.
const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	return [...]string{"none", "hovered", "pressed"}[i]
}

// imageState is the visual state of an image node.
type imageState struct {
	Src    string
	Handle style.Handle
	Frame  int // atlas cell index
}

// node is one live scene node. All cross-references are arena handles.
type node struct {
	id       NodeID
	parent   NodeID
	children []NodeID

	kind   markup.NodeKind
	custom string

	style *style.Style
	final style.Computed

	text      string
	contentID int // raw text slot, kept only for templated content

	scope       NodeID            // instance root owning this node's property scope
	props       map[string]string // on instance roots and custom nodes
	subscribers []NodeID          // on instance roots: property change listeners
	expressions []markup.ExprToken
	outerExprs  []markup.ExprToken // from the spawning custom element, survives rebuilds
	tags        map[string]string
	uiID        string
	target      NodeID
	observers   []NodeID // watchers advancing their timers with this node
	listeners   []markup.Listener

	image *imageState
	anim  *animState

	hover       interactionTimer
	pressed     interactionTimer
	interaction Interaction
	interactive bool // drives its own timers, set on first host input
	active      bool

	// instance roots
	template  *markup.Template
	component string // registered component name, empty for direct mounts
	built     bool

	slotOwner  NodeID // on slot placeholders: the owning instance root
	unslotted  NodeID // holder node with children waiting for a slot
	insideSlot NodeID // owner whose slot this node was spliced into
}

// Scene is a live arena of instantiated template nodes.
type Scene struct {
	nodes  []*node
	loader style.Loader
	fns    *FunctionBindings
	comps  *ComponentBindings
}

// NewScene creates an empty scene. The loader resolves resource paths during
// compilation; it may be nil.
func NewScene(loader style.Loader) *Scene {
	return &Scene{
		loader: loader,
		fns:    NewFunctionBindings(),
		comps:  NewComponentBindings(),
	}
}

// RegisterFunction binds a callback name usable in on_* attributes.
func (s *Scene) RegisterFunction(name string, fn func(NodeID)) {
	s.fns.Register(name, fn)
}

// RegisterComponent binds a template to a custom element name.
func (s *Scene) RegisterComponent(name string, tmpl *markup.Template) {
	s.comps.Register(name, tmpl)
}

// Mount instantiates a template. props seeds the instance property scope and
// takes precedence over the template's own property defaults. The returned
// handle is the instance root.
func (s *Scene) Mount(tmpl *markup.Template, props map[string]string) NodeID {
	root := s.spawn()
	n := s.nodes[root]
	n.template = tmpl
	n.scope = Nil
	n.props = map[string]string{}
	for k, v := range props {
		n.props[k] = v
	}
	s.settle()
	return root
}

// Remount swaps the template of a mounted instance and rebuilds its subtree,
// preserving children that were spliced into the instance's slot. This is
// the hot-reload path for directly mounted templates.
func (s *Scene) Remount(root NodeID, tmpl *markup.Template) {
	n := s.alive(root)
	if n == nil {
		return
	}
	s.rebuildInstance(n, tmpl)
	s.settle()
}

// Reload re-registers a component template and rebuilds every mounted
// instance of it, preserving slotted children.
func (s *Scene) Reload(name string, tmpl *markup.Template) {
	s.comps.Register(name, tmpl)
	for _, n := range s.nodes {
		if n != nil && n.template != nil && n.component == name {
			s.rebuildInstance(n, tmpl)
		}
	}
	s.settle()
}

// Remove despawns a node and its subtree.
func (s *Scene) Remove(id NodeID) {
	n := s.alive(id)
	if n == nil {
		return
	}
	if p := s.alive(n.parent); p != nil {
		p.children = removeID(p.children, id)
	}
	s.despawn(id)
}

// Tick advances the scene by dt seconds: it settles pending builds, advances
// interaction timers, recomputes node styles and steps sprite animations.
func (s *Scene) Tick(dt float64) {
	s.settle()
	s.tickInteractions(dt)
	s.updateStyles()
	s.tickAnimations(dt)
}

// SetInteraction feeds the pointer state of a node. Edge transitions fire
// the node's on_press, on_enter and on_exit listeners.
func (s *Scene) SetInteraction(id NodeID, interaction Interaction) {
	n := s.alive(id)
	if n == nil {
		return
	}
	n.interactive = true
	if n.interaction == interaction {
		return
	}
	n.interaction = interaction
	switch interaction {
	case InteractionPressed:
		s.runListeners(n, markup.OnPress)
	case InteractionHovered:
		s.runListeners(n, markup.OnEnter)
	case InteractionNone:
		s.runListeners(n, markup.OnExit)
	}
}

// SetActive toggles the node's active state, engaging its active:-prefixed
// style overrides.
func (s *Scene) SetActive(id NodeID, active bool) {
	if n := s.alive(id); n != nil {
		n.active = active
	}
}

// NotifyChanged fires the node's on_change listeners. Hosts use this to
// signal widget-level value changes.
func (s *Scene) NotifyChanged(id NodeID) {
	if n := s.alive(id); n != nil {
		s.runListeners(n, markup.OnChange)
	}
}

// SetProperty updates one property of an instance scope and recompiles all
// subscribed nodes of that instance.
func (s *Scene) SetProperty(root NodeID, key, value string) {
	n := s.alive(root)
	if n == nil {
		return
	}
	if n.props == nil {
		n.props = map[string]string{}
	}
	n.props[key] = value
	s.compileContext(root)
}

// Property reads one property of an instance scope.
func (s *Scene) Property(root NodeID, key string) (string, bool) {
	n := s.alive(root)
	if n == nil {
		return "", false
	}
	v, ok := n.props[key]
	return v, ok
}

// Final returns the resolved style of the node as of the last Tick.
func (s *Scene) Final(id NodeID) *style.Computed {
	if n := s.alive(id); n != nil {
		return &n.final
	}
	return nil
}

// Text returns the compiled text content of a text node.
func (s *Scene) Text(id NodeID) string {
	if n := s.alive(id); n != nil {
		return n.text
	}
	return ""
}

// Frame returns the current sprite atlas cell of an image node.
func (s *Scene) Frame(id NodeID) int {
	if n := s.alive(id); n != nil && n.image != nil {
		return n.image.Frame
	}
	return 0
}

// ImageSource returns the resource path of an image node.
func (s *Scene) ImageSource(id NodeID) string {
	if n := s.alive(id); n != nil && n.image != nil {
		return n.image.Src
	}
	return ""
}

// Kind returns the template element kind behind a node.
func (s *Scene) Kind(id NodeID) markup.NodeKind {
	if n := s.alive(id); n != nil {
		return n.kind
	}
	return markup.KindNode
}

// Parent returns the parent handle, Nil for roots.
func (s *Scene) Parent(id NodeID) NodeID {
	if n := s.alive(id); n != nil {
		return n.parent
	}
	return Nil
}

// Children returns the child handles in document order.
func (s *Scene) Children(id NodeID) []NodeID {
	if n := s.alive(id); n != nil {
		return n.children
	}
	return nil
}

// Tags returns the tag:-prefixed attribute values of a node.
func (s *Scene) Tags(id NodeID) map[string]string {
	if n := s.alive(id); n != nil {
		return n.tags
	}
	return nil
}

// UIID returns the id attribute of a node, empty if it has none.
func (s *Scene) UIID(id NodeID) string {
	if n := s.alive(id); n != nil {
		return n.uiID
	}
	return ""
}

// Target returns the node referenced by the target="id" attribute, or Nil.
func (s *Scene) Target(id NodeID) NodeID {
	if n := s.alive(id); n != nil {
		return n.target
	}
	return Nil
}

// FindByID searches the subtree under root for a node carrying the given
// id attribute.
func (s *Scene) FindByID(root NodeID, uiID string) NodeID {
	n := s.alive(root)
	if n == nil {
		return Nil
	}
	if n.uiID == uiID {
		return root
	}
	for _, c := range n.children {
		if found := s.FindByID(c, uiID); found != Nil {
			return found
		}
	}
	return Nil
}

// --- Arena internals ----------------------------------------------------------

func (s *Scene) spawn() NodeID {
	n := &node{
		id:         NodeID(len(s.nodes)),
		parent:     Nil,
		scope:      Nil,
		target:     Nil,
		slotOwner:  Nil,
		unslotted:  Nil,
		insideSlot: Nil,
	}
	s.nodes = append(s.nodes, n)
	return n.id
}

// alive returns the node behind id, nil for removed or invalid handles.
func (s *Scene) alive(id NodeID) *node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

func (s *Scene) despawn(id NodeID) {
	n := s.alive(id)
	if n == nil {
		return
	}
	for _, c := range n.children {
		s.despawn(c)
	}
	s.nodes[id] = nil
}

func (s *Scene) addChild(parent, child NodeID) {
	p, c := s.alive(parent), s.alive(child)
	if p == nil || c == nil {
		return
	}
	if old := s.alive(c.parent); old != nil {
		old.children = removeID(old.children, child)
	}
	c.parent = parent
	p.children = append(p.children, child)
}

func removeID(list []NodeID, id NodeID) []NodeID {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (s *Scene) runListeners(n *node, event markup.EventKind) {
	for _, l := range n.listeners {
		if l.Event != event {
			continue
		}
		for _, fn := range l.Fns {
			s.fns.Call(fn, n.id)
		}
	}
}
