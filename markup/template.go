package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/hui/style"
)

// NodeKind is the element vocabulary of a template.
type NodeKind uint8

// Template element kinds. Element names outside the built-in vocabulary
// produce KindCustom nodes, instantiating a registered component.
const (
	KindNode NodeKind = iota
	KindImage
	KindButton
	KindText
	KindSlot
	KindTemplate
	KindCustom
)

func (k NodeKind) String() string {
	return [...]string{"node", "image", "button", "text", "slot", "template",
		"custom"}[k]
}

// Template is one parsed markup document. Templates are immutable after
// parsing; instantiation never mutates them.
type Template struct {
	Name       string            // from the <name> element, may be empty
	Properties map[string]string // property defaults from <property> elements
	Root       []*Node           // top-level nodes in document order
	Content    SlotTable         // interned text content
}

// Node is one element of a parsed template.
type Node struct {
	Kind      NodeKind
	Custom    string // component name, set for KindCustom only
	ContentID int    // text content slot, 0 = none

	Styles      []style.Attr      // statically parsed style directives
	Expressions []ExprToken       // attributes deferred to compile time
	Defs        map[string]string // property defaults on custom nodes
	Listeners   []Listener
	Tags        map[string]string

	Src    string // template path for embedding
	ID     string
	Target string
	Watch  string

	Children []*Node
}

// SlotTable interns node text content. Valid ids start at 1 so the zero
// value of Node.ContentID means "no text".
type SlotTable struct {
	entries []string
}

// Insert adds a text slot and returns its id.
func (t *SlotTable) Insert(s string) int {
	t.entries = append(t.entries, s)
	return len(t.entries)
}

// Get returns the text stored under id.
func (t *SlotTable) Get(id int) (string, bool) {
	if id < 1 || id > len(t.entries) {
		return "", false
	}
	return t.entries[id-1], true
}

// Len returns the number of interned text slots.
func (t *SlotTable) Len() int {
	return len(t.entries)
}

// EventKind names an interaction event an element can listen on.
type EventKind uint8

// Interaction events.
const (
	OnPress EventKind = iota
	OnEnter
	OnExit
	OnSpawn
	OnChange
)

func (e EventKind) String() string {
	return [...]string{"on_press", "on_enter", "on_exit", "on_spawn",
		"on_change"}[e]
}

// Listener binds registered function names to an interaction event.
type Listener struct {
	Event EventKind
	Fns   []string
}

// ExprToken is an attribute whose value is a property placeholder like
// width="{size}". It is kept uncompiled until instantiation, when the
// property scope is known.
type ExprToken struct {
	Prefix string // state or tag prefix, may be empty
	Ident  string // attribute key
	Key    string // property name inside the braces
}

// AttrClass discriminates the interpreted attribute union.
type AttrClass uint8

// Attribute classes in interpretation order.
const (
	AttrStyle AttrClass = iota
	AttrExpression
	AttrTag
	AttrWatch
	AttrID
	AttrTarget
	AttrPath
	AttrAction
	AttrProperty
)

// Attribute is one interpreted element attribute. Exactly the fields
// matching Class are meaningful.
type Attribute struct {
	Class    AttrClass
	Style    style.Attr
	Expr     ExprToken
	Listener Listener
	Key      string // tag and property attributes
	Value    string // tag, property and structural string attributes
}

// Compile resolves a deferred attribute against a property scope. It looks
// up the token's key, substitutes the value and re-runs the attribute
// interpretation. Values that fail interpretation become property
// definitions, which is how properties forward through nested components.
// The boolean is false when the property is missing from the scope.
func (tok ExprToken) Compile(props map[string]string, loader style.Loader) (Attribute, bool) {
	value, ok := props[tok.Key]
	if !ok {
		return Attribute{}, false
	}
	attr, err := attrFromParts(tok.Prefix, tok.Ident, value, loader)
	if err != nil {
		return Attribute{Class: AttrProperty, Key: tok.Ident, Value: value}, true
	}
	return attr, true
}
