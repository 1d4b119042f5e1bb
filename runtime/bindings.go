package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/hui/markup"
)

// FunctionBindings maps the function names used in on_* attributes to host
// callbacks. The callback receives the node the listener fired on.
type FunctionBindings struct {
	fns map[string]func(NodeID)
}

func NewFunctionBindings() *FunctionBindings {
	return &FunctionBindings{fns: map[string]func(NodeID){}}
}

// Register binds a callback. Re-registering a name replaces the binding.
func (b *FunctionBindings) Register(name string, fn func(NodeID)) {
	b.fns[name] = fn
}

// Call invokes a bound callback by name.
func (b *FunctionBindings) Call(name string, id NodeID) {
	fn, ok := b.fns[name]
	if !ok {
		tracer().Errorf("function %q is not bound", name)
		return
	}
	fn(id)
}

// ComponentBindings maps custom element names to their templates.
type ComponentBindings struct {
	comps map[string]*markup.Template
}

func NewComponentBindings() *ComponentBindings {
	return &ComponentBindings{comps: map[string]*markup.Template{}}
}

// Register binds a template to a custom element name. Re-registering a name
// replaces the binding.
func (b *ComponentBindings) Register(name string, tmpl *markup.Template) {
	b.comps[name] = tmpl
}

// Lookup returns the template registered under name.
func (b *ComponentBindings) Lookup(name string) (*markup.Template, bool) {
	tmpl, ok := b.comps[name]
	return tmpl, ok
}
