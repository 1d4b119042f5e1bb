package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/hui/markup"
)

// compileContext recompiles the property scope rooted at entity and cascades
// the result to its subscribers. Instance roots first resolve their own
// deferred attributes against the surrounding scope; placeholder values that
// resolve to something other than a style, action, path or tag become
// property definitions of this scope, which is how properties forward into
// nested components.
func (s *Scene) compileContext(entity NodeID) {
	n := s.alive(entity)
	if n == nil {
		return
	}
	if len(n.expressions) > 0 {
		if parent := s.alive(n.scope); parent != nil && parent.props != nil {
			var defs [][2]string
			for _, expr := range n.expressions {
				attr, ok := expr.Compile(parent.props, s.loader)
				if !ok && n.props != nil {
					attr, ok = expr.Compile(n.props, s.loader)
				}
				if !ok {
					tracer().Errorf("property %q is not in scope", expr.Key)
					continue
				}
				if attr.Class == markup.AttrProperty {
					defs = append(defs, [2]string{attr.Key, attr.Value})
				}
			}
			if n.props == nil {
				n.props = map[string]string{}
			}
			for _, d := range defs {
				n.props[d[0]] = d[1]
			}
		}
	}
	for _, sub := range n.subscribers {
		m := s.alive(sub)
		if m == nil {
			continue
		}
		if sub != entity && m.props != nil {
			s.compileContext(sub)
		} else {
			s.compileNode(sub)
		}
		if m.contentID > 0 {
			s.compileText(sub)
		}
	}
}

// compileNode resolves the deferred attributes of one node against its
// property context and applies them.
func (s *Scene) compileNode(entity NodeID) {
	n := s.alive(entity)
	if n == nil || n.style == nil {
		return
	}
	ctx := n.props
	if ctx == nil {
		if sc := s.alive(n.scope); sc != nil {
			ctx = sc.props
		}
	}
	if ctx == nil {
		tracer().Errorf("node %d has no property context", entity)
		return
	}
	for _, expr := range n.expressions {
		attr, ok := expr.Compile(ctx, s.loader)
		if !ok {
			tracer().Errorf("property %q is not in scope", expr.Key)
			continue
		}
		switch attr.Class {
		case markup.AttrStyle:
			n.style.Add(attr.Style)
		case markup.AttrAction:
			n.listeners = upsertListener(n.listeners, attr.Listener)
		case markup.AttrPath:
			if n.image != nil {
				n.image.Src = attr.Value
				if s.loader != nil && attr.Value != "" {
					n.image.Handle = s.loader.Load(attr.Value)
				}
			}
		case markup.AttrTag:
			if n.tags == nil {
				n.tags = map[string]string{}
			}
			n.tags[attr.Key] = attr.Value
		default:
			tracer().Errorf("attribute %s of node %d cannot be dynamic", expr.Ident, entity)
		}
	}
}

// compileText substitutes property placeholders in the raw text content of a
// text node. Missing properties substitute to the empty string.
func (s *Scene) compileText(entity NodeID) {
	n := s.alive(entity)
	if n == nil || n.contentID == 0 {
		return
	}
	scope := s.alive(n.scope)
	if scope == nil || scope.template == nil {
		return
	}
	raw, ok := scope.template.Content.Get(n.contentID)
	if !ok {
		tracer().Errorf("text node %d has a dangling content slot", entity)
		return
	}
	n.text = compileContent(strings.TrimSpace(raw), scope.props)
}

// compileContent expands `{key}` placeholders in input. Malformed
// placeholders pass through verbatim.
func compileContent(input string, props map[string]string) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(input, '{')
		if i < 0 {
			b.WriteString(input)
			return b.String()
		}
		j := strings.IndexByte(input[i+1:], '}')
		if j <= 0 {
			b.WriteString(input)
			return b.String()
		}
		b.WriteString(input[:i])
		key := strings.TrimSpace(input[i+1 : i+1+j])
		if v, ok := props[key]; ok {
			b.WriteString(v)
		}
		input = input[i+j+2:]
	}
}

// isTemplated tells if a string contains at least one `{key}` placeholder.
func isTemplated(s string) bool {
	i := strings.IndexByte(s, '{')
	if i < 0 {
		return false
	}
	return strings.IndexByte(s[i+1:], '}') > 0
}

// upsertListener replaces an existing listener for the same event, so
// recompiling a node never stacks duplicate actions.
func upsertListener(list []markup.Listener, l markup.Listener) []markup.Listener {
	for i := range list {
		if list[i].Event == l.Event {
			list[i] = l
			return list
		}
	}
	return append(list, l)
}
