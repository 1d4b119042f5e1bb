package markup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/hui/style"
)

// ParseError is a syntax error with its position in the source.
type ParseError struct {
	Offset int
	Line   int // 1-based
	Col    int // 1-based, in bytes
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parse parses a template document. The loader resolves resource paths in
// style attributes; it may be nil.
func Parse(src string, loader style.Loader) (*Template, error) {
	p := &parser{src: src, loader: loader}
	p.skipCommentsAndSpace()
	if strings.HasPrefix(p.rest(), "<?") {
		end := strings.Index(p.rest(), "?>")
		if end < 0 {
			return nil, p.errf(p.pos, "unterminated `<?` header")
		}
		p.pos += end + 2
	}
	p.skipCommentsAndSpace()
	if !p.startsElement() {
		return nil, p.errf(p.pos, "expected a root element")
	}
	raw, err := p.parseRawNode()
	if err != nil {
		return nil, err
	}
	p.skipCommentsAndSpace()
	if p.pos < len(p.src) {
		return nil, p.errf(p.pos, "trailing content after </%s>", raw.name)
	}

	tmpl := &Template{Properties: map[string]string{}}
	for _, child := range raw.children {
		switch child.name {
		case "property":
			name := ""
			for _, a := range child.attrs {
				if a.prefix == "" && a.key == "name" {
					name = a.value
				}
			}
			if name != "" && child.text != "" {
				tmpl.Properties[name] = child.text
			}
		case "name":
			tmpl.Name = child.text
		default:
			node, err := p.buildNode(child, tmpl)
			if err != nil {
				return nil, err
			}
			tmpl.Root = append(tmpl.Root, node)
		}
	}
	tracer().Debugf("parsed template %q with %d root node(s)", tmpl.Name, len(tmpl.Root))
	return tmpl, nil
}

// --- Raw element scanning ----------------------------------------------------

type rawNode struct {
	prefix   string
	name     string
	text     string
	attrs    []rawAttr
	children []*rawNode
}

type rawAttr struct {
	prefix string
	key    string
	value  string
	pos    int
}

type parser struct {
	src    string
	pos    int
	loader style.Loader
}

func (p *parser) rest() string { return p.src[p.pos:] }

func (p *parser) errf(offset int, format string, args ...interface{}) *ParseError {
	line, col := 1, 1
	for i := 0; i < offset && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &ParseError{
		Offset: offset,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// skipCommentsAndSpace skips whitespace and `<!-- -->` comments.
func (p *parser) skipCommentsAndSpace() {
	for {
		p.skipSpace()
		if !strings.HasPrefix(p.rest(), "<!--") {
			return
		}
		end := strings.Index(p.rest(), "-->")
		if end < 0 {
			p.pos = len(p.src) // unterminated comment swallows the rest
			return
		}
		p.pos += end + 3
	}
}

// startsElement tells if the input continues with an opening tag.
func (p *parser) startsElement() bool {
	r := p.rest()
	return strings.HasPrefix(r, "<") && !strings.HasPrefix(r, "</")
}

func (p *parser) eat(tok string) bool {
	if strings.HasPrefix(p.rest(), tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

// snake scans a snake_case identifier: ASCII letters and underscores.
// Uppercase letters are tolerated.
func (p *parser) snake() string {
	start := p.pos
	for p.pos < len(p.src) {
		b := p.src[p.pos]
		if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// parseRawNode scans one element including its subtree. The caller must
// have checked startsElement.
func (p *parser) parseRawNode() (*rawNode, *ParseError) {
	p.eat("<")
	p.skipSpace()
	raw := &rawNode{}
	ident := p.snake()
	if p.eat(":") {
		raw.prefix = ident
		ident = p.snake()
	}
	if ident == "" {
		return nil, p.errf(p.pos, "expected an element name")
	}
	raw.name = ident

	var err *ParseError
	if raw.attrs, err = p.parseAttrs(); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eat("/>") {
		return raw, nil
	}
	if !p.eat(">") {
		return nil, p.errf(p.pos, "malformed tag <%s>", raw.name)
	}

	// children come first, trailing text afterwards
	for {
		p.skipCommentsAndSpace()
		if !p.startsElement() {
			break
		}
		child, err := p.parseRawNode()
		if err != nil {
			return nil, err
		}
		raw.children = append(raw.children, child)
	}

	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '<' {
		p.pos++
	}
	raw.text = strings.TrimSpace(p.src[start:p.pos])

	tagPos := p.pos
	if !p.eat("</") {
		return nil, p.errf(tagPos, "unclosed tag <%s>", raw.name)
	}
	endIdent := p.snake()
	endPrefix := ""
	if p.eat(":") {
		endPrefix = endIdent
		endIdent = p.snake()
	}
	if !p.eat(">") || endIdent != raw.name || endPrefix != raw.prefix {
		return nil, p.errf(tagPos, "unclosed tag <%s>", raw.name)
	}
	return raw, nil
}

func (p *parser) parseAttrs() ([]rawAttr, *ParseError) {
	var attrs []rawAttr
	for {
		p.skipSpace()
		r := p.rest()
		if r == "" || strings.HasPrefix(r, ">") || strings.HasPrefix(r, "/>") {
			return attrs, nil
		}
		attr := rawAttr{pos: p.pos}
		ident := p.snake()
		if ident == "" {
			return nil, p.errf(p.pos, "expected an attribute name")
		}
		if p.eat(":") {
			attr.prefix = ident
			ident = p.snake()
		}
		attr.key = ident
		if !p.eat("=") {
			return nil, p.errf(p.pos, "attribute %q is missing a value", attr.key)
		}
		if !p.eat(`"`) {
			return nil, p.errf(p.pos, "attribute %q value must be quoted", attr.key)
		}
		end := strings.IndexByte(p.rest(), '"')
		if end < 0 {
			return nil, p.errf(p.pos, "attribute %q value is unterminated", attr.key)
		}
		attr.value = p.rest()[:end]
		p.pos += end + 1
		attrs = append(attrs, attr)
	}
}

// --- Element interpretation ----------------------------------------------------

var builtinKinds = map[string]NodeKind{
	"node":     KindNode,
	"image":    KindImage,
	"button":   KindButton,
	"text":     KindText,
	"slot":     KindSlot,
	"template": KindTemplate,
}

// buildNode turns a raw element into a template node, interpreting its
// attributes. Attributes on custom elements that fail interpretation fall
// back to property definitions; on built-in elements they are errors.
func (p *parser) buildNode(raw *rawNode, tmpl *Template) (*Node, *ParseError) {
	node := &Node{}
	if kind, ok := builtinKinds[raw.name]; ok {
		node.Kind = kind
	} else {
		node.Kind = KindCustom
		node.Custom = raw.name
	}
	if raw.text != "" {
		node.ContentID = tmpl.Content.Insert(raw.text)
	}

	for _, a := range raw.attrs {
		attr, err := attrFromParts(a.prefix, a.key, a.value, p.loader)
		if err != nil {
			if node.Kind != KindCustom {
				return nil, p.errf(a.pos, "attribute %s=%q: %v", a.key, a.value, err)
			}
			attr = Attribute{Class: AttrProperty, Key: a.key, Value: a.value}
		}
		node.apply(attr)
	}

	for _, child := range raw.children {
		c, err := p.buildNode(child, tmpl)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, c)
	}
	return node, nil
}

// apply stores one interpreted attribute on the node.
func (n *Node) apply(attr Attribute) {
	switch attr.Class {
	case AttrStyle:
		n.Styles = append(n.Styles, attr.Style)
	case AttrExpression:
		n.Expressions = append(n.Expressions, attr.Expr)
	case AttrTag:
		if n.Tags == nil {
			n.Tags = map[string]string{}
		}
		n.Tags[attr.Key] = attr.Value
	case AttrWatch:
		n.Watch = attr.Value
	case AttrID:
		n.ID = attr.Value
	case AttrTarget:
		n.Target = attr.Value
	case AttrPath:
		n.Src = attr.Value
	case AttrAction:
		n.Listeners = append(n.Listeners, attr.Listener)
	case AttrProperty:
		if n.Defs == nil {
			n.Defs = map[string]string{}
		}
		n.Defs[attr.Key] = attr.Value
	}
}

// attrFromParts interprets one raw attribute. The interpretation order is
// fixed: property placeholders, tag definitions, structural keys, and
// finally the style vocabulary (with optional interaction-state prefix).
func attrFromParts(prefix, key, value string, loader style.Loader) (Attribute, error) {
	if propKey, ok := exprKey(value); ok {
		return Attribute{
			Class: AttrExpression,
			Expr:  ExprToken{Prefix: prefix, Ident: key, Key: propKey},
		}, nil
	}
	if prefix == "tag" {
		return Attribute{Class: AttrTag, Key: key, Value: value}, nil
	}
	switch key {
	case "watch":
		return Attribute{Class: AttrWatch, Value: value}, nil
	case "id":
		return Attribute{Class: AttrID, Value: value}, nil
	case "target":
		return Attribute{Class: AttrTarget, Value: value}, nil
	case "src":
		return Attribute{Class: AttrPath, Value: value}, nil
	case "on_enter":
		return listenerAttr(OnEnter, value), nil
	case "on_exit":
		return listenerAttr(OnExit, value), nil
	case "on_press":
		return listenerAttr(OnPress, value), nil
	case "on_spawn":
		return listenerAttr(OnSpawn, value), nil
	case "on_change":
		return listenerAttr(OnChange, value), nil
	}

	state := style.StateNone
	if prefix != "" {
		s, ok := style.StateFromPrefix(prefix)
		if !ok {
			return Attribute{}, fmt.Errorf("unknown attribute prefix %q", prefix)
		}
		state = s
	}
	sattr, err := style.ParseStyleAttr(key, value, loader)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Class: AttrStyle, Style: sattr.WithState(state)}, nil
}

func listenerAttr(event EventKind, value string) Attribute {
	var fns []string
	for _, fn := range strings.Split(value, ",") {
		if fn = strings.TrimSpace(fn); fn != "" {
			fns = append(fns, fn)
		}
	}
	return Attribute{Class: AttrAction, Listener: Listener{Event: event, Fns: fns}}
}

// exprKey recognizes property placeholder values. The whole value must be a
// single `{ key }` expression; partial placeholders are not expressions
// (they are handled by text content substitution instead).
func exprKey(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if len(v) < 3 || v[0] != '{' || v[len(v)-1] != '}' {
		return "", false
	}
	key := strings.TrimSpace(v[1 : len(v)-1])
	if key == "" || strings.ContainsAny(key, "{}") {
		return "", false
	}
	return key, true
}
