package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/hui/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const menuDoc = `<?xml version="1.0" encoding="utf-8"?>
<!-- main menu -->
<template>
    <name>menu</name>
    <property name="title">Untitled</property>
    <node padding="10px" id="panel">
        <text font_size="20">{title}</text>
        <button on_press="start_game" hover:background="#FFF" watch="panel">
            <text>Start</text>
        </button>
        <slot/>
    </node>
</template>
`

func TestParseMenuTemplate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	tmpl, err := Parse(menuDoc, nil)
	if err != nil {
		t.Fatalf("expected the menu document to parse, got error: %v", err)
	}
	if tmpl.Name != "menu" {
		t.Errorf("expected template name to be menu, is %q", tmpl.Name)
	}
	if tmpl.Properties["title"] != "Untitled" {
		t.Errorf("expected a title property default, is %v", tmpl.Properties)
	}
	if len(tmpl.Root) != 1 {
		t.Fatalf("expected exactly one root node, got %d", len(tmpl.Root))
	}
	root := tmpl.Root[0]
	if root.Kind != KindNode || root.ID != "panel" || len(root.Styles) != 1 {
		t.Errorf("root node parsed wrong: %+v", root)
	}
	if len(root.Children) != 3 {
		t.Fatalf("expected 3 children under the root, got %d", len(root.Children))
	}
	text, button, slot := root.Children[0], root.Children[1], root.Children[2]
	if text.Kind != KindText || button.Kind != KindButton || slot.Kind != KindSlot {
		t.Errorf("child kinds parsed wrong: %v %v %v", text.Kind, button.Kind, slot.Kind)
	}
	if content, ok := tmpl.Content.Get(text.ContentID); !ok || content != "{title}" {
		t.Errorf("expected text content {title}, is %q", content)
	}
	if len(button.Listeners) != 1 || button.Listeners[0].Event != OnPress ||
		button.Listeners[0].Fns[0] != "start_game" {
		t.Errorf("button listener parsed wrong: %v", button.Listeners)
	}
	if button.Watch != "panel" {
		t.Errorf("expected button to watch the panel, is %q", button.Watch)
	}
	if len(button.Styles) != 1 || button.Styles[0].State != style.StateHover {
		t.Errorf("expected a hover-wrapped background, is %v", button.Styles)
	}
}

func TestParseCustomElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	tmpl, err := Parse(`<template>
        <fancy_button label="Play" width="{w}" tag:kind="primary"/>
    </template>`, nil)
	if err != nil {
		t.Fatalf("expected the document to parse, got error: %v", err)
	}
	node := tmpl.Root[0]
	if node.Kind != KindCustom || node.Custom != "fancy_button" {
		t.Fatalf("expected a custom element, is %v", node)
	}
	// unknown keys on custom elements become property definitions
	if node.Defs["label"] != "Play" {
		t.Errorf("expected label to become a property definition, is %v", node.Defs)
	}
	if len(node.Expressions) != 1 || node.Expressions[0].Key != "w" {
		t.Errorf("expected width to stay a deferred expression, is %v", node.Expressions)
	}
	if node.Tags["kind"] != "primary" {
		t.Errorf("expected a tag definition, is %v", node.Tags)
	}
}

func TestParseRejectsBadBuiltinAttr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	_, err := Parse(`<template><node width="sideways"/></template>`, nil)
	if err == nil {
		t.Fatal("expected a bad width on a built-in element to fail, didn't")
	}
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected a *ParseError, got %T", err)
	}
	if perr.Line != 1 {
		t.Errorf("expected the error on line 1, is %d", perr.Line)
	}
	_, err = Parse(`<template><node frobnicate="10px"/></template>`, nil)
	if err == nil {
		t.Error("expected an unknown key on a built-in element to fail, didn't")
	}
}

func TestParseUnclosedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	_, err := Parse(`<template><node><text>hi</text></template>`, nil)
	if err == nil {
		t.Fatal("expected an unclosed node to fail, didn't")
	}
	if !strings.Contains(err.Error(), "unclosed tag <node>") {
		t.Errorf("expected the error to name the unclosed tag, is %q", err.Error())
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	_, err := Parse(`<template><node/></template><node/>`, nil)
	if err == nil {
		t.Fatal("expected content after the closing root tag to fail, didn't")
	}
	if !strings.Contains(err.Error(), "trailing content") {
		t.Errorf("expected a trailing content error, is %q", err.Error())
	}
	// trailing whitespace and comments are fine
	if _, err = Parse("<template><node/></template>\n<!-- eof -->\n", nil); err != nil {
		t.Errorf("expected trailing whitespace and comments to pass, got error: %v", err)
	}
}

func TestParseSkipsComments(t *testing.T) {
	tmpl, err := Parse(`<template>
        <!-- outer comment -->
        <node>
            <!-- inner comment -->
            <text>ok</text>
        </node>
    </template>`, nil)
	if err != nil {
		t.Fatalf("expected comments to be skipped, got error: %v", err)
	}
	if len(tmpl.Root) != 1 || len(tmpl.Root[0].Children) != 1 {
		t.Errorf("comments leaked into the tree: %+v", tmpl.Root)
	}
}

func TestExprTokenCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.markup")
	defer teardown()
	//
	props := map[string]string{"w": "50px", "greeting": "hi there"}
	tok := ExprToken{Ident: "width", Key: "w"}
	attr, ok := tok.Compile(props, nil)
	if !ok || attr.Class != AttrStyle {
		t.Fatalf("expected the token to compile to a style, is %v (%v)", attr, ok)
	}
	if attr.Style.Kind != style.KindWidth || attr.Style.Val != style.Px(50) {
		t.Errorf("expected width 50px, is %v", attr.Style)
	}
	// a value failing interpretation forwards as a property definition
	tok = ExprToken{Ident: "label", Key: "greeting"}
	attr, ok = tok.Compile(props, nil)
	if !ok || attr.Class != AttrProperty || attr.Value != "hi there" {
		t.Errorf("expected a property definition, is %v (%v)", attr, ok)
	}
	tok = ExprToken{Ident: "width", Key: "missing"}
	if _, ok = tok.Compile(props, nil); ok {
		t.Error("expected a missing property not to compile, did")
	}
}

func TestExprKeyRecognition(t *testing.T) {
	if key, ok := exprKey(" { size } "); !ok || key != "size" {
		t.Errorf("expected a padded placeholder to be recognized, is %q (%v)", key, ok)
	}
	if _, ok := exprKey("{}"); ok {
		t.Error("expected an empty placeholder to be rejected, isn't")
	}
	if _, ok := exprKey("px {size}"); ok {
		t.Error("expected a partial placeholder to be rejected, isn't")
	}
}

func TestStateWrappedExpression(t *testing.T) {
	tmpl, err := Parse(`<template><node hover:background="{col}"/></template>`, nil)
	if err != nil {
		t.Fatalf("expected the document to parse, got error: %v", err)
	}
	node := tmpl.Root[0]
	if len(node.Expressions) != 1 || node.Expressions[0].Prefix != "hover" {
		t.Fatalf("expected a hover-prefixed expression, is %v", node.Expressions)
	}
	attr, ok := node.Expressions[0].Compile(map[string]string{"col": "#FFF"}, nil)
	if !ok || attr.Class != AttrStyle || attr.Style.State != style.StateHover {
		t.Errorf("expected a hover style after compilation, is %v", attr)
	}
}
