package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by ParseStyleAttr for attribute keys outside the
// style vocabulary. Callers use it to fall back to treating the attribute as
// a plain template property.
var ErrUnknownKey = errors.New("not a style attribute")

// StateFromPrefix maps an attribute key prefix to an interaction state.
// The second return value is false for prefixes that are not state modifiers.
func StateFromPrefix(prefix string) (State, bool) {
	switch prefix {
	case "hover":
		return StateHover, true
	case "pressed":
		return StatePressed, true
	case "active":
		return StateActive, true
	}
	return StateNone, false
}

// ParseStyleAttr parses one raw attribute as a style directive. The key must
// be the bare attribute name without any state prefix; callers wrap the
// result via Attr.WithState. Unknown keys return ErrUnknownKey, known keys
// with a malformed value return a descriptive error.
//
// The loader resolves resource paths (currently only the font attribute);
// it may be nil, in which case the path is kept unresolved.
func ParseStyleAttr(key, value string, loader Loader) (Attr, error) {
	switch key {
	case "top":
		return valAttr(KindTop, value)
	case "right":
		return valAttr(KindRight, value)
	case "bottom":
		return valAttr(KindBottom, value)
	case "left":
		return valAttr(KindLeft, value)
	case "width":
		return valAttr(KindWidth, value)
	case "height":
		return valAttr(KindHeight, value)
	case "min_width":
		return valAttr(KindMinWidth, value)
	case "min_height":
		return valAttr(KindMinHeight, value)
	case "max_width":
		return valAttr(KindMaxWidth, value)
	case "max_height":
		return valAttr(KindMaxHeight, value)
	case "padding":
		return rectAttr(KindPadding, value)
	case "margin":
		return rectAttr(KindMargin, value)
	case "border":
		return rectAttr(KindBorder, value)
	case "border_radius":
		return rectAttr(KindBorderRadius, value)
	case "outline":
		o, err := ParseOutline(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindOutline, Outline: o}, nil
	case "background":
		return colorAttr(KindBackground, value)
	case "border_color":
		return colorAttr(KindBorderColor, value)
	case "font":
		ref := &FontRef{Path: value}
		if loader != nil {
			ref.Handle = loader.Load(value)
		}
		return Attr{Kind: KindFont, Font: ref}, nil
	case "font_color":
		return colorAttr(KindFontColor, value)
	case "font_size":
		n, err := parseFullFloat(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindFontSize, Num: n}, nil
	case "text_layout":
		tl, err := ParseTextLayout(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindTextLayout, TextLayout: tl}, nil
	case "text_shadow":
		ts, err := ParseTextShadow(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindTextShadow, TextShadow: ts}, nil
	case "delay":
		d, err := ParseDuration(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindDelay, Num: d}, nil
	case "ease":
		e, ok := easeNames[strings.TrimSpace(value)]
		if !ok {
			return Attr{}, fmt.Errorf("%q is not a valid ease function", value)
		}
		return Attr{Kind: KindEasing, Ease: e}, nil
	case "image_color":
		return colorAttr(KindImageColor, value)
	case "image_region":
		r, err := ParseRegion(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindImageRegion, Region: &r}, nil
	case "image_mode":
		m, err := ParseImageMode(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindImageMode, ImageMode: &m}, nil
	case "position":
		return enumAttr(KindPosition, value, positionNames,
			"is not a valid position, try `absolute` `relative`")
	case "display":
		return enumAttr(KindDisplay, value, displayNames,
			"is not a valid display, try `none` `flex` `block` `grid`")
	case "zindex":
		return intAttr(KindZIndex, value)
	case "global_zindex":
		return intAttr(KindGlobalZIndex, value)
	case "aspect_ratio":
		n, err := parseFullFloat(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindAspectRatio, Num: n}, nil
	case "overflow":
		o, err := ParseOverflow(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindOverflow, Enum: int(o.X)<<8 | int(o.Y)}, nil
	case "overflow_clip_margin":
		cm, err := ParseClipMargin(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindClipMargin, ClipMargin: cm}, nil
	case "align_self":
		return enumAttr(KindAlignSelf, value, alignSelfNames,
			"is not a valid align_self, try `auto` `center` `start` `flex_start` `flex_end` `stretch` `end`")
	case "align_items":
		return enumAttr(KindAlignItems, value, alignItemsNames,
			"is not a valid align_items, try `default` `center` `start` `flex_start` `flex_end` `stretch` `end` `baseline`")
	case "align_content":
		return enumAttr(KindAlignContent, value, alignContentNames,
			"is not a valid align_content, try `center` `start` `flex_start` `flex_end` `stretch` `end` `space_evenly` `space_around` `space_between`")
	case "justify_self":
		return enumAttr(KindJustifySelf, value, justifySelfNames,
			"is not a valid justify_self, try `auto` `center` `start` `stretch` `end` `baseline`")
	case "justify_items":
		return enumAttr(KindJustifyItems, value, justifyItemsNames,
			"is not a valid justify_items, try `default` `center` `start` `stretch` `end` `baseline`")
	case "justify_content":
		return enumAttr(KindJustifyContent, value, justifyContentNames,
			"is not a valid justify_content, try `center` `start` `flex_start` `flex_end` `stretch` `end` `space_evenly` `space_around` `space_between`")
	case "flex_direction":
		return enumAttr(KindFlexDirection, value, flexDirectionNames,
			"is not a valid flex_direction, try `row` `column` `row_reverse` `column_reverse`")
	case "flex_wrap":
		return enumAttr(KindFlexWrap, value, flexWrapNames,
			"is not a valid flex_wrap, try `wrap` `no_wrap` `wrap_reverse`")
	case "flex_grow":
		n, err := parseFullFloat(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindFlexGrow, Num: n}, nil
	case "flex_shrink":
		n, err := parseFullFloat(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindFlexShrink, Num: n}, nil
	case "flex_basis":
		return valAttr(KindFlexBasis, value)
	case "row_gap":
		return valAttr(KindRowGap, value)
	case "column_gap":
		return valAttr(KindColumnGap, value)
	case "grid_auto_flow":
		return enumAttr(KindGridAutoFlow, value, gridAutoFlowNames,
			"is not a valid grid_auto_flow, try `row` `column` `row_dense` `column_dense`")
	case "grid_auto_rows":
		ts, err := ParseTracks(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridAutoRows, Tracks: ts}, nil
	case "grid_auto_columns":
		ts, err := ParseTracks(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridAutoColumns, Tracks: ts}, nil
	case "grid_template_rows":
		ts, err := ParseRepeatedTracks(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridTemplateRows, RTracks: ts}, nil
	case "grid_template_columns":
		ts, err := ParseRepeatedTracks(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridTemplateColumns, RTracks: ts}, nil
	case "grid_row":
		p, err := ParsePlacement(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridRow, Placement: p}, nil
	case "grid_column":
		p, err := ParsePlacement(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindGridColumn, Placement: p}, nil
	case "shadow_color":
		return colorAttr(KindShadowColor, value)
	case "shadow_offset":
		x, rest, err := scanVal(value)
		if err != nil {
			return Attr{}, err
		}
		y, rest, err := scanVal(rest)
		if err != nil {
			return Attr{}, err
		}
		if err := atEnd(rest, "is not a valid shadow_offset, try `10px 10px`"); err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindShadowOffset, Val: x, Val2: y}, nil
	case "shadow_blur":
		return valAttr(KindShadowBlur, value)
	case "shadow_spread":
		return valAttr(KindShadowSpread, value)
	case "atlas":
		a, err := ParseAtlas(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindAtlas, Atlas: &a}, nil
	case "duration":
		d, err := ParseDuration(value)
		if err != nil {
			return Attr{}, err
		}
		return Attr{Kind: KindDuration, Num: d}, nil
	case "direction":
		d, ok := directionNames[strings.TrimSpace(value)]
		if !ok {
			return Attr{}, fmt.Errorf("%q is not a valid direction, try `forward` `reverse` `alternate_forward` `alternate_reverse`", value)
		}
		return Attr{Kind: KindDirection, Direction: AnimDirection(d)}, nil
	case "iterations":
		return intAttr(KindIterations, value)
	case "fps":
		return intAttr(KindFPS, value)
	case "frames":
		return Attr{Kind: KindFrames, Ints: parseIntList(value)}, nil
	}
	return Attr{}, ErrUnknownKey
}

func valAttr(kind Kind, value string) (Attr, error) {
	v, err := ParseVal(value)
	if err != nil {
		return Attr{}, err
	}
	return Attr{Kind: kind, Val: v}, nil
}

func rectAttr(kind Kind, value string) (Attr, error) {
	r, err := ParseUiRect(value)
	if err != nil {
		return Attr{}, err
	}
	return Attr{Kind: kind, Rect: r}, nil
}

func colorAttr(kind Kind, value string) (Attr, error) {
	c, err := ParseColor(value)
	if err != nil {
		return Attr{}, err
	}
	return Attr{Kind: kind, Color: c}, nil
}

func intAttr(kind Kind, value string) (Attr, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return Attr{}, fmt.Errorf("%q is not a valid integer", value)
	}
	return Attr{Kind: kind, Int: n}, nil
}

func enumAttr(kind Kind, value string, names map[string]int, hint string) (Attr, error) {
	n, ok := names[strings.TrimSpace(value)]
	if !ok {
		return Attr{}, fmt.Errorf("%q %s", value, hint)
	}
	return Attr{Kind: kind, Enum: n}, nil
}

// --- Scalar value grammars ---------------------------------------------------

// ParseVal parses a single length value: number + px/%/vw/vh/vmin/vmax,
// the keyword `auto`, or a bare `0` (treated as 0px).
func ParseVal(s string) (Val, error) {
	v, rest, err := scanVal(s)
	if err != nil {
		return Val{}, err
	}
	if err := atEnd(rest, "cannot be parsed as a length value"); err != nil {
		return Val{}, err
	}
	return v, nil
}

func scanVal(s string) (Val, string, error) {
	s = skipSpace(s)
	if rest, ok := eatWord(s, "auto"); ok {
		return AutoVal(), rest, nil
	}
	n, rest, err := scanFloat(s)
	if err != nil {
		return Val{}, s, fmt.Errorf("%q cannot be parsed as `Val`, expected number + `px`/`%%`/`vw`/`vh`/`vmin`/`vmax`", firstToken(s))
	}
	unit, rest2 := scanUnitSuffix(rest)
	switch unit {
	case "px":
		return Px(n), rest2, nil
	case "%":
		return Percent(n), rest2, nil
	case "vw":
		return Vw(n), rest2, nil
	case "vh":
		return Vh(n), rest2, nil
	case "vmin":
		return VMin(n), rest2, nil
	case "vmax":
		return VMax(n), rest2, nil
	case "":
		if n == 0 {
			return Px(0), rest, nil
		}
	}
	return Val{}, s, fmt.Errorf("%q cannot be parsed as `Val`, expected number + `px`/`%%`/`vw`/`vh`/`vmin`/`vmax`", firstToken(s))
}

// ParseDuration parses a time span: `3s`, `100ms` or a bare number of
// seconds. The result is in seconds.
func ParseDuration(s string) (float64, error) {
	s = skipSpace(s)
	n, rest, err := scanFloat(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid duration, try `(float)s` or `(float)ms`", s)
	}
	unit, rest := scanUnitSuffix(rest)
	if err := atEnd(rest, "is not a valid duration"); err != nil {
		return 0, err
	}
	switch unit {
	case "s", "":
		return n, nil
	case "ms":
		return n / 1000, nil
	}
	return 0, fmt.Errorf("%q is not a valid duration unit, try `s` or `ms`", unit)
}

// ParseUiRect parses 1, 2 or 4 length values:
//
//	all        `10px`
//	axes       `10px 20px`      (horizontal vertical)
//	full rect  `1px 2px 3px 4px` (top right bottom left)
func ParseUiRect(s string) (UiRect, error) {
	var vals []Val
	rest := s
	for {
		rest = skipSpace(rest)
		if rest == "" {
			break
		}
		v, r, err := scanVal(rest)
		if err != nil {
			return UiRect{}, err
		}
		vals = append(vals, v)
		rest = r
	}
	switch len(vals) {
	case 1:
		return RectAll(vals[0]), nil
	case 2:
		return RectAxes(vals[0], vals[1]), nil
	case 4:
		return UiRect{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return UiRect{}, fmt.Errorf("%q is not a valid rect, try all:`10px` axes:`10px 10px` full:`10px 10px 10px 10px`", s)
}

func parseBorderRect(s string) (BorderRect, string, error) {
	var vals []float64
	rest := s
	for len(vals) < 4 {
		r := skipSpace(rest)
		n, r2, err := scanFloat(r)
		if err != nil {
			break
		}
		unit, r3 := scanUnitSuffix(r2)
		if unit != "px" {
			break
		}
		vals = append(vals, n)
		rest = r3
	}
	switch len(vals) {
	case 1:
		return BorderAll(vals[0]), rest, nil
	case 2:
		return BorderAxes(vals[0], vals[1]), rest, nil
	case 4:
		return BorderRect{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, rest, nil
	}
	return BorderRect{}, s, fmt.Errorf("%q is not a valid border rect, try all:`10px` axes:`10px 10px` full:`10px 10px 10px 10px`", s)
}

// --- Colors ------------------------------------------------------------------

// ParseColor parses hex notation (#RGB #RGBA #RRGGBB #RRGGBBAA, sRGB-encoded)
// or functional notation (rgb(r,g,b), rgba(r,g,b,a), linear components).
func ParseColor(s string) (Color, error) {
	c, rest, err := scanColor(s)
	if err != nil {
		return Color{}, err
	}
	if err := atEnd(rest, "is not a valid color"); err != nil {
		return Color{}, err
	}
	return c, nil
}

func scanColor(s string) (Color, string, error) {
	s = skipSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return scanHexColor(s[1:])
	case strings.HasPrefix(s, "rgba"):
		return scanFnColor(s[4:], 4)
	case strings.HasPrefix(s, "rgb"):
		return scanFnColor(s[3:], 3)
	}
	return Color{}, s, fmt.Errorf("%q is not a valid color, try `#RGB` `#RRGGBB` `rgb(r,g,b)` `rgba(r,g,b,a)`", firstToken(s))
}

func scanHexColor(s string) (Color, string, error) {
	n := 0
	for n < len(s) && isHexDigit(s[n]) {
		n++
	}
	digits, rest := s[:n], s[n:]
	nib := func(i int) uint8 {
		b, _ := strconv.ParseUint(digits[i:i+1]+digits[i:i+1], 16, 8)
		return uint8(b)
	}
	byteAt := func(i int) uint8 {
		b, _ := strconv.ParseUint(digits[i:i+2], 16, 8)
		return uint8(b)
	}
	switch n {
	case 3:
		return SRGBA8(nib(0), nib(1), nib(2), 255), rest, nil
	case 4:
		return SRGBA8(nib(0), nib(1), nib(2), nib(3)), rest, nil
	case 6:
		return SRGBA8(byteAt(0), byteAt(2), byteAt(4), 255), rest, nil
	case 8:
		return SRGBA8(byteAt(0), byteAt(2), byteAt(4), byteAt(6)), rest, nil
	}
	return Color{}, s, fmt.Errorf("`#%s` is not a valid hex color, need 3, 4, 6 or 8 hex digits", digits)
}

func scanFnColor(s string, comps int) (Color, string, error) {
	rest, err := expect(s, "(")
	if err != nil {
		return Color{}, s, err
	}
	var vals [4]float64
	vals[3] = 1
	for i := 0; i < comps; i++ {
		if i > 0 {
			if rest, err = expect(rest, ","); err != nil {
				return Color{}, s, err
			}
		}
		var n float64
		if n, rest, err = scanFloat(skipSpace(rest)); err != nil {
			return Color{}, s, fmt.Errorf("color component %d is not a number", i+1)
		}
		vals[i] = n
	}
	if rest, err = expect(rest, ")"); err != nil {
		return Color{}, s, err
	}
	return LinearRGBA(float32(vals[0]), float32(vals[1]), float32(vals[2]), float32(vals[3])), rest, nil
}

// --- Compound grammars ---------------------------------------------------------

// ParseOutline parses `width offset color`, e.g. `2px 1px #ff0000`.
func ParseOutline(s string) (Outline, error) {
	w, rest, err := scanVal(s)
	if err != nil {
		return Outline{}, err
	}
	o, rest, err := scanVal(rest)
	if err != nil {
		return Outline{}, err
	}
	c, rest, err := scanColor(rest)
	if err != nil {
		return Outline{}, err
	}
	if err := atEnd(rest, "is not a valid outline, try `(width) (offset) (color)`"); err != nil {
		return Outline{}, err
	}
	return Outline{Width: w, Offset: o, Color: c}, nil
}

// ParseTextShadow parses `(x,y) color`.
func ParseTextShadow(s string) (TextShadow, error) {
	off, rest, err := scanVec2(s)
	if err != nil {
		return TextShadow{}, err
	}
	c, rest, err := scanColor(rest)
	if err != nil {
		return TextShadow{}, err
	}
	if err := atEnd(rest, "is not a valid text shadow, try `(x,y) color`"); err != nil {
		return TextShadow{}, err
	}
	return TextShadow{Offset: off, Color: c}, nil
}

// ParseRegion parses two corner points: `(minx,miny)(maxx,maxy)`.
func ParseRegion(s string) (Region, error) {
	min, rest, err := scanVec2(s)
	if err != nil {
		return Region{}, err
	}
	max, rest, err := scanVec2(rest)
	if err != nil {
		return Region{}, err
	}
	if err := atEnd(rest, "is not a valid region, try `(float,float)(float,float)`"); err != nil {
		return Region{}, err
	}
	return Region{Min: min, Max: max}, nil
}

// ParseOverflow parses per-axis overflow: `visible hidden`.
func ParseOverflow(s string) (Overflow, error) {
	x, rest, err := scanOverflowAxis(s)
	if err != nil {
		return Overflow{}, err
	}
	y, rest, err := scanOverflowAxis(rest)
	if err != nil {
		return Overflow{}, err
	}
	if err := atEnd(rest, "is not a valid overflow"); err != nil {
		return Overflow{}, err
	}
	return Overflow{X: x, Y: y}, nil
}

func scanOverflowAxis(s string) (OverflowAxis, string, error) {
	word, rest := scanWord(skipSpace(s))
	switch word {
	case "visible":
		return OverflowVisible, rest, nil
	case "hidden":
		return OverflowHidden, rest, nil
	case "clip":
		return OverflowClip, rest, nil
	case "scroll":
		return OverflowScroll, rest, nil
	}
	return 0, s, fmt.Errorf("%q is not a valid overflow axis, try `visible` `hidden` `clip` `scroll`", word)
}

// ParseClipMargin parses `content_box|padding_box|border_box margin`.
func ParseClipMargin(s string) (ClipMargin, error) {
	word, rest := scanWord(skipSpace(s))
	var box ClipBox
	switch word {
	case "content_box":
		box = ContentBox
	case "padding_box":
		box = PaddingBox
	case "border_box":
		box = BorderBox
	default:
		return ClipMargin{}, fmt.Errorf("%q is not a valid clip box, try `content_box` `padding_box` `border_box`", word)
	}
	m, rest, err := scanFloat(skipSpace(rest))
	if err != nil {
		return ClipMargin{}, fmt.Errorf("clip margin needs a number, try `content_box (float)`")
	}
	if err := atEnd(rest, "is not a valid clip margin"); err != nil {
		return ClipMargin{}, err
	}
	return ClipMargin{Box: box, Margin: m}, nil
}

// ParseTextLayout parses `justify linebreak`, e.g. `center word_boundary`.
func ParseTextLayout(s string) (TextLayout, error) {
	jw, rest := scanWord(skipSpace(s))
	var j TextJustify
	switch jw {
	case "left":
		j = JustifyLeft
	case "center":
		j = JustifyCenter
	case "right":
		j = JustifyRight
	case "justified":
		j = Justified
	default:
		return TextLayout{}, fmt.Errorf("%q is not a valid text justify, try `left` `center` `right` `justified`", jw)
	}
	bw, rest := scanWord(skipSpace(rest))
	var b LineBreak
	switch bw {
	case "word_boundary":
		b = BreakWordBoundary
	case "any_character":
		b = BreakAnyCharacter
	case "no_wrap":
		b = BreakNoWrap
	case "word_or_character":
		b = BreakWordOrCharacter
	default:
		return TextLayout{}, fmt.Errorf("%q is not a valid line break, try `word_boundary` `any_character` `no_wrap` `word_or_character`", bw)
	}
	if err := atEnd(rest, "is not a valid text layout"); err != nil {
		return TextLayout{}, err
	}
	return TextLayout{Justify: j, Break: b}, nil
}

// ParseAtlas parses a sprite sheet description:
//
//	`(32,32) 4 1`                 size columns rows
//	`(32,32) 4 1 p(1,1)`          with per-cell padding
//	`(32,32) 4 1 o(2,2)`          with global offset
//	`(32,32) 4 1 p(1,1) o(2,2)`   with both
//
// The size also accepts a single number for square cells.
func ParseAtlas(s string) (Atlas, error) {
	size, rest, err := scanDimensions(s)
	if err != nil {
		return Atlas{}, fmt.Errorf("atlas has no valid value, try `(32, 32) 1 7 p(0, 0) o(0, 0)`")
	}
	cols, rest, err := scanInt(skipSpace(rest))
	if err != nil {
		return Atlas{}, fmt.Errorf("atlas needs a column count, try `(32, 32) 1 7`")
	}
	rows, rest, err := scanInt(skipSpace(rest))
	if err != nil {
		return Atlas{}, fmt.Errorf("atlas needs a row count, try `(32, 32) 1 7`")
	}
	atlas := Atlas{Size: size, Columns: cols, Rows: rows}
	for {
		rest = skipSpace(rest)
		if rest == "" {
			return atlas, nil
		}
		mark := rest[0]
		if mark != 'p' && mark != 'o' {
			return Atlas{}, fmt.Errorf("%q is not a valid atlas modifier, try `p(x,y)` or `o(x,y)`", firstToken(rest))
		}
		dims, r, err := scanDimensions(rest[1:])
		if err != nil {
			return Atlas{}, err
		}
		d := dims
		if mark == 'p' {
			atlas.Padding = &d
		} else {
			atlas.Offset = &d
		}
		rest = r
	}
}

// scanDimensions accepts `(x, y)` or a single number meaning a square.
func scanDimensions(s string) (UVec2, string, error) {
	s = skipSpace(s)
	if strings.HasPrefix(s, "(") {
		return scanUVec2(s)
	}
	n, rest, err := scanInt(s)
	if err != nil {
		return UVec2{}, s, fmt.Errorf("dimension has no valid value, try `(32, 32)` or `32`")
	}
	return UVec2{X: n, Y: n}, rest, nil
}

func scanVec2(s string) (Vec2, string, error) {
	rest, err := expect(s, "(")
	if err != nil {
		return Vec2{}, s, fmt.Errorf("%q is not a valid point, try `(float,float)`", firstToken(skipSpace(s)))
	}
	x, rest, err := scanFloat(skipSpace(rest))
	if err != nil {
		return Vec2{}, s, err
	}
	if rest, err = expect(rest, ","); err != nil {
		return Vec2{}, s, err
	}
	y, rest, err := scanFloat(skipSpace(rest))
	if err != nil {
		return Vec2{}, s, err
	}
	if rest, err = expect(rest, ")"); err != nil {
		return Vec2{}, s, err
	}
	return Vec2{X: x, Y: y}, rest, nil
}

func scanUVec2(s string) (UVec2, string, error) {
	v, rest, err := scanVec2(s)
	if err != nil {
		return UVec2{}, s, err
	}
	return UVec2{X: int(v.X), Y: int(v.Y)}, rest, nil
}

// ParseImageMode parses the image fitting mode:
//
//	`auto`
//	`stretch`
//	`true false 1`                       tiled: tile_x tile_y stretch
//	`10px stretch tile(1) 1`             sliced: border center sides corner
func ParseImageMode(s string) (ImageMode, error) {
	trimmed := strings.TrimSpace(s)
	switch trimmed {
	case "auto":
		return ImageMode{Kind: ImageAuto}, nil
	case "stretch":
		return ImageMode{Kind: ImageStretch}, nil
	}
	if m, err := parseImageTiled(trimmed); err == nil {
		return m, nil
	}
	if m, err := parseImageSliced(trimmed); err == nil {
		return m, nil
	}
	return ImageMode{}, fmt.Errorf("%q is not a valid image mode, try `10px tile(1) tile(1) 1` for nine slice or `true true 1` for tiled mode", s)
}

func parseImageTiled(s string) (ImageMode, error) {
	x, rest, err := scanBool(s)
	if err != nil {
		return ImageMode{}, err
	}
	y, rest, err := scanBool(rest)
	if err != nil {
		return ImageMode{}, err
	}
	n, rest, err := scanFloat(skipSpace(rest))
	if err != nil {
		return ImageMode{}, err
	}
	if err := atEnd(rest, "is not a valid tiled image mode"); err != nil {
		return ImageMode{}, err
	}
	return ImageMode{Kind: ImageTiled, TileX: x, TileY: y, Stretch: n}, nil
}

func parseImageSliced(s string) (ImageMode, error) {
	border, rest, err := parseBorderRect(s)
	if err != nil {
		return ImageMode{}, err
	}
	center, rest, err := scanSliceScale(rest)
	if err != nil {
		return ImageMode{}, err
	}
	sides, rest, err := scanSliceScale(rest)
	if err != nil {
		return ImageMode{}, err
	}
	corner, rest, err := scanFloat(skipSpace(rest))
	if err != nil {
		return ImageMode{}, err
	}
	if err := atEnd(rest, "is not a valid sliced image mode"); err != nil {
		return ImageMode{}, err
	}
	return ImageMode{
		Kind:           ImageSliced,
		Border:         border,
		CenterScale:    center,
		SidesScale:     sides,
		MaxCornerScale: corner,
	}, nil
}

// scanSliceScale accepts `stretch` or `tile(f)`.
func scanSliceScale(s string) (SliceScale, string, error) {
	word, rest := scanWord(skipSpace(s))
	switch word {
	case "stretch":
		return SliceScale{}, rest, nil
	case "tile":
		rest, err := expect(rest, "(")
		if err != nil {
			return SliceScale{}, s, err
		}
		n, rest, err := scanFloat(skipSpace(rest))
		if err != nil {
			return SliceScale{}, s, err
		}
		if rest, err = expect(rest, ")"); err != nil {
			return SliceScale{}, s, err
		}
		return SliceScale{Tile: true, Stretch: n}, rest, nil
	}
	return SliceScale{}, s, fmt.Errorf("%q is not a valid slice scale, try `stretch` or `tile(1)`", word)
}

func scanBool(s string) (bool, string, error) {
	word, rest := scanWord(skipSpace(s))
	switch word {
	case "true":
		return true, rest, nil
	case "false":
		return false, rest, nil
	}
	return false, s, fmt.Errorf("%q is not a valid bool, try `true` `false`", word)
}

// --- Grid grammars -------------------------------------------------------------

// ParseTracks parses a whitespace-separated track list, e.g. `auto 2fr 50px`.
func ParseTracks(s string) ([]Track, error) {
	var tracks []Track
	rest := s
	for {
		rest = skipSpace(rest)
		if rest == "" {
			return tracks, nil
		}
		t, r, err := scanTrack(rest)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
		rest = r
	}
}

func scanTrack(s string) (Track, string, error) {
	word, rest := scanWord(s)
	switch word {
	case "auto":
		return Track{Kind: TrackAuto}, rest, nil
	case "min":
		return Track{Kind: TrackMinContent}, rest, nil
	case "max":
		return Track{Kind: TrackMaxContent}, rest, nil
	}
	n, rest, err := scanFloat(s)
	if err != nil {
		return Track{}, s, fmt.Errorf("%q is not a valid grid track, try number + `px`/`%%`/`fr`/`flex`/`vh`/`vw`/`vmin`/`vmax` or `auto` `min` `max`", firstToken(s))
	}
	unit, rest := scanUnitSuffix(rest)
	kinds := map[string]TrackKind{
		"px": TrackPx, "%": TrackPercent, "fr": TrackFr, "flex": TrackFlex,
		"vh": TrackVh, "vw": TrackVw, "vmin": TrackVMin, "vmax": TrackVMax,
	}
	kind, ok := kinds[unit]
	if !ok {
		return Track{}, s, fmt.Errorf("%q is not a valid grid track unit", unit)
	}
	return Track{Kind: kind, N: n}, rest, nil
}

// ParseRepeatedTracks parses a list of `(repeat, track)` pairs.
func ParseRepeatedTracks(s string) ([]RepeatedTrack, error) {
	var tracks []RepeatedTrack
	rest := s
	for {
		rest = skipSpace(rest)
		if rest == "" {
			return tracks, nil
		}
		var err error
		var rt RepeatedTrack
		rt, rest, err = scanRepeatedTrack(rest)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, rt)
	}
}

func scanRepeatedTrack(s string) (RepeatedTrack, string, error) {
	rest, err := expect(s, "(")
	if err != nil {
		return RepeatedTrack{}, s, fmt.Errorf("repeated track syntax error, try `(repeats, size)`")
	}
	repeat, rest, err := scanInt(skipSpace(rest))
	if err != nil {
		return RepeatedTrack{}, s, fmt.Errorf("repeated track needs a repeat count, try `(repeats, size)`")
	}
	if rest, err = expect(rest, ","); err != nil {
		return RepeatedTrack{}, s, err
	}
	track, rest, err := scanTrack(skipSpace(rest))
	if err != nil {
		return RepeatedTrack{}, s, err
	}
	if rest, err = expect(rest, ")"); err != nil {
		return RepeatedTrack{}, s, err
	}
	return RepeatedTrack{Repeat: repeat, Track: track}, rest, nil
}

// ParsePlacement parses a grid placement expression:
//
//	auto | span(n) | start(n) | end(n) | start_span(n,m) | end_span(n,m)
func ParsePlacement(s string) (Placement, error) {
	word, rest := scanWord(skipSpace(s))
	if word == "auto" {
		if err := atEnd(rest, "is not a valid grid placement"); err != nil {
			return Placement{}, err
		}
		return Placement{Form: PlaceAuto}, nil
	}
	forms := map[string]struct {
		form PlacementForm
		args int
	}{
		"span":       {PlaceSpan, 1},
		"start":      {PlaceStart, 1},
		"end":        {PlaceEnd, 1},
		"start_span": {PlaceStartSpan, 2},
		"end_span":   {PlaceEndSpan, 2},
	}
	f, ok := forms[word]
	if !ok {
		return Placement{}, fmt.Errorf("%q is not a valid grid placement, try `auto` `span(n)` `start(n)` `end(n)` `start_span(n,m)` `end_span(n,m)`", word)
	}
	rest, err := expect(rest, "(")
	if err != nil {
		return Placement{}, err
	}
	a, rest, err := scanInt(skipSpace(rest))
	if err != nil {
		return Placement{}, err
	}
	b := 0
	if f.args == 2 {
		if rest, err = expect(rest, ","); err != nil {
			return Placement{}, err
		}
		if b, rest, err = scanInt(skipSpace(rest)); err != nil {
			return Placement{}, err
		}
	}
	if rest, err = expect(rest, ")"); err != nil {
		return Placement{}, err
	}
	if err := atEnd(rest, "is not a valid grid placement"); err != nil {
		return Placement{}, err
	}
	p := Placement{Form: f.form}
	switch f.form {
	case PlaceSpan:
		p.Span = a
	case PlaceStart, PlaceEnd:
		p.At = a
	case PlaceStartSpan, PlaceEndSpan:
		p.At, p.Span = a, b
	}
	return p, nil
}

// --- Keyword tables ------------------------------------------------------------

var positionNames = map[string]int{
	"relative": int(PositionRelative),
	"absolute": int(PositionAbsolute),
}

var displayNames = map[string]int{
	"flex":  int(DisplayFlex),
	"none":  int(DisplayNone),
	"block": int(DisplayBlock),
	"grid":  int(DisplayGrid),
}

var alignItemsNames = map[string]int{
	"default":    int(AlignItemsDefault),
	"center":     int(AlignItemsCenter),
	"start":      int(AlignItemsStart),
	"flex_start": int(AlignItemsFlexStart),
	"flex_end":   int(AlignItemsFlexEnd),
	"stretch":    int(AlignItemsStretch),
	"end":        int(AlignItemsEnd),
	"baseline":   int(AlignItemsBaseline),
}

var alignSelfNames = map[string]int{
	"auto":       int(AlignSelfAuto),
	"center":     int(AlignSelfCenter),
	"start":      int(AlignSelfStart),
	"flex_start": int(AlignSelfFlexStart),
	"flex_end":   int(AlignSelfFlexEnd),
	"stretch":    int(AlignSelfStretch),
	"end":        int(AlignSelfEnd),
}

var alignContentNames = map[string]int{
	"default":       int(AlignContentDefault),
	"center":        int(AlignContentCenter),
	"start":         int(AlignContentStart),
	"flex_start":    int(AlignContentFlexStart),
	"flex_end":      int(AlignContentFlexEnd),
	"stretch":       int(AlignContentStretch),
	"end":           int(AlignContentEnd),
	"space_evenly":  int(AlignContentSpaceEvenly),
	"space_around":  int(AlignContentSpaceAround),
	"space_between": int(AlignContentSpaceBetween),
}

var justifyItemsNames = map[string]int{
	"default":  int(JustifyItemsDefault),
	"center":   int(JustifyItemsCenter),
	"start":    int(JustifyItemsStart),
	"stretch":  int(JustifyItemsStretch),
	"end":      int(JustifyItemsEnd),
	"baseline": int(JustifyItemsBaseline),
}

var justifySelfNames = map[string]int{
	"auto":     int(JustifySelfAuto),
	"center":   int(JustifySelfCenter),
	"start":    int(JustifySelfStart),
	"stretch":  int(JustifySelfStretch),
	"end":      int(JustifySelfEnd),
	"baseline": int(JustifySelfBaseline),
}

var justifyContentNames = map[string]int{
	"default":       int(JustifyContentDefault),
	"center":        int(JustifyContentCenter),
	"start":         int(JustifyContentStart),
	"flex_start":    int(JustifyContentFlexStart),
	"flex_end":      int(JustifyContentFlexEnd),
	"stretch":       int(JustifyContentStretch),
	"end":           int(JustifyContentEnd),
	"space_evenly":  int(JustifyContentSpaceEvenly),
	"space_around":  int(JustifyContentSpaceAround),
	"space_between": int(JustifyContentSpaceBetween),
}

var flexDirectionNames = map[string]int{
	"row":            int(FlexRow),
	"column":         int(FlexColumn),
	"row_reverse":    int(FlexRowReverse),
	"column_reverse": int(FlexColumnReverse),
	"default":        int(FlexRow),
}

var flexWrapNames = map[string]int{
	"no_wrap":      int(NoWrap),
	"wrap":         int(Wrap),
	"wrap_reverse": int(WrapReverse),
}

var gridAutoFlowNames = map[string]int{
	"row":          int(GridFlowRow),
	"column":       int(GridFlowColumn),
	"row_dense":    int(GridFlowRowDense),
	"column_dense": int(GridFlowColumnDense),
}

var directionNames = map[string]int{
	"forward":           int(Forward),
	"reverse":           int(Reverse),
	"alternate_forward": int(AlternateForward),
	"alternate_reverse": int(AlternateReverse),
}

// --- Low-level scanning helpers --------------------------------------------------

func skipSpace(s string) string {
	return strings.TrimLeft(s, " \t\r\n")
}

// scanFloat consumes a leading float literal.
func scanFloat(s string) (float64, string, error) {
	n := 0
	if n < len(s) && (s[n] == '-' || s[n] == '+') {
		n++
	}
	digits := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
		digits++
	}
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
			digits++
		}
	}
	if digits == 0 {
		return 0, s, fmt.Errorf("%q is not a number", firstToken(s))
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, s, err
	}
	return f, s[n:], nil
}

// scanInt consumes a leading integer literal.
func scanInt(s string) (int, string, error) {
	n := 0
	if n < len(s) && (s[n] == '-' || s[n] == '+') {
		n++
	}
	digits := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
		digits++
	}
	if digits == 0 {
		return 0, s, fmt.Errorf("%q is not an integer", firstToken(s))
	}
	i, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, err
	}
	return i, s[n:], nil
}

// scanWord consumes leading snake-case identifier characters.
func scanWord(s string) (string, string) {
	n := 0
	for n < len(s) && (isLetter(s[n]) || s[n] == '_') {
		n++
	}
	return s[:n], s[n:]
}

// scanUnitSuffix consumes a unit suffix directly after a number: letters
// or a percent sign.
func scanUnitSuffix(s string) (string, string) {
	if strings.HasPrefix(s, "%") {
		return "%", s[1:]
	}
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return s[:n], s[n:]
}

// eatWord consumes word if the input starts with it at a word boundary.
func eatWord(s, word string) (string, bool) {
	if !strings.HasPrefix(s, word) {
		return s, false
	}
	rest := s[len(word):]
	if rest != "" && (isLetter(rest[0]) || rest[0] == '_') {
		return s, false
	}
	return rest, true
}

func expect(s, tok string) (string, error) {
	s = skipSpace(s)
	if !strings.HasPrefix(s, tok) {
		return s, fmt.Errorf("expected %q at %q", tok, firstToken(s))
	}
	return s[len(tok):], nil
}

func atEnd(s, hint string) error {
	if rest := skipSpace(s); rest != "" {
		return fmt.Errorf("unexpected trailing input %q, %s", firstToken(rest), hint)
	}
	return nil
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func firstToken(s string) string {
	s = skipSpace(s)
	if i := strings.IndexAny(s, " \t\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

// parseFullFloat parses a value that must be exactly one float.
func parseFullFloat(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

// parseIntList splits a comma-separated integer list, skipping entries that
// fail to parse.
func parseIntList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
