package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Display switches the layout algorithm of a node.
type Display uint8

// Display keywords.
const (
	DisplayFlex Display = iota
	DisplayNone
	DisplayBlock
	DisplayGrid
)

func (d Display) String() string {
	return [...]string{"flex", "none", "block", "grid"}[d]
}

// PositionType selects relative or absolute positioning.
type PositionType uint8

// Position keywords.
const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

func (p PositionType) String() string {
	return [...]string{"relative", "absolute"}[p]
}

// OverflowAxis is the overflow behavior of one axis.
type OverflowAxis uint8

// Overflow keywords.
const (
	OverflowVisible OverflowAxis = iota
	OverflowHidden
	OverflowClip
	OverflowScroll
)

func (o OverflowAxis) String() string {
	return [...]string{"visible", "hidden", "clip", "scroll"}[o]
}

// Overflow is the overflow behavior of both axes.
type Overflow struct {
	X OverflowAxis
	Y OverflowAxis
}

func (o Overflow) String() string {
	return fmt.Sprintf("%s %s", o.X, o.Y)
}

// ClipBox is the reference box for overflow clipping.
type ClipBox uint8

// Clip box keywords.
const (
	ContentBox ClipBox = iota
	PaddingBox
	BorderBox
)

func (b ClipBox) String() string {
	return [...]string{"content_box", "padding_box", "border_box"}[b]
}

// ClipMargin is the overflow clip margin: reference box plus extra margin.
type ClipMargin struct {
	Box    ClipBox
	Margin float64
}

// AlignItems aligns children on the cross axis.
type AlignItems uint8

// align_items keywords.
const (
	AlignItemsDefault AlignItems = iota
	AlignItemsCenter
	AlignItemsStart
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsStretch
	AlignItemsEnd
	AlignItemsBaseline
)

func (a AlignItems) String() string {
	return [...]string{"default", "center", "start", "flex_start", "flex_end",
		"stretch", "end", "baseline"}[a]
}

// AlignSelf overrides AlignItems for a single node.
type AlignSelf uint8

// align_self keywords.
const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfCenter
	AlignSelfStart
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfStretch
	AlignSelfEnd
)

func (a AlignSelf) String() string {
	return [...]string{"auto", "center", "start", "flex_start", "flex_end",
		"stretch", "end"}[a]
}

// AlignContent distributes lines on the cross axis.
type AlignContent uint8

// align_content keywords.
const (
	AlignContentDefault AlignContent = iota
	AlignContentCenter
	AlignContentStart
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentStretch
	AlignContentEnd
	AlignContentSpaceEvenly
	AlignContentSpaceAround
	AlignContentSpaceBetween
)

func (a AlignContent) String() string {
	return [...]string{"default", "center", "start", "flex_start", "flex_end",
		"stretch", "end", "space_evenly", "space_around", "space_between"}[a]
}

// JustifyItems aligns children on the main axis.
type JustifyItems uint8

// justify_items keywords.
const (
	JustifyItemsDefault JustifyItems = iota
	JustifyItemsCenter
	JustifyItemsStart
	JustifyItemsStretch
	JustifyItemsEnd
	JustifyItemsBaseline
)

func (j JustifyItems) String() string {
	return [...]string{"default", "center", "start", "stretch", "end", "baseline"}[j]
}

// JustifySelf overrides JustifyItems for a single node.
type JustifySelf uint8

// justify_self keywords.
const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfCenter
	JustifySelfStart
	JustifySelfStretch
	JustifySelfEnd
	JustifySelfBaseline
)

func (j JustifySelf) String() string {
	return [...]string{"auto", "center", "start", "stretch", "end", "baseline"}[j]
}

// JustifyContent distributes children on the main axis.
type JustifyContent uint8

// justify_content keywords.
const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentCenter
	JustifyContentStart
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentStretch
	JustifyContentEnd
	JustifyContentSpaceEvenly
	JustifyContentSpaceAround
	JustifyContentSpaceBetween
)

func (j JustifyContent) String() string {
	return [...]string{"default", "center", "start", "flex_start", "flex_end",
		"stretch", "end", "space_evenly", "space_around", "space_between"}[j]
}

// FlexDirection is the main axis direction of a flex container.
type FlexDirection uint8

// flex_direction keywords.
const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

func (f FlexDirection) String() string {
	return [...]string{"row", "column", "row_reverse", "column_reverse"}[f]
}

// FlexWrap is the wrapping behavior of a flex container.
type FlexWrap uint8

// flex_wrap keywords.
const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

func (f FlexWrap) String() string {
	return [...]string{"no_wrap", "wrap", "wrap_reverse"}[f]
}

// GridAutoFlow controls implicit grid item placement.
type GridAutoFlow uint8

// grid_auto_flow keywords.
const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
	GridFlowRowDense
	GridFlowColumnDense
)

func (g GridAutoFlow) String() string {
	return [...]string{"row", "column", "row_dense", "column_dense"}[g]
}

// --- Grid tracks and placement ----------------------------------------------

// TrackKind is the sizing function of a grid track.
type TrackKind uint8

// Grid track sizing kinds.
const (
	TrackAuto TrackKind = iota
	TrackMinContent
	TrackMaxContent
	TrackPx
	TrackPercent
	TrackFr
	TrackFlex
	TrackVh
	TrackVw
	TrackVMin
	TrackVMax
)

// Track is one grid track sizing function, e.g. "auto", "50px" or "2fr".
type Track struct {
	Kind TrackKind
	N    float64
}

func (t Track) String() string {
	switch t.Kind {
	case TrackAuto:
		return "auto"
	case TrackMinContent:
		return "min"
	case TrackMaxContent:
		return "max"
	case TrackPx:
		return fmt.Sprintf("%gpx", t.N)
	case TrackPercent:
		return fmt.Sprintf("%g%%", t.N)
	case TrackFr:
		return fmt.Sprintf("%gfr", t.N)
	case TrackFlex:
		return fmt.Sprintf("%gflex", t.N)
	case TrackVh:
		return fmt.Sprintf("%gvh", t.N)
	case TrackVw:
		return fmt.Sprintf("%gvw", t.N)
	case TrackVMin:
		return fmt.Sprintf("%gvmin", t.N)
	case TrackVMax:
		return fmt.Sprintf("%gvmax", t.N)
	}
	return "?"
}

// RepeatedTrack is a grid template entry: a track repeated n times.
type RepeatedTrack struct {
	Repeat int
	Track  Track
}

func (t RepeatedTrack) String() string {
	return fmt.Sprintf("(%d, %s)", t.Repeat, t.Track)
}

// PlacementForm is the shape of a grid placement expression.
type PlacementForm uint8

// Grid placement forms.
const (
	PlaceAuto PlacementForm = iota
	PlaceSpan
	PlaceStart
	PlaceEnd
	PlaceStartSpan
	PlaceEndSpan
)

// Placement positions a node within grid rows or columns.
type Placement struct {
	Form PlacementForm
	At   int // start or end line, depending on form
	Span int
}

func (p Placement) String() string {
	switch p.Form {
	case PlaceAuto:
		return "auto"
	case PlaceSpan:
		return fmt.Sprintf("span(%d)", p.Span)
	case PlaceStart:
		return fmt.Sprintf("start(%d)", p.At)
	case PlaceEnd:
		return fmt.Sprintf("end(%d)", p.At)
	case PlaceStartSpan:
		return fmt.Sprintf("start_span(%d,%d)", p.At, p.Span)
	case PlaceEndSpan:
		return fmt.Sprintf("end_span(%d,%d)", p.At, p.Span)
	}
	return "?"
}

// --- Text ---------------------------------------------------------------

// TextJustify is the horizontal justification of text.
type TextJustify uint8

// Text justification keywords.
const (
	JustifyLeft TextJustify = iota
	JustifyCenter
	JustifyRight
	Justified
)

func (j TextJustify) String() string {
	return [...]string{"left", "center", "right", "justified"}[j]
}

// LineBreak is the line breaking strategy of text.
type LineBreak uint8

// Line break keywords.
const (
	BreakWordBoundary LineBreak = iota
	BreakAnyCharacter
	BreakNoWrap
	BreakWordOrCharacter
)

func (l LineBreak) String() string {
	return [...]string{"word_boundary", "any_character", "no_wrap",
		"word_or_character"}[l]
}

// TextLayout bundles justification and line breaking.
type TextLayout struct {
	Justify TextJustify
	Break   LineBreak
}

func (t TextLayout) String() string {
	return fmt.Sprintf("%s %s", t.Justify, t.Break)
}

// --- Animation ------------------------------------------------------------

// AnimDirection is the playback direction of a sprite animation. The
// alternate variants are an initial bias only; a running animation always
// moves plain forward or reverse and flips at the boundaries.
type AnimDirection uint8

// Animation direction keywords.
const (
	Forward AnimDirection = iota
	Reverse
	AlternateForward
	AlternateReverse
)

func (d AnimDirection) String() string {
	return [...]string{"forward", "reverse", "alternate_forward",
		"alternate_reverse"}[d]
}

// IsAlternate tells if the configured direction flips at frame boundaries.
func (d AnimDirection) IsAlternate() bool {
	return d == AlternateForward || d == AlternateReverse
}
