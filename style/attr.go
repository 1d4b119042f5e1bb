package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Kind discriminates the closed set of style directives: one kind per
// visual field.
type Kind uint8

// Style directive kinds.
const (
	KindInvalid Kind = iota
	KindTop
	KindRight
	KindBottom
	KindLeft
	KindWidth
	KindHeight
	KindMinWidth
	KindMinHeight
	KindMaxWidth
	KindMaxHeight
	KindPadding
	KindMargin
	KindBorder
	KindBorderRadius
	KindOutline
	KindBackground
	KindBorderColor
	KindFont
	KindFontColor
	KindFontSize
	KindTextLayout
	KindTextShadow
	KindDelay
	KindEasing
	KindImageColor
	KindImageRegion
	KindImageMode
	KindPosition
	KindDisplay
	KindZIndex
	KindGlobalZIndex
	KindAspectRatio
	KindOverflow
	KindClipMargin
	KindAlignSelf
	KindAlignItems
	KindAlignContent
	KindJustifySelf
	KindJustifyItems
	KindJustifyContent
	KindFlexDirection
	KindFlexWrap
	KindFlexGrow
	KindFlexShrink
	KindFlexBasis
	KindRowGap
	KindColumnGap
	KindGridAutoFlow
	KindGridAutoRows
	KindGridAutoColumns
	KindGridTemplateRows
	KindGridTemplateColumns
	KindGridRow
	KindGridColumn
	KindShadowColor
	KindShadowOffset
	KindShadowBlur
	KindShadowSpread
	KindAtlas
	KindDuration
	KindDirection
	KindIterations
	KindFPS
	KindFrames
)

// State is the interaction-state modifier of a directive. A directive with
// a state other than StateNone applies only while the node is in that state,
// via interpolation.
type State uint8

// Interaction states a directive may be bound to.
const (
	StateNone State = iota
	StateHover
	StatePressed
	StateActive
)

func (s State) String() string {
	return [...]string{"", "hover", "pressed", "active"}[s]
}

// Attr is one tagged style directive. Exactly the payload fields matching
// Kind are meaningful; everything else stays zero. State wraps the payload
// the way the markup prefixes hover:/pressed:/active: do.
type Attr struct {
	Kind  Kind
	State State

	Val        Val    // single length values
	Val2       Val    // second length (shadow_offset y)
	Rect       UiRect // rect-valued fields
	Color      Color
	Num        float64 // float-valued fields and durations in seconds
	Int        int     // zindex, iterations, fps
	Ints       []int   // frames
	Enum       int     // keyword enums, cast per Kind
	TextLayout TextLayout
	Tracks     []Track
	RTracks    []RepeatedTrack
	Placement  Placement
	Outline    Outline
	TextShadow TextShadow
	ClipMargin ClipMargin
	Atlas      *Atlas
	ImageMode  *ImageMode
	Region     *Region
	Font       *FontRef
	Ease       EaseFunction
	Direction  AnimDirection
}

// Payload strips the interaction-state modifier, returning the raw directive.
func (a Attr) Payload() Attr {
	a.State = StateNone
	return a
}

// WithState wraps the directive in an interaction-state modifier.
func (a Attr) WithState(s State) Attr {
	a.State = s
	return a
}
