package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Computed is the resolved baseline style of one runtime node. Its layout
// fields are the target values handed to the host layout engine; this
// package never solves layout itself.
type Computed struct {
	// box layout
	Display    Display
	Position   PositionType
	Overflow   Overflow
	ClipMargin ClipMargin

	Left   Val
	Right  Val
	Top    Val
	Bottom Val

	Width     Val
	Height    Val
	MinWidth  Val
	MinHeight Val
	MaxWidth  Val
	MaxHeight Val

	Margin       UiRect
	Padding      UiRect
	Border       UiRect
	BorderRadius UiRect

	AspectRatio float64 // 0 = unset

	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   AlignContent
	JustifyItems   JustifyItems
	JustifySelf    JustifySelf
	JustifyContent JustifyContent

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Val
	RowGap        Val
	ColumnGap     Val

	GridAutoFlow        GridAutoFlow
	GridAutoRows        []Track
	GridAutoColumns     []Track
	GridTemplateRows    []RepeatedTrack
	GridTemplateColumns []RepeatedTrack
	GridRow             Placement
	GridColumn          Placement

	// paint
	Background  Color
	BorderColor Color
	Outline     *Outline
	Shadow      *BoxShadow

	// image
	ImageColor  Color
	ImageMode   *ImageMode
	ImageRegion *Region

	// text
	Font       *FontRef
	FontSize   float64
	FontColor  Color
	TextLayout *TextLayout
	TextShadow *TextShadow

	// stacking
	ZIndex       *int
	GlobalZIndex *int

	// transitions
	Delay  float64 // seconds
	Easing EaseFunction

	// sprite animation
	Atlas      *Atlas
	Duration   float64 // seconds, 0 = unbounded
	Iterations int
	FPS        int
	Frames     []int
	Direction  AnimDirection
}

// DefaultComputed returns the baseline every node starts from.
func DefaultComputed() Computed {
	return Computed{
		FlexBasis:  AutoVal(),
		ImageColor: White,
		FontColor:  White,
		FontSize:   12,
		FPS:        1,
		Iterations: -1,
		Direction:  Forward,
		Easing:     EaseLinear,
	}
}

// Style is the full style state of one runtime node: the computed baseline
// plus the hover/pressed/active override lists. The lists hold raw directive
// payloads only, in first-seen order, never state-wrapped entries.
type Style struct {
	Computed Computed
	Hover    []Attr
	Pressed  []Attr
	Active   []Attr
}

// New creates a node style holding only defaults.
func New() *Style {
	return &Style{Computed: DefaultComputed()}
}

// FromAttrs folds a parsed directive list into a node style.
func FromAttrs(attrs []Attr) *Style {
	s := New()
	for _, a := range attrs {
		s.Add(a)
	}
	return s
}

// Add merges one directive. State-wrapped directives go into the matching
// override list; everything else mutates the computed baseline. Override
// lists are strictly deduplicated by kind: a directive of a kind already
// present replaces the old entry in place instead of accumulating.
func (s *Style) Add(attr Attr) {
	switch attr.State {
	case StateHover:
		s.Hover = upsertByKind(s.Hover, attr.Payload())
	case StatePressed:
		s.Pressed = upsertByKind(s.Pressed, attr.Payload())
	case StateActive:
		s.Active = upsertByKind(s.Active, attr.Payload())
	default:
		s.Computed.add(attr)
	}
}

func upsertByKind(list []Attr, attr Attr) []Attr {
	for i := range list {
		if list[i].Kind == attr.Kind {
			list[i] = attr
			return list
		}
	}
	return append(list, attr)
}

// add applies a raw directive to the baseline.
func (c *Computed) add(attr Attr) {
	switch attr.Kind {
	case KindDisplay:
		c.Display = Display(attr.Enum)
	case KindPosition:
		c.Position = PositionType(attr.Enum)
	case KindOverflow:
		c.Overflow = Overflow{X: OverflowAxis(attr.Enum >> 8), Y: OverflowAxis(attr.Enum & 0xff)}
	case KindClipMargin:
		c.ClipMargin = attr.ClipMargin
	case KindLeft:
		c.Left = attr.Val
	case KindRight:
		c.Right = attr.Val
	case KindTop:
		c.Top = attr.Val
	case KindBottom:
		c.Bottom = attr.Val
	case KindWidth:
		c.Width = attr.Val
	case KindHeight:
		c.Height = attr.Val
	case KindMinWidth:
		c.MinWidth = attr.Val
	case KindMinHeight:
		c.MinHeight = attr.Val
	case KindMaxWidth:
		c.MaxWidth = attr.Val
	case KindMaxHeight:
		c.MaxHeight = attr.Val
	case KindMargin:
		c.Margin = attr.Rect
	case KindPadding:
		c.Padding = attr.Rect
	case KindBorder:
		c.Border = attr.Rect
	case KindBorderRadius:
		c.BorderRadius = attr.Rect
	case KindAspectRatio:
		c.AspectRatio = attr.Num
	case KindAlignItems:
		c.AlignItems = AlignItems(attr.Enum)
	case KindAlignSelf:
		c.AlignSelf = AlignSelf(attr.Enum)
	case KindAlignContent:
		c.AlignContent = AlignContent(attr.Enum)
	case KindJustifyItems:
		c.JustifyItems = JustifyItems(attr.Enum)
	case KindJustifySelf:
		c.JustifySelf = JustifySelf(attr.Enum)
	case KindJustifyContent:
		c.JustifyContent = JustifyContent(attr.Enum)
	case KindFlexDirection:
		c.FlexDirection = FlexDirection(attr.Enum)
	case KindFlexWrap:
		c.FlexWrap = FlexWrap(attr.Enum)
	case KindFlexGrow:
		c.FlexGrow = attr.Num
	case KindFlexShrink:
		c.FlexShrink = attr.Num
	case KindFlexBasis:
		c.FlexBasis = attr.Val
	case KindRowGap:
		c.RowGap = attr.Val
	case KindColumnGap:
		c.ColumnGap = attr.Val
	case KindGridAutoFlow:
		c.GridAutoFlow = GridAutoFlow(attr.Enum)
	case KindGridAutoRows:
		c.GridAutoRows = attr.Tracks
	case KindGridAutoColumns:
		c.GridAutoColumns = attr.Tracks
	case KindGridTemplateRows:
		c.GridTemplateRows = attr.RTracks
	case KindGridTemplateColumns:
		c.GridTemplateColumns = attr.RTracks
	case KindGridRow:
		c.GridRow = attr.Placement
	case KindGridColumn:
		c.GridColumn = attr.Placement
	case KindBackground:
		c.Background = attr.Color
	case KindBorderColor:
		c.BorderColor = attr.Color
	case KindOutline:
		o := attr.Outline
		c.Outline = &o
	case KindImageColor:
		c.ImageColor = attr.Color
	case KindImageMode:
		c.ImageMode = attr.ImageMode
	case KindImageRegion:
		c.ImageRegion = attr.Region
	case KindFont:
		c.Font = attr.Font
	case KindFontSize:
		c.FontSize = attr.Num
	case KindFontColor:
		c.FontColor = attr.Color
	case KindTextLayout:
		tl := attr.TextLayout
		c.TextLayout = &tl
	case KindTextShadow:
		ts := attr.TextShadow
		c.TextShadow = &ts
	case KindZIndex:
		z := attr.Int
		c.ZIndex = &z
	case KindGlobalZIndex:
		z := attr.Int
		c.GlobalZIndex = &z
	case KindDelay:
		c.Delay = attr.Num
	case KindEasing:
		c.Easing = attr.Ease
	case KindAtlas:
		c.Atlas = attr.Atlas
	case KindDuration:
		c.Duration = attr.Num
	case KindIterations:
		c.Iterations = attr.Int
	case KindFPS:
		c.FPS = attr.Int
	case KindFrames:
		c.Frames = attr.Ints
	case KindDirection:
		c.Direction = attr.Direction
	case KindShadowColor:
		c.shadow().Color = attr.Color
	case KindShadowOffset:
		sh := c.shadow()
		sh.XOffset = attr.Val
		sh.YOffset = attr.Val2
	case KindShadowBlur:
		c.shadow().Blur = attr.Val
	case KindShadowSpread:
		c.shadow().Spread = attr.Val
	}
}

// shadow returns the box shadow, allocating an empty one on first use so
// partial shadow directives can accumulate.
func (c *Computed) shadow() *BoxShadow {
	if c.Shadow == nil {
		c.Shadow = &BoxShadow{}
	}
	return c.Shadow
}
