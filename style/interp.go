package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// ApplyInterpolated writes one override directive into dst, blended between
// the baseline in base and the directive's target value by ratio. Continuous
// fields (lengths with matching units, colors, plain numbers) interpolate;
// discrete fields (keywords, tracks, placements, handles) switch to the
// target as soon as ratio is non-zero. Directive kinds that have no visual
// field are ignored.
func ApplyInterpolated(dst, base *Computed, attr Attr, ratio float64) {
	switch attr.Kind {
	case KindLeft:
		dst.Left = LerpVal(base.Left, attr.Val, ratio)
	case KindRight:
		dst.Right = LerpVal(base.Right, attr.Val, ratio)
	case KindTop:
		dst.Top = LerpVal(base.Top, attr.Val, ratio)
	case KindBottom:
		dst.Bottom = LerpVal(base.Bottom, attr.Val, ratio)
	case KindWidth:
		dst.Width = LerpVal(base.Width, attr.Val, ratio)
	case KindHeight:
		dst.Height = LerpVal(base.Height, attr.Val, ratio)
	case KindMinWidth:
		dst.MinWidth = LerpVal(base.MinWidth, attr.Val, ratio)
	case KindMinHeight:
		dst.MinHeight = LerpVal(base.MinHeight, attr.Val, ratio)
	case KindMaxWidth:
		dst.MaxWidth = LerpVal(base.MaxWidth, attr.Val, ratio)
	case KindMaxHeight:
		dst.MaxHeight = LerpVal(base.MaxHeight, attr.Val, ratio)
	case KindMargin:
		dst.Margin = LerpRect(base.Margin, attr.Rect, ratio)
	case KindPadding:
		dst.Padding = LerpRect(base.Padding, attr.Rect, ratio)
	case KindBorder:
		dst.Border = LerpRect(base.Border, attr.Rect, ratio)
	case KindBorderRadius:
		dst.BorderRadius = LerpRect(base.BorderRadius, attr.Rect, ratio)
	case KindFlexBasis:
		dst.FlexBasis = LerpVal(base.FlexBasis, attr.Val, ratio)
	case KindRowGap:
		dst.RowGap = LerpVal(base.RowGap, attr.Val, ratio)
	case KindColumnGap:
		dst.ColumnGap = LerpVal(base.ColumnGap, attr.Val, ratio)
	case KindFlexGrow:
		dst.FlexGrow = lerpF(base.FlexGrow, attr.Num, ratio)
	case KindFlexShrink:
		dst.FlexShrink = lerpF(base.FlexShrink, attr.Num, ratio)
	case KindAspectRatio:
		dst.AspectRatio = lerpF(base.AspectRatio, attr.Num, ratio)
	case KindFontSize:
		dst.FontSize = lerpF(base.FontSize, attr.Num, ratio)
	case KindBackground:
		dst.Background = LerpColor(base.Background, attr.Color, ratio)
	case KindBorderColor:
		dst.BorderColor = LerpColor(base.BorderColor, attr.Color, ratio)
	case KindFontColor:
		dst.FontColor = LerpColor(base.FontColor, attr.Color, ratio)
	case KindImageColor:
		dst.ImageColor = LerpColor(base.ImageColor, attr.Color, ratio)
	case KindOutline:
		from := base.Outline
		if from == nil {
			from = &Outline{}
		}
		dst.Outline = &Outline{
			Width:  LerpVal(from.Width, attr.Outline.Width, ratio),
			Offset: LerpVal(from.Offset, attr.Outline.Offset, ratio),
			Color:  LerpColor(from.Color, attr.Outline.Color, ratio),
		}
	case KindShadowColor:
		sh := dst.shadow()
		from := Transparent
		if base.Shadow != nil {
			from = base.Shadow.Color
		}
		sh.Color = LerpColor(from, attr.Color, ratio)
	case KindShadowOffset:
		sh := dst.shadow()
		var fromX, fromY Val
		if base.Shadow != nil {
			fromX, fromY = base.Shadow.XOffset, base.Shadow.YOffset
		}
		sh.XOffset = LerpVal(fromX, attr.Val, ratio)
		sh.YOffset = LerpVal(fromY, attr.Val2, ratio)
	case KindShadowBlur:
		var from Val
		if base.Shadow != nil {
			from = base.Shadow.Blur
		}
		dst.shadow().Blur = LerpVal(from, attr.Val, ratio)
	case KindShadowSpread:
		var from Val
		if base.Shadow != nil {
			from = base.Shadow.Spread
		}
		dst.shadow().Spread = LerpVal(from, attr.Val, ratio)
	default:
		// everything else is discrete: switch instantly once engaged
		if ratio > 0 {
			dst.add(attr)
		}
	}
}

func lerpF(start, end, ratio float64) float64 {
	return start + (end-start)*ratio
}
