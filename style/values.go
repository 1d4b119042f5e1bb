package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Handle is an opaque reference to a loaded resource (font, image).
// Handles are produced by a Loader and carried through styles unchanged.
type Handle interface{}

// Loader turns path-like attribute values into opaque resource handles.
// It is the only host capability the parser depends on.
type Loader interface {
	Load(path string) Handle
}

// --- Lengths ---------------------------------------------------------------

// Unit is the measurement unit of a Val.
type Unit uint8

// Units for length values.
const (
	Auto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

// Val is an option type for a single length value, e.g. "20px" or "5%".
//
//	type Val
//	    = Auto
//	    | Px n
//	    | Percent n
//	    | ViewRel unit n
type Val struct {
	U Unit
	N float64
}

// AutoVal returns the length value 'auto'.
func AutoVal() Val { return Val{U: Auto} }

// Px creates a fixed pixel length.
func Px(n float64) Val { return Val{U: UnitPx, N: n} }

// Percent creates a %-relative length.
func Percent(n float64) Val { return Val{U: UnitPercent, N: n} }

// Vw creates a viewport-width relative length.
func Vw(n float64) Val { return Val{U: UnitVw, N: n} }

// Vh creates a viewport-height relative length.
func Vh(n float64) Val { return Val{U: UnitVh, N: n} }

// VMin creates a viewport-min relative length.
func VMin(n float64) Val { return Val{U: UnitVMin, N: n} }

// VMax creates a viewport-max relative length.
func VMax(n float64) Val { return Val{U: UnitVMax, N: n} }

func (v Val) String() string {
	switch v.U {
	case Auto:
		return "auto"
	case UnitPx:
		return fmt.Sprintf("%gpx", v.N)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.N)
	case UnitVw:
		return fmt.Sprintf("%gvw", v.N)
	case UnitVh:
		return fmt.Sprintf("%gvh", v.N)
	case UnitVMin:
		return fmt.Sprintf("%gvmin", v.N)
	case UnitVMax:
		return fmt.Sprintf("%gvmax", v.N)
	}
	return "?"
}

// DU converts a pixel-valued length to typesetter device units, treating one
// pixel as one typographic point. Hosts feeding a dimen-based layouter use
// this instead of re-parsing length strings. Non-pixel values return 0.
func (v Val) DU() dimen.DU {
	if v.U != UnitPx {
		return 0
	}
	return dimen.DU(math.Round(v.N)) * dimen.PT
}

// Pct returns the value as a typesetter percentage for %-relative lengths.
func (v Val) Pct() (percent.Percent, bool) {
	if v.U != UnitPercent {
		return percent.FromInt(0), false
	}
	return percent.FromInt(int(math.Round(v.N))), true
}

// LerpVal interpolates between two lengths. Interpolation requires both
// values to carry the same unit; on a unit mismatch the transition cannot
// blend and the baseline value is kept unchanged.
func LerpVal(start, end Val, ratio float64) Val {
	if start.U != end.U {
		return start
	}
	switch start.U {
	case UnitPx, UnitPercent, UnitVw, UnitVh, UnitVMin, UnitVMax:
		return Val{U: start.U, N: start.N + (end.N-start.N)*ratio}
	}
	return start
}

// --- Rectangles ------------------------------------------------------------

// UiRect is a per-side set of lengths (margin, padding, border, radius).
type UiRect struct {
	Top    Val
	Right  Val
	Bottom Val
	Left   Val
}

// RectAll creates a UiRect with the same value on all sides.
func RectAll(v Val) UiRect {
	return UiRect{Top: v, Right: v, Bottom: v, Left: v}
}

// RectAxes creates a UiRect from a horizontal and a vertical value.
func RectAxes(x, y Val) UiRect {
	return UiRect{Top: y, Bottom: y, Left: x, Right: x}
}

func (r UiRect) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Top, r.Right, r.Bottom, r.Left)
}

// LerpRect interpolates every side of a rectangle (per-side unit matching).
func LerpRect(start, end UiRect, ratio float64) UiRect {
	return UiRect{
		Top:    LerpVal(start.Top, end.Top, ratio),
		Right:  LerpVal(start.Right, end.Right, ratio),
		Bottom: LerpVal(start.Bottom, end.Bottom, ratio),
		Left:   LerpVal(start.Left, end.Left, ratio),
	}
}

// BorderRect is a per-side set of plain pixel widths (nine-slice borders).
type BorderRect struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// BorderAll creates a BorderRect with the same width on all sides.
func BorderAll(w float64) BorderRect {
	return BorderRect{Top: w, Right: w, Bottom: w, Left: w}
}

// BorderAxes creates a BorderRect from a horizontal and a vertical width.
func BorderAxes(x, y float64) BorderRect {
	return BorderRect{Top: y, Bottom: y, Left: x, Right: x}
}

// --- Points and regions ----------------------------------------------------

// Vec2 is a plain 2D point.
type Vec2 struct {
	X float64
	Y float64
}

// UVec2 is a discrete 2D size (atlas cell sizes, paddings, offsets).
type UVec2 struct {
	X int
	Y int
}

// Region is an axis-aligned rectangle given by two corners.
type Region struct {
	Min Vec2
	Max Vec2
}

// --- Colors ----------------------------------------------------------------

// Color is a linear (non-gamma) RGBA color. All interpolation happens
// component-wise in this space.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

// Transparent is the all-zero color.
var Transparent = Color{}

// White is opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// LinearRGB creates an opaque color from linear components in [0,1].
func LinearRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// LinearRGBA creates a color from linear components in [0,1].
func LinearRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// SRGBA8 creates a color from 8-bit sRGB-encoded components, decoding them
// into linear space. Hex color notation is sRGB-encoded by convention.
func SRGBA8(r, g, b, a uint8) Color {
	return Color{
		R: srgbToLinear(float32(r) / 255),
		G: srgbToLinear(float32(g) / 255),
		B: srgbToLinear(float32(b) / 255),
		A: float32(a) / 255,
	}
}

func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g,%g,%g,%g)", c.R, c.G, c.B, c.A)
}

// LerpColor interpolates two colors component-wise in linear space.
func LerpColor(start, end Color, ratio float64) Color {
	r := float32(ratio)
	return Color{
		R: start.R + (end.R-start.R)*r,
		G: start.G + (end.G-start.G)*r,
		B: start.B + (end.B-start.B)*r,
		A: start.A + (end.A-start.A)*r,
	}
}

// --- Compound visual values ------------------------------------------------

// Outline is a non-layout-affecting border drawn outside the node.
type Outline struct {
	Width  Val
	Offset Val
	Color  Color
}

// BoxShadow describes a node's drop shadow.
type BoxShadow struct {
	Color   Color
	XOffset Val
	YOffset Val
	Blur    Val
	Spread  Val
}

// TextShadow describes a text glyph shadow.
type TextShadow struct {
	Offset Vec2
	Color  Color
}

// FontRef references a font either by its unresolved path or by the opaque
// handle a Loader produced for that path.
type FontRef struct {
	Path   string
	Handle Handle
}

// Atlas describes a sprite sheet grid: cell size, grid dimensions and
// optional per-cell padding and global offset.
type Atlas struct {
	Size    UVec2
	Columns int
	Rows    int
	Padding *UVec2
	Offset  *UVec2
}

// ImageModeKind selects how an image is fitted into its node.
type ImageModeKind uint8

// Image fitting modes.
const (
	ImageAuto ImageModeKind = iota
	ImageStretch
	ImageTiled
	ImageSliced
)

// SliceScale is the scale mode of a nine-slice center or side.
type SliceScale struct {
	Tile    bool
	Stretch float64 // only meaningful when Tile is set
}

// ImageMode carries the full image fitting configuration. Only the fields
// of the selected kind are meaningful.
type ImageMode struct {
	Kind ImageModeKind

	// tiled
	TileX   bool
	TileY   bool
	Stretch float64

	// sliced
	Border         BorderRect
	CenterScale    SliceScale
	SidesScale     SliceScale
	MaxCornerScale float64
}
