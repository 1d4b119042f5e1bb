package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseValForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	cases := []struct {
		input string
		want  Val
	}{
		{"20px", Px(20)},
		{"1.5%", Percent(1.5)},
		{"auto", AutoVal()},
		{"0", Px(0)},
		{"3vmin", VMin(3)},
		{" 10vh ", Vh(10)},
	}
	for _, c := range cases {
		v, err := ParseVal(c.input)
		if err != nil {
			t.Errorf("expected %q to parse, got error: %v", c.input, err)
			continue
		}
		if v != c.want {
			t.Errorf("expected %q to parse as %v, is %v", c.input, c.want, v)
		}
	}
	if _, err := ParseVal("20"); err == nil {
		t.Error("expected bare non-zero number to be rejected, isn't")
	}
	if _, err := ParseVal("px"); err == nil {
		t.Error("expected unit without number to be rejected, isn't")
	}
}

func TestParseColorEquivalentForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	forms := []string{"#FFF", "#FFFF", "#FFFFFF", "#FFFFFFFF", "rgb(1,1,1)", "rgba(1, 1, 1, 1)"}
	for _, f := range forms {
		c, err := ParseColor(f)
		if err != nil {
			t.Errorf("expected %q to parse, got error: %v", f, err)
			continue
		}
		if c != White {
			t.Errorf("expected %q to be white, is %v", f, c)
		}
	}
	if _, err := ParseColor("#FFFFF"); err == nil {
		t.Error("expected 5 hex digits to be rejected, aren't")
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("expected color keyword to be rejected, isn't")
	}
}

func TestParseHexColorIsSRGBDecoded(t *testing.T) {
	c, err := ParseColor("#808080")
	if err != nil {
		t.Fatalf("expected #808080 to parse, got error: %v", err)
	}
	// mid gray decodes to roughly 0.2158 linear
	if c.R < 0.2 || c.R > 0.23 {
		t.Errorf("expected sRGB mid gray to decode to ~0.216 linear, is %v", c.R)
	}
	if c.R != c.G || c.G != c.B || c.A != 1 {
		t.Errorf("expected a gray with full alpha, is %v", c)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"2s", 2},
		{"200ms", 0.2},
		{"1.5", 1.5},
	}
	for _, c := range cases {
		d, err := ParseDuration(c.input)
		if err != nil {
			t.Errorf("expected %q to parse, got error: %v", c.input, err)
			continue
		}
		if d != c.want {
			t.Errorf("expected %q to be %v seconds, is %v", c.input, c.want, d)
		}
	}
	if _, err := ParseDuration("2min"); err == nil {
		t.Error("expected unknown duration unit to be rejected, isn't")
	}
}

func TestParseUiRectForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	r, err := ParseUiRect("10px")
	if err != nil || r != RectAll(Px(10)) {
		t.Errorf("expected one value to fill all sides, is %v (%v)", r, err)
	}
	r, err = ParseUiRect("10px 20px")
	if err != nil || r != RectAxes(Px(10), Px(20)) {
		t.Errorf("expected two values to fill axes, is %v (%v)", r, err)
	}
	r, err = ParseUiRect("1px 2px 3px 4px")
	want := UiRect{Top: Px(1), Right: Px(2), Bottom: Px(3), Left: Px(4)}
	if err != nil || r != want {
		t.Errorf("expected four values in top-right-bottom-left order, is %v (%v)", r, err)
	}
	if _, err = ParseUiRect("1px 2px 3px"); err == nil {
		t.Error("expected three values to be rejected, aren't")
	}
}

func TestParseAtlas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	a, err := ParseAtlas("(32, 32) 4 2 p(1,1) o(2,2)")
	if err != nil {
		t.Fatalf("expected atlas to parse, got error: %v", err)
	}
	if a.Size != (UVec2{X: 32, Y: 32}) || a.Columns != 4 || a.Rows != 2 {
		t.Errorf("expected a 4x2 grid of 32x32 cells, is %v", a)
	}
	if a.Padding == nil || *a.Padding != (UVec2{X: 1, Y: 1}) {
		t.Errorf("expected padding (1,1), is %v", a.Padding)
	}
	if a.Offset == nil || *a.Offset != (UVec2{X: 2, Y: 2}) {
		t.Errorf("expected offset (2,2), is %v", a.Offset)
	}
	a, err = ParseAtlas("16 8 1")
	if err != nil || a.Size != (UVec2{X: 16, Y: 16}) {
		t.Errorf("expected a single number to mean square cells, is %v (%v)", a, err)
	}
	if _, err = ParseAtlas("(32,32) 4"); err == nil {
		t.Error("expected missing row count to be rejected, isn't")
	}
}

func TestParseImageMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	m, err := ParseImageMode("auto")
	if err != nil || m.Kind != ImageAuto {
		t.Errorf("expected auto mode, is %v (%v)", m, err)
	}
	m, err = ParseImageMode("true false 2")
	if err != nil || m.Kind != ImageTiled || !m.TileX || m.TileY || m.Stretch != 2 {
		t.Errorf("expected tiled mode tile_x only, is %v (%v)", m, err)
	}
	m, err = ParseImageMode("10px stretch tile(1) 2")
	if err != nil {
		t.Fatalf("expected sliced mode to parse, got error: %v", err)
	}
	if m.Kind != ImageSliced || m.Border != BorderAll(10) {
		t.Errorf("expected sliced mode with 10px border, is %v", m)
	}
	if m.CenterScale.Tile || !m.SidesScale.Tile || m.SidesScale.Stretch != 1 {
		t.Errorf("expected stretched center and tiled sides, is %v", m)
	}
	if m.MaxCornerScale != 2 {
		t.Errorf("expected corner scale 2, is %v", m.MaxCornerScale)
	}
	if _, err = ParseImageMode("sideways"); err == nil {
		t.Error("expected unknown mode to be rejected, isn't")
	}
}

func TestParseGridTracks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	ts, err := ParseTracks("auto 2fr 50px min")
	if err != nil {
		t.Fatalf("expected track list to parse, got error: %v", err)
	}
	if len(ts) != 4 {
		t.Fatalf("expected 4 tracks, got %d", len(ts))
	}
	if ts[0].Kind != TrackAuto || ts[1] != (Track{Kind: TrackFr, N: 2}) ||
		ts[2] != (Track{Kind: TrackPx, N: 50}) || ts[3].Kind != TrackMinContent {
		t.Errorf("track list parsed wrong: %v", ts)
	}
	rts, err := ParseRepeatedTracks("(2, 1fr) (1, auto)")
	if err != nil || len(rts) != 2 {
		t.Fatalf("expected 2 repeated tracks, got %v (%v)", rts, err)
	}
	if rts[0].Repeat != 2 || rts[0].Track.Kind != TrackFr {
		t.Errorf("repeated track parsed wrong: %v", rts[0])
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("start_span(2, 3)")
	if err != nil {
		t.Fatalf("expected placement to parse, got error: %v", err)
	}
	if p.Form != PlaceStartSpan || p.At != 2 || p.Span != 3 {
		t.Errorf("expected start_span(2,3), is %v", p)
	}
	p, err = ParsePlacement("auto")
	if err != nil || p.Form != PlaceAuto {
		t.Errorf("expected auto placement, is %v (%v)", p, err)
	}
	if _, err = ParsePlacement("span(1) extra"); err == nil {
		t.Error("expected trailing garbage to be rejected, isn't")
	}
}

func TestParseStyleAttrUnknownKey(t *testing.T) {
	_, err := ParseStyleAttr("frobnicate", "10px", nil)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey for an unknown key, got %v", err)
	}
	_, err = ParseStyleAttr("width", "sideways", nil)
	if err == nil || errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected a value error for a known key, got %v", err)
	}
}

func TestParseStyleAttrOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	attr, err := ParseStyleAttr("overflow", "hidden scroll", nil)
	if err != nil {
		t.Fatalf("expected overflow to parse, got error: %v", err)
	}
	st := FromAttrs([]Attr{attr})
	o := st.Computed.Overflow
	if o.X != OverflowHidden || o.Y != OverflowScroll {
		t.Errorf("expected overflow hidden/scroll, is %v", o)
	}
}

func TestValueStringsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	vals := []Val{AutoVal(), Px(20), Percent(50), Vw(3.5), VMin(0)}
	for _, v := range vals {
		again, err := ParseVal(v.String())
		if err != nil {
			t.Errorf("expected %q to re-parse, got error: %v", v.String(), err)
			continue
		}
		if again != v {
			t.Errorf("expected %v to round-trip, got %v", v, again)
		}
	}
	colors := []Color{White, Transparent, LinearRGBA(0.25, 0.5, 0.75, 1)}
	for _, c := range colors {
		again, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("expected %q to re-parse, got error: %v", c.String(), err)
			continue
		}
		if again != c {
			t.Errorf("expected %v to round-trip, got %v", c, again)
		}
	}
}

func TestStateFromPrefix(t *testing.T) {
	if s, ok := StateFromPrefix("hover"); !ok || s != StateHover {
		t.Errorf("expected hover prefix to map to StateHover, is %v", s)
	}
	if _, ok := StateFromPrefix("tag"); ok {
		t.Error("expected tag prefix not to be a state, is")
	}
}
