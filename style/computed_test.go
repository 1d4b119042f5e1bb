package style

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStyleAddSeparatesStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	st := New()
	st.Add(Attr{Kind: KindWidth, Val: Px(100)})
	st.Add(Attr{Kind: KindWidth, Val: Px(200), State: StateHover})
	st.Add(Attr{Kind: KindBackground, Color: White, State: StatePressed})
	if st.Computed.Width != Px(100) {
		t.Errorf("expected baseline width 100px, is %v", st.Computed.Width)
	}
	if len(st.Hover) != 1 || st.Hover[0].Val != Px(200) {
		t.Errorf("expected one hover override, is %v", st.Hover)
	}
	if len(st.Pressed) != 1 {
		t.Errorf("expected one pressed override, is %v", st.Pressed)
	}
	if st.Hover[0].State != StateNone {
		t.Error("expected override lists to hold bare payloads, don't")
	}
}

func TestStyleAddDeduplicatesByKind(t *testing.T) {
	st := New()
	st.Add(Attr{Kind: KindWidth, Val: Px(100), State: StateHover})
	st.Add(Attr{Kind: KindHeight, Val: Px(50), State: StateHover})
	st.Add(Attr{Kind: KindWidth, Val: Px(300), State: StateHover})
	if len(st.Hover) != 2 {
		t.Fatalf("expected repeated kinds to replace in place, have %d entries", len(st.Hover))
	}
	if st.Hover[0].Val != Px(300) {
		t.Errorf("expected the width entry to be replaced with 300px, is %v", st.Hover[0].Val)
	}
}

func TestPartialShadowDirectivesAccumulate(t *testing.T) {
	st := FromAttrs([]Attr{
		{Kind: KindShadowColor, Color: White},
		{Kind: KindShadowBlur, Val: Px(4)},
	})
	sh := st.Computed.Shadow
	if sh == nil {
		t.Fatal("expected shadow directives to allocate a shadow, didn't")
	}
	if sh.Color != White || sh.Blur != Px(4) {
		t.Errorf("expected white shadow with 4px blur, is %v", sh)
	}
}

func TestApplyInterpolatedLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.style")
	defer teardown()
	//
	base := DefaultComputed()
	base.Width = Px(100)
	final := base
	ApplyInterpolated(&final, &base, Attr{Kind: KindWidth, Val: Px(200)}, 0.5)
	if final.Width != Px(150) {
		t.Errorf("expected width to interpolate to 150px, is %v", final.Width)
	}
	if base.Width != Px(100) {
		t.Error("expected the baseline to stay untouched, didn't")
	}
}

func TestApplyInterpolatedMixedUnitsKeepBaseline(t *testing.T) {
	base := DefaultComputed()
	base.Width = Px(100)
	final := base
	// units differ, so the transition cannot blend and the baseline stays
	ApplyInterpolated(&final, &base, Attr{Kind: KindWidth, Val: Percent(50)}, 0.25)
	if final.Width != Px(100) {
		t.Errorf("expected the baseline Px(100) on a unit mismatch, got %v", final.Width)
	}
	ApplyInterpolated(&final, &base, Attr{Kind: KindWidth, Val: Percent(50)}, 1)
	if final.Width != Px(100) {
		t.Errorf("expected a mismatch to hold the baseline at full ratio, got %v", final.Width)
	}
	base.Width = AutoVal()
	final = base
	ApplyInterpolated(&final, &base, Attr{Kind: KindWidth, Val: Px(100)}, 0.5)
	if final.Width != AutoVal() {
		t.Errorf("expected auto to resist a pixel override, got %v", final.Width)
	}
}

func TestApplyInterpolatedColor(t *testing.T) {
	base := DefaultComputed()
	base.Background = Transparent
	final := base
	ApplyInterpolated(&final, &base, Attr{Kind: KindBackground, Color: White}, 0.5)
	if final.Background.R != 0.5 || final.Background.A != 0.5 {
		t.Errorf("expected background halfway to white, is %v", final.Background)
	}
}

func TestApplyInterpolatedDiscreteSwitches(t *testing.T) {
	base := DefaultComputed()
	final := base
	ApplyInterpolated(&final, &base, Attr{Kind: KindDisplay, Enum: int(DisplayNone)}, 0)
	if final.Display == DisplayNone {
		t.Error("expected a disengaged transition to keep the baseline, didn't")
	}
	ApplyInterpolated(&final, &base, Attr{Kind: KindDisplay, Enum: int(DisplayNone)}, 0.1)
	if final.Display != DisplayNone {
		t.Error("expected an engaged transition to switch discrete fields, didn't")
	}
}

func TestEaseSample(t *testing.T) {
	if v, ok := EaseLinear.Sample(0.5); !ok || v != 0.5 {
		t.Errorf("expected linear ease to be identity, is %v", v)
	}
	if v, ok := QuadraticIn.Sample(0.5); !ok || v != 0.25 {
		t.Errorf("expected quadratic_in(0.5) = 0.25, is %v", v)
	}
	for e := EaseLinear; e <= BounceInOut; e++ {
		v0, ok := e.Sample(0)
		if !ok {
			continue
		}
		v1, _ := e.Sample(1)
		if math.Abs(v0) > 1e-9 || math.Abs(v1-1) > 1e-9 {
			t.Errorf("expected %v to map 0→0 and 1→1, is %v and %v", e, v0, v1)
		}
	}
}

func TestEaseNamesRoundTrip(t *testing.T) {
	for name, e := range easeNames {
		if e.String() != name {
			t.Errorf("expected %v to print as %q, is %q", e, name, e.String())
		}
	}
}

func TestLerpValSameUnit(t *testing.T) {
	v := LerpVal(Px(0), Px(10), 0.3)
	if v != Px(3) {
		t.Errorf("expected 3px, is %v", v)
	}
	v = LerpVal(Percent(0), Px(10), 0.3)
	if v != Percent(0) {
		t.Errorf("expected mixed units to keep the baseline, is %v", v)
	}
}
