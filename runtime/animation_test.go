package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAnimationAdvancesFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="2"/>
    </template>`), nil)
	if f := s.Frame(img); f != 0 {
		t.Fatalf("expected the animation to start at frame 0, is %d", f)
	}
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		s.Tick(0.5)
		if f := s.Frame(img); f != w {
			t.Errorf("tick %d: expected frame %d, is %d", i+1, w, f)
		}
	}
}

func TestAnimationAlternatesAndFreezes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="2"
               direction="alternate_forward" iterations="1"/>
    </template>`), nil)
	want := []int{1, 2, 3, 2, 2, 2}
	for i, w := range want {
		s.Tick(0.5)
		if f := s.Frame(img); f != w {
			t.Errorf("tick %d: expected frame %d, is %d", i+1, w, f)
		}
	}
}

func TestAnimationReverseStartsAtEnd(t *testing.T) {
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="2" direction="reverse"/>
    </template>`), nil)
	if f := s.Frame(img); f != 3 {
		t.Fatalf("expected a reverse animation to start at the last frame, is %d", f)
	}
	s.Tick(0.5)
	if f := s.Frame(img); f != 2 {
		t.Errorf("expected the animation to step backwards, is %d", f)
	}
}

func TestAnimationFramesList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="1" frames="2,0,3"/>
    </template>`), nil)
	if f := s.Frame(img); f != 2 {
		t.Fatalf("expected the first listed frame, is %d", f)
	}
	want := []int{0, 3, 2}
	for i, w := range want {
		s.Tick(1)
		if f := s.Frame(img); f != w {
			t.Errorf("tick %d: expected atlas cell %d, is %d", i+1, w, f)
		}
	}
}

func TestAnimationDurationFreezes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="2" duration="1s"/>
    </template>`), nil)
	s.Tick(0.5)
	if f := s.Frame(img); f != 1 {
		t.Fatalf("expected one step inside the play time, is %d", f)
	}
	s.Tick(0.5)
	s.Tick(0.5)
	if f := s.Frame(img); f != 1 {
		t.Errorf("expected the animation to freeze after its play time, is %d", f)
	}
}

func TestSingleFrameDoesNotAnimate(t *testing.T) {
	s := NewScene(nil)
	img := s.Mount(parseT(t, `<template>
        <image src="sheet.png" atlas="(16,16) 4 1" fps="2" frames="1"/>
    </template>`), nil)
	s.Tick(0.5)
	s.Tick(0.5)
	if f := s.Frame(img); f != 1 {
		t.Errorf("expected a single-frame animation to stay put, is %d", f)
	}
}
