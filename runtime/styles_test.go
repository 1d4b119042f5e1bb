package runtime

import (
	"testing"

	"github.com/npillmayer/hui/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestHoverTransitionInterpolates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	btn := s.Mount(parseT(t, `<template>
        <button width="100px" delay="1s" hover:width="200px"/>
    </template>`), nil)

	s.SetInteraction(btn, InteractionHovered)
	s.Tick(0.5)
	if w := s.Final(btn).Width; w != style.Px(150) {
		t.Errorf("expected width halfway through the transition, is %v", w)
	}
	s.Tick(1)
	if w := s.Final(btn).Width; w != style.Px(200) {
		t.Errorf("expected the transition to clamp at the target, is %v", w)
	}
	s.SetInteraction(btn, InteractionNone)
	s.Tick(0.75)
	if w := s.Final(btn).Width; w != style.Px(125) {
		t.Errorf("expected the transition to ease back out, is %v", w)
	}
}

func TestHoverMismatchedUnitsKeepBaseline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	btn := s.Mount(parseT(t, `<template>
        <button width="auto" delay="1s" hover:width="100px"/>
    </template>`), nil)
	s.SetInteraction(btn, InteractionHovered)
	s.Tick(0.5)
	// auto and px cannot blend, so engaging the transition changes nothing
	if w := s.Final(btn).Width; w != style.AutoVal() {
		t.Errorf("expected the baseline auto on a unit mismatch, got %v", w)
	}
	s.Tick(1)
	if w := s.Final(btn).Width; w != style.AutoVal() {
		t.Errorf("expected auto to hold at full transition, got %v", w)
	}
}

func TestPressedOverridesHover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	btn := s.Mount(parseT(t, `<template>
        <button width="100px" delay="1s" hover:width="150px" pressed:width="200px"/>
    </template>`), nil)
	s.SetInteraction(btn, InteractionPressed)
	s.Tick(1)
	// pressing drives both timers, and the pressed list applies last
	if w := s.Final(btn).Width; w != style.Px(200) {
		t.Errorf("expected the pressed override to win, is %v", w)
	}
}

func TestWatchedInteractionDrivesObservers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	root := s.Mount(parseT(t, `<template>
        <node>
            <button id="btn" width="100px" delay="1s" hover:width="200px"/>
            <node watch="btn" width="100px" delay="1s" hover:width="300px"/>
        </node>
    </template>`), nil)
	btn := s.Children(root)[0]
	watcher := s.Children(root)[1]

	s.SetInteraction(btn, InteractionHovered)
	s.Tick(0.5)
	if w := s.Final(watcher).Width; w != style.Px(200) {
		t.Errorf("expected the watcher to move in lock-step, is %v", w)
	}
	if w := s.Final(btn).Width; w != style.Px(150) {
		t.Errorf("expected the button itself to transition, is %v", w)
	}
	s.SetInteraction(btn, InteractionNone)
	s.Tick(1)
	if w := s.Final(watcher).Width; w != style.Px(100) {
		t.Errorf("expected the watcher to ease back with the button, is %v", w)
	}
}

func TestActiveOverridesAreBinary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	root := s.Mount(parseT(t, `<template>
        <node background="rgb(0,0,0)" active:background="#FFF"/>
    </template>`), nil)
	s.Tick(0)
	if c := s.Final(root).Background; c == style.White {
		t.Error("expected the inactive node to keep its baseline background")
	}
	s.SetActive(root, true)
	s.Tick(0)
	if c := s.Final(root).Background; c != style.White {
		t.Errorf("expected the active override to apply at once, is %v", c)
	}
	s.SetActive(root, false)
	s.Tick(0)
	if c := s.Final(root).Background; c == style.White {
		t.Error("expected the active override to drop at once, didn't")
	}
}

func TestEasedTransitionRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hui.runtime")
	defer teardown()
	//
	s := NewScene(nil)
	btn := s.Mount(parseT(t, `<template>
        <button width="0px" delay="1s" ease="quadratic_in" hover:width="100px"/>
    </template>`), nil)
	s.SetInteraction(btn, InteractionHovered)
	s.Tick(0.5)
	// quadratic_in(0.5) = 0.25
	if w := s.Final(btn).Width; w != style.Px(25) {
		t.Errorf("expected the easing curve to shape the ratio, is %v", w)
	}
}
