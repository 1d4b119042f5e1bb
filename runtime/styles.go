package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/hui/markup"
	"github.com/npillmayer/hui/style"
)

// interactionTimer tracks the progress of one interaction-state transition.
// It runs forward while the state is engaged and backward while it is not,
// so releasing mid-transition eases back from wherever it was.
type interactionTimer struct {
	elapsed float64
	max     float64 // transition length in seconds, never zero
}

func (t *interactionTimer) forward(dt float64) {
	t.elapsed += dt
	if t.elapsed > t.max {
		t.elapsed = t.max
	}
}

func (t *interactionTimer) backward(dt float64) {
	t.elapsed -= dt
	if t.elapsed < 0 {
		t.elapsed = 0
	}
}

// fraction is the transition progress in [0,1].
func (t *interactionTimer) fraction() float64 {
	if t.max <= 0 {
		return 0
	}
	return t.elapsed / t.max
}

// tickInteractions advances the transition timers of every interactive node
// and of the observers watching it. Watchers move in lock-step with the node
// they watch; their own timers are never driven directly.
func (s *Scene) tickInteractions(dt float64) {
	for _, n := range s.nodes {
		if n == nil || n.style == nil {
			continue
		}
		if n.kind != markup.KindButton && !n.interactive {
			continue
		}
		for _, id := range append(append([]NodeID(nil), n.observers...), n.id) {
			m := s.alive(id)
			if m == nil || m.style == nil {
				tracer().Errorf("node %d observing %d cannot transition", id, n.id)
				continue
			}
			switch n.interaction {
			case InteractionPressed:
				m.hover.forward(dt)
				m.pressed.forward(dt)
			case InteractionHovered:
				m.hover.forward(dt)
				m.pressed.backward(dt)
			default:
				m.hover.backward(dt)
				m.pressed.backward(dt)
			}
		}
	}
}

// updateStyles recomputes the resolved style of every node: the computed
// baseline with the hover, pressed and active override lists blended in at
// the eased transition ratios. Active overrides are binary.
func (s *Scene) updateStyles() {
	for _, n := range s.nodes {
		if n == nil || n.style == nil {
			continue
		}
		base := &n.style.Computed
		final := *base
		if final.Shadow != nil {
			sh := *final.Shadow
			final.Shadow = &sh
		}
		ease := base.Easing
		hover := eased(ease, n.hover.fraction())
		for _, a := range n.style.Hover {
			style.ApplyInterpolated(&final, base, a, hover)
		}
		pressed := eased(ease, n.pressed.fraction())
		for _, a := range n.style.Pressed {
			style.ApplyInterpolated(&final, base, a, pressed)
		}
		if n.active {
			for _, a := range n.style.Active {
				style.ApplyInterpolated(&final, base, a, 1)
			}
		}
		n.final = final
	}
}

// eased samples the easing curve, falling back to the raw ratio for curves
// without a closed-form sample.
func eased(e style.EaseFunction, t float64) float64 {
	if v, ok := e.Sample(t); ok {
		return v
	}
	return t
}
