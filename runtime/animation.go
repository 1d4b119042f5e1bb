package runtime

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"math"

	"github.com/npillmayer/hui/style"
)

// animState is the live state of one sprite animation. frame indexes the
// frames list when one is set, otherwise it is the atlas cell directly.
// direction is always plain Forward or Reverse; alternating is decided per
// boundary from the declared direction.
type animState struct {
	acc        float64
	period     float64 // seconds per frame
	budget     float64 // remaining play time, used when duration > 0
	frame      int
	direction  style.AnimDirection
	iterations int
}

// buildAnimation derives the animation state from a node style. Nodes
// without an atlas don't animate.
func buildAnimation(st *style.Style) *animState {
	c := &st.Computed
	if c.Atlas == nil {
		return nil
	}
	fps := c.FPS
	if fps <= 0 {
		fps = 1
	}
	a := &animState{
		period:     1 / float64(fps),
		budget:     c.Duration,
		direction:  style.Forward,
		iterations: c.Iterations,
	}
	if c.Direction == style.Reverse || c.Direction == style.AlternateReverse {
		a.direction = style.Reverse
		if count := frameCount(c); count > 0 {
			a.frame = count - 1
		}
	}
	return a
}

// cell maps the current frame to its atlas cell.
func (a *animState) cell(c *style.Computed) int {
	if len(c.Frames) > 0 {
		return c.Frames[a.frame]
	}
	return a.frame
}

// frameCount is the length of the animation sequence: the frames list when
// set, otherwise every atlas cell.
func frameCount(c *style.Computed) int {
	if len(c.Frames) > 0 {
		return len(c.Frames)
	}
	return c.Atlas.Rows * c.Atlas.Columns
}

// tickAnimations steps every running sprite animation by dt seconds. An
// animation freezes when its iteration budget reaches zero or its play time
// runs out. Alternating directions flip at sequence boundaries, stepping
// inward so boundary frames don't double.
func (s *Scene) tickAnimations(dt float64) {
	for _, n := range s.nodes {
		if n == nil || n.anim == nil || n.image == nil || n.style == nil {
			continue
		}
		a := n.anim
		c := &n.style.Computed
		if a.iterations == 0 {
			continue
		}
		if c.Duration > 0 {
			a.budget -= dt
			if a.budget <= 0 {
				continue
			}
		}
		a.acc += dt
		if a.acc < a.period {
			continue
		}
		a.acc = math.Mod(a.acc, a.period)

		count := frameCount(c)
		if count < 2 {
			continue
		}
		alternate := c.Direction.IsAlternate()
		switch a.direction {
		case style.Reverse:
			if a.frame == 0 {
				if alternate {
					a.direction = style.Forward
					a.frame = 1
				} else {
					a.frame = count - 1
				}
				a.iterations--
			} else {
				a.frame--
			}
		default:
			if a.frame == count-1 {
				if alternate {
					a.direction = style.Reverse
					a.frame = count - 2
				} else {
					a.frame = 0
				}
				a.iterations--
			} else {
				a.frame++
			}
		}
		n.image.Frame = a.cell(c)
	}
}
