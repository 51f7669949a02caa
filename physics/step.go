package physics

import (
	"fmt"
	stdmath "math"
	"sort"

	"github.com/solarlune/resolv"
)

// overlapEpsilon keeps boxes that only share an edge from counting as
// overlapping on that axis.
const overlapEpsilon = 1e-6

// Step advances the world by dt seconds: forces and gravity are integrated
// into velocity, velocity into position with axis separated collision
// resolution against static colliders, and contact changes of the step are
// recorded for Contacts.
func (w *World) Step(dt float64) error {
	if w.released {
		return ErrReleased
	}
	if dt <= 0 {
		return fmt.Errorf("step: dt must be positive, got %v", dt)
	}

	for i := range w.bodies {
		b := &w.bodies[i]
		if b.kind != Dynamic {
			continue
		}

		ax := b.force.X / b.mass
		ay := b.force.Y / b.mass
		if b.gravity {
			ay += w.cfg.Gravity
		}
		b.force.X, b.force.Y = 0, 0

		b.velocity.X += ax * dt
		b.velocity.Y += ay * dt

		damp := 1 / (1 + dt*w.cfg.LinearDamping)
		b.velocity.X *= damp
		b.velocity.Y *= damp

		if w.cfg.MaxFallSpeed > 0 && b.velocity.Y > w.cfg.MaxFallSpeed {
			b.velocity.Y = w.cfg.MaxFallSpeed
		}

		obj := w.colliders[b.collider].object
		if w.moveX(obj, b.velocity.X*dt) {
			b.velocity.X = 0
		}
		if w.moveY(obj, b.velocity.Y*dt) {
			b.velocity.Y = 0
		}
		obj.Update()
	}

	return w.updateContacts()
}

// nearby returns the solid objects in the space cells overlapping r. Contact
// detection needs the slop margin around the box, which Check does not cover.
func (w *World) nearby(self *resolv.Object, r Rect) []*resolv.Object {
	x0, y0 := w.space.WorldToSpace(r.X, r.Y)
	x1, y1 := w.space.WorldToSpace(r.X+r.W, r.Y+r.H)

	seen := map[*resolv.Object]struct{}{}
	var out []*resolv.Object
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := w.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o == self || !o.HasTags(TagSolid) {
					continue
				}
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				out = append(out, o)
			}
		}
	}
	return out
}

// moveX moves obj horizontally by dx in steps no longer than one space
// cell, so a fast body cannot skip over a solid. It reports whether a solid
// stopped the move.
func (w *World) moveX(obj *resolv.Object, dx float64) bool {
	for dx != 0 {
		step := w.clampStep(dx)
		moved, blocked := w.sweepX(obj, step)
		obj.X += moved
		if blocked {
			return true
		}
		dx -= step
	}
	return false
}

// moveY is moveX for the vertical axis.
func (w *World) moveY(obj *resolv.Object, dy float64) bool {
	for dy != 0 {
		step := w.clampStep(dy)
		moved, blocked := w.sweepY(obj, step)
		obj.Y += moved
		if blocked {
			return true
		}
		dy -= step
	}
	return false
}

func (w *World) clampStep(d float64) float64 {
	limit := w.cfg.CellSize
	if limit <= 0 {
		return d
	}
	return stdmath.Max(-limit, stdmath.Min(limit, d))
}

// sweepX limits a horizontal move of obj by dx to the nearest solid that
// resolv reports in the way. It returns the distance actually travelled and
// whether a solid stopped the move.
func (w *World) sweepX(obj *resolv.Object, dx float64) (float64, bool) {
	check := obj.Check(dx, 0, TagSolid)
	if check == nil {
		return dx, false
	}
	limit, blocked := dx, false
	for _, o := range check.ObjectsByTags(TagSolid) {
		if o.Y >= obj.Y+obj.H-overlapEpsilon || o.Y+o.H <= obj.Y+overlapEpsilon {
			continue
		}
		if dx > 0 && o.X >= obj.X+obj.W-overlapEpsilon {
			if gap := o.X - (obj.X + obj.W); gap < limit {
				limit, blocked = stdmath.Max(gap, 0), true
			}
		} else if dx < 0 && o.X+o.W <= obj.X+overlapEpsilon {
			if gap := (o.X + o.W) - obj.X; gap > limit {
				limit, blocked = stdmath.Min(gap, 0), true
			}
		}
	}
	return limit, blocked
}

// sweepY is sweepX for the vertical axis.
func (w *World) sweepY(obj *resolv.Object, dy float64) (float64, bool) {
	check := obj.Check(0, dy, TagSolid)
	if check == nil {
		return dy, false
	}
	limit, blocked := dy, false
	for _, o := range check.ObjectsByTags(TagSolid) {
		if o.X >= obj.X+obj.W-overlapEpsilon || o.X+o.W <= obj.X+overlapEpsilon {
			continue
		}
		if dy > 0 && o.Y >= obj.Y+obj.H-overlapEpsilon {
			if gap := o.Y - (obj.Y + obj.H); gap < limit {
				limit, blocked = stdmath.Max(gap, 0), true
			}
		} else if dy < 0 && o.Y+o.H <= obj.Y+overlapEpsilon {
			if gap := (o.Y + o.H) - obj.Y; gap > limit {
				limit, blocked = stdmath.Min(gap, 0), true
			}
		}
	}
	return limit, blocked
}

// touches reports whether two boxes share an edge or overlap. Boxes that
// only meet at a corner do not touch.
func touches(a, b Rect, slop float64) bool {
	gapX := stdmath.Max(b.X-(a.X+a.W), a.X-(b.X+b.W))
	gapY := stdmath.Max(b.Y-(a.Y+a.H), a.Y-(b.Y+b.H))
	return stdmath.Max(gapX, gapY) <= slop && stdmath.Min(gapX, gapY) < -slop
}

func (w *World) updateContacts() error {
	w.events = w.events[:0]

	for i := range w.bodies {
		b := w.bodies[i]
		if b.kind != Dynamic {
			continue
		}
		obj := w.colliders[b.collider].object
		box := rectOf(obj)
		slop := w.cfg.ContactSlop

		now := map[int]struct{}{}
		area := Rect{X: box.X - slop, Y: box.Y - slop, W: box.W + 2*slop, H: box.H + 2*slop}
		for _, o := range w.nearby(obj, area) {
			if !touches(box, rectOf(o), slop) {
				continue
			}
			idx, ok := w.index[o]
			if !ok {
				return fmt.Errorf("%w: object at (%v,%v) is not owned by world %d", ErrStaleHandle, o.X, o.Y, w.id)
			}
			now[idx] = struct{}{}
		}

		self := ColliderHandle{world: w.id, index: b.collider}
		for _, idx := range sortedKeys(now) {
			if _, was := w.touching[idx]; !was {
				w.events = append(w.events, ContactEvent{Kind: ContactStarted, A: self, B: ColliderHandle{world: w.id, index: idx}})
			}
		}
		for _, idx := range sortedKeys(w.touching) {
			if _, is := now[idx]; !is {
				w.events = append(w.events, ContactEvent{Kind: ContactStopped, A: self, B: ColliderHandle{world: w.id, index: idx}})
			}
		}
		w.touching = now
	}
	return nil
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
