package physics

import (
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// ApplyForce adds a force to the body's accumulator. It acts over the next
// Step and is then cleared.
func (w *World) ApplyForce(h BodyHandle, f math.Vec2) error {
	if err := w.checkBody(h); err != nil {
		return err
	}
	b := &w.bodies[h.index]
	if b.kind != Dynamic {
		return nil
	}
	b.force.X += f.X
	b.force.Y += f.Y
	return nil
}

// ApplyImpulse changes the body's velocity by impulse/mass immediately.
func (w *World) ApplyImpulse(h BodyHandle, impulse math.Vec2) error {
	if err := w.checkBody(h); err != nil {
		return err
	}
	b := &w.bodies[h.index]
	if b.kind != Dynamic {
		return nil
	}
	b.velocity.X += impulse.X / b.mass
	b.velocity.Y += impulse.Y / b.mass
	return nil
}

// Velocity returns the body's velocity in pixels per second.
func (w *World) Velocity(h BodyHandle) (math.Vec2, error) {
	if err := w.checkBody(h); err != nil {
		return math.Vec2{}, err
	}
	return w.bodies[h.index].velocity, nil
}

// SetVelocity overrides the body's velocity.
func (w *World) SetVelocity(h BodyHandle, v math.Vec2) error {
	if err := w.checkBody(h); err != nil {
		return err
	}
	if w.bodies[h.index].kind == Dynamic {
		w.bodies[h.index].velocity = v
	}
	return nil
}

// Position returns the centre of the body's collider.
func (w *World) Position(h BodyHandle) (math.Vec2, error) {
	if err := w.checkBody(h); err != nil {
		return math.Vec2{}, err
	}
	return rectOf(w.colliders[w.bodies[h.index].collider].object).Center(), nil
}

// SetPosition moves a dynamic body so its collider is centred on p. Static
// bodies never move.
func (w *World) SetPosition(h BodyHandle, p math.Vec2) error {
	if err := w.checkBody(h); err != nil {
		return err
	}
	b := w.bodies[h.index]
	if b.kind != Dynamic {
		return fmt.Errorf("set position: body %d is static", h.index)
	}
	obj := w.colliders[b.collider].object
	obj.X = p.X - obj.W/2
	obj.Y = p.Y - obj.H/2
	obj.Update()
	return nil
}

// Kind returns whether the body is static or dynamic.
func (w *World) Kind(h BodyHandle) (BodyKind, error) {
	if err := w.checkBody(h); err != nil {
		return Static, err
	}
	return w.bodies[h.index].kind, nil
}

// RotationLocked reports whether the body ignores angular motion. Every body
// in a level world is axis aligned, so this is true for all of them.
func (w *World) RotationLocked(h BodyHandle) (bool, error) {
	if err := w.checkBody(h); err != nil {
		return false, err
	}
	return w.bodies[h.index].lockRotation, nil
}

// Collider returns the collider attached to a body.
func (w *World) Collider(h BodyHandle) (ColliderHandle, error) {
	if err := w.checkBody(h); err != nil {
		return ColliderHandle{}, err
	}
	return ColliderHandle{world: w.id, index: w.bodies[h.index].collider}, nil
}
