package physics

// ContactKind tells whether a contact began or ended during a step.
type ContactKind uint8

const (
	ContactStarted ContactKind = iota
	ContactStopped
)

func (k ContactKind) String() string {
	if k == ContactStarted {
		return "started"
	}
	return "stopped"
}

// ContactEvent reports that two colliders began or ceased touching.
type ContactEvent struct {
	Kind ContactKind
	A, B ColliderHandle
}

// Involves reports whether h is one of the two colliders.
func (e ContactEvent) Involves(h ColliderHandle) bool {
	return e.A == h || e.B == h
}

// Is reports whether the event names exactly the pair {a, b} in any order.
func (e ContactEvent) Is(a, b ColliderHandle) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// Other returns the collider paired with h.
func (e ContactEvent) Other(h ColliderHandle) (ColliderHandle, bool) {
	switch h {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	}
	return ColliderHandle{}, false
}

// Contacts returns the contact changes produced by the last Step, ordered
// by collider index with starts before stops.
func (w *World) Contacts() []ContactEvent {
	out := make([]ContactEvent, len(w.events))
	copy(out, w.events)
	return out
}

// Touching reports whether the player collider currently touches h.
func (w *World) Touching(h ColliderHandle) bool {
	if !w.ValidCollider(h) {
		return false
	}
	_, ok := w.touching[h.index]
	return ok
}
