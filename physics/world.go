package physics

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolv tags for level geometry
const (
	TagSolid  = "solid"
	TagExit   = "exit"
	TagPlayer = "player"
)

var (
	ErrStaleHandle = errors.New("physics handle does not belong to a live world")
	ErrReleased    = errors.New("physics world has been released")
	ErrNotStatic   = errors.New("collider has no source block")
)

// Config holds the simulation constants of one world.
type Config struct {
	CellSize       float64
	Gravity        float64
	LinearDamping  float64
	MaxFallSpeed   float64
	ContactSlop    float64
	PlayerWidth    float64
	PlayerHeight   float64
	ColliderShrink float64
	PlayerMass     float64
}

// DefaultConfig reads the simulation constants from the config package.
func DefaultConfig() Config {
	return Config{
		CellSize:       config.Physics.BlockSize,
		Gravity:        config.Physics.Gravity,
		LinearDamping:  config.Physics.LinearDamping,
		MaxFallSpeed:   config.Physics.MaxFallSpeed,
		ContactSlop:    config.Physics.ContactSlop,
		PlayerWidth:    config.Player.CollisionWidth,
		PlayerHeight:   config.Player.CollisionHeight,
		ColliderShrink: config.Player.ColliderShrink,
		PlayerMass:     config.Player.Mass,
	}
}

// BodyKind tells static level geometry apart from simulated bodies.
type BodyKind uint8

const (
	Static BodyKind = iota
	Dynamic
)

// BodyHandle is an opaque reference to a body of one World.
type BodyHandle struct {
	world uint64
	index int
}

// ColliderHandle is an opaque reference to a collider of one World.
type ColliderHandle struct {
	world uint64
	index int
}

// Index returns the collider's position in build order.
func (h ColliderHandle) Index() int {
	return h.index
}

// Rect is an axis aligned box in world space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

type body struct {
	kind         BodyKind
	velocity     math.Vec2
	force        math.Vec2
	mass         float64
	gravity      bool
	lockRotation bool
	collider     int
}

type collider struct {
	object *resolv.Object
	body   int
}

// ColliderInfo describes one collider for drawing and debugging.
type ColliderInfo struct {
	Handle ColliderHandle
	Kind   BodyKind
	Block  level.Block
	Bounds Rect
}

var worldIDs atomic.Uint64

// World is the live simulation of one level instance. It is owned by a
// single level state and must not be shared.
type World struct {
	id        uint64
	cfg       Config
	space     *resolv.Space
	bodies    []body
	colliders []collider
	// blocks maps a static collider index to the block it was built from.
	blocks   []level.Block
	index    map[*resolv.Object]int
	player   int
	exit     int
	touching map[int]struct{}
	events   []ContactEvent
	width    float64
	height   float64
	released bool
}

// Build creates one static body and square collider for every collidable
// cell of grid and one dynamic body for the player at the PlayerStart cell.
// A grid without a PlayerEnd still builds; Exit then reports false.
func Build(grid level.Grid, cfg Config) (*World, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("build physics world: %w", err)
	}
	start, err := grid.Start()
	if err != nil {
		return nil, fmt.Errorf("build physics world: %w", err)
	}
	if cfg.CellSize <= 0 {
		return nil, fmt.Errorf("build physics world: cell size must be positive, got %v", cfg.CellSize)
	}

	cs := cfg.CellSize
	w := &World{
		id:       worldIDs.Add(1),
		cfg:      cfg,
		space:    resolv.NewSpace(int(float64(grid.Width())*cs), int(float64(grid.Height())*cs), int(cs), int(cs)),
		exit:     -1,
		index:    make(map[*resolv.Object]int),
		touching: make(map[int]struct{}),
		width:    float64(grid.Width()) * cs,
		height:   float64(grid.Height()) * cs,
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			b := grid.At(x, y)
			if !b.Collidable() {
				continue
			}
			tags := []string{TagSolid}
			if b == level.PlayerEnd {
				tags = append(tags, TagExit)
			}
			idx := w.addBody(body{kind: Static, mass: 0, lockRotation: true}, Rect{X: float64(x) * cs, Y: float64(y) * cs, W: cs, H: cs}, tags...)
			w.blocks = append(w.blocks, b)
			if b == level.PlayerEnd {
				w.exit = w.bodies[idx].collider
			}
		}
	}

	pw := cfg.PlayerWidth - cfg.ColliderShrink
	ph := cfg.PlayerHeight - cfg.ColliderShrink
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("build physics world: player box %vx%v is empty", pw, ph)
	}
	mass := cfg.PlayerMass
	if mass <= 0 {
		mass = 1
	}
	cx := (float64(start.X) + 0.5) * cs
	cy := (float64(start.Y) + 0.5) * cs
	w.player = w.addBody(body{
		kind:         Dynamic,
		mass:         mass,
		gravity:      true,
		lockRotation: true,
	}, Rect{X: cx - pw/2, Y: cy - ph/2, W: pw, H: ph}, TagPlayer)

	return w, nil
}

func (w *World) addBody(b body, r Rect, tags ...string) int {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	w.space.Add(obj)

	b.collider = len(w.colliders)
	w.index[obj] = b.collider
	w.bodies = append(w.bodies, b)
	w.colliders = append(w.colliders, collider{object: obj, body: len(w.bodies) - 1})
	return len(w.bodies) - 1
}

// Release detaches every collider from the world. All handles issued by the
// world become invalid.
func (w *World) Release() {
	if w.released {
		return
	}
	for _, c := range w.colliders {
		w.space.Remove(c.object)
	}
	w.released = true
	w.events = nil
	w.touching = nil
}

// Released reports whether Release has been called.
func (w *World) Released() bool {
	return w.released
}

// ID identifies the world for diagnostics.
func (w *World) ID() uint64 {
	return w.id
}

// Size returns the world extent in pixels.
func (w *World) Size() (float64, float64) {
	return w.width, w.height
}

// Player returns the handle of the player body.
func (w *World) Player() BodyHandle {
	return BodyHandle{world: w.id, index: w.player}
}

// PlayerCollider returns the handle of the player's collider.
func (w *World) PlayerCollider() ColliderHandle {
	return ColliderHandle{world: w.id, index: w.bodies[w.player].collider}
}

// Exit returns the collider of the PlayerEnd block, if the level has one.
func (w *World) Exit() (ColliderHandle, bool) {
	if w.exit < 0 {
		return ColliderHandle{}, false
	}
	return ColliderHandle{world: w.id, index: w.exit}, true
}

// StaticColliders returns the number of colliders built from grid cells.
func (w *World) StaticColliders() int {
	return len(w.blocks)
}

// ValidBody reports whether h refers to a body of this live world.
func (w *World) ValidBody(h BodyHandle) bool {
	return !w.released && h.world == w.id && h.index >= 0 && h.index < len(w.bodies)
}

// ValidCollider reports whether h refers to a collider of this live world.
func (w *World) ValidCollider(h ColliderHandle) bool {
	return !w.released && h.world == w.id && h.index >= 0 && h.index < len(w.colliders)
}

func (w *World) checkBody(h BodyHandle) error {
	if !w.ValidBody(h) {
		return fmt.Errorf("%w: body %d of world %d used with world %d", ErrStaleHandle, h.index, h.world, w.id)
	}
	return nil
}

func (w *World) checkCollider(h ColliderHandle) error {
	if !w.ValidCollider(h) {
		return fmt.Errorf("%w: collider %d of world %d used with world %d", ErrStaleHandle, h.index, h.world, w.id)
	}
	return nil
}

// Block returns the grid block a static collider was built from.
func (w *World) Block(h ColliderHandle) (level.Block, error) {
	if err := w.checkCollider(h); err != nil {
		return level.Air, err
	}
	if h.index >= len(w.blocks) {
		return level.Air, fmt.Errorf("%w: collider %d", ErrNotStatic, h.index)
	}
	return w.blocks[h.index], nil
}

// Bounds returns the current box of a collider.
func (w *World) Bounds(h ColliderHandle) (Rect, error) {
	if err := w.checkCollider(h); err != nil {
		return Rect{}, err
	}
	return rectOf(w.colliders[h.index].object), nil
}

// Colliders lists every collider in build order.
func (w *World) Colliders() []ColliderInfo {
	if w.released {
		return nil
	}
	infos := make([]ColliderInfo, 0, len(w.colliders))
	for i, c := range w.colliders {
		info := ColliderInfo{
			Handle: ColliderHandle{world: w.id, index: i},
			Kind:   w.bodies[c.body].kind,
			Block:  level.Air,
			Bounds: rectOf(c.object),
		}
		if i < len(w.blocks) {
			info.Block = w.blocks[i]
		}
		infos = append(infos, info)
	}
	return infos
}

func rectOf(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
