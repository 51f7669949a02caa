package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/heaven-and-hell/assets"
	"github.com/automoto/heaven-and-hell/components"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/fonts"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

var drawOp = &ebiten.DrawImageOptions{}

// levelView collects what every draw function needs from a level world.
type levelView struct {
	world  *physics.World
	offset dmath.Vec2
}

func viewOf(w donburi.World) (levelView, bool) {
	physicsEntry, ok := components.Physics.First(w)
	if !ok {
		return levelView{}, false
	}
	world := components.Physics.Get(physicsEntry).World
	if world == nil || world.Released() {
		return levelView{}, false
	}

	v := levelView{world: world}
	if cameraEntry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(cameraEntry)
		v.offset = dmath.Vec2{X: math.Round(camera.Offset.X), Y: math.Round(camera.Offset.Y)}
	}
	return v, true
}

func visible(r physics.Rect, offset dmath.Vec2, width, height int) bool {
	x, y := r.X-offset.X, r.Y-offset.Y
	return x+r.W >= 0 && y+r.H >= 0 && x <= float64(width) && y <= float64(height)
}

// DrawLevel draws every visible block of the level behind the camera.
func DrawLevel(screen *ebiten.Image, w donburi.World, textures *assets.TextureCache) error {
	view, ok := viewOf(w)
	if !ok {
		return nil
	}
	screen.Fill(cfg.Sky)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, c := range view.world.Colliders() {
		if c.Kind != physics.Static || !c.Block.Renderable() {
			continue
		}
		if !visible(c.Bounds, view.offset, width, height) {
			continue
		}

		img, err := textures.Resolve(c.Block, c.Bounds.X, c.Bounds.Y)
		if err != nil {
			return fmt.Errorf("draw level: %w", err)
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(c.Bounds.X-view.offset.X, c.Bounds.Y-view.offset.Y)
		screen.DrawImage(img, drawOp)
	}
	return nil
}

// DrawPlayer draws the player sprite at its camera-corrected position. The
// collider is smaller than the sprite, so the sprite is centred over it.
func DrawPlayer(screen *ebiten.Image, w donburi.World, textures *assets.TextureCache) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	img := textures.Player(player.Airborne, player.FacingLeft)
	shrink := cfg.Player.ColliderShrink / 2

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(math.Round(player.Position.X-shrink), math.Round(player.Position.Y-shrink))
	screen.DrawImage(img, drawOp)
}

const hudMargin = 10

// DrawHUD shows the current level number in the top-left corner.
func DrawHUD(screen *ebiten.Image, id uint32) {
	face := fonts.HUD.Get()
	label := fmt.Sprintf("LEVEL %d", id)
	text.Draw(screen, label, face, hudMargin, hudMargin+face.Metrics().Ascent.Ceil(), cfg.White)
}

// DrawLoading draws the loading image and text over whatever is on screen,
// faded in by alpha.
func DrawLoading(screen *ebiten.Image, img *ebiten.Image, alpha float32) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	overlay := cfg.Loading.OverlayColor
	overlay.A = uint8(float32(overlay.A) * alpha)
	vector.FillRect(screen, 0, 0, float32(width), float32(height), premultiply(overlay), false)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(
		float64(width-img.Bounds().Dx())/2,
		float64(height-img.Bounds().Dy())/2,
	)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, drawOp)

	face := fonts.Loading.Get()
	label := cfg.Loading.Text
	x := (width - font.MeasureString(face, label).Ceil()) / 2
	y := (height+img.Bounds().Dy())/2 + face.Metrics().Height.Ceil()

	c := cfg.Loading.TextColor
	c.A = uint8(float32(c.A) * alpha)
	text.Draw(screen, label, face, x, y, premultiply(c))
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

// DrawDebug outlines every collider in the level.
func DrawDebug(screen *ebiten.Image, w donburi.World) {
	view, ok := viewOf(w)
	if !ok {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, c := range view.world.Colliders() {
		if !visible(c.Bounds, view.offset, width, height) {
			continue
		}

		col := cfg.Grey
		switch {
		case c.Kind == physics.Dynamic:
			col = cfg.Blue
		case c.Block == level.PlayerEnd:
			col = cfg.BrightGreen
		}

		x := float32(c.Bounds.X - view.offset.X)
		y := float32(c.Bounds.Y - view.offset.Y)
		bw, bh := float32(c.Bounds.W), float32(c.Bounds.H)
		vector.FillRect(screen, x, y, bw, 1, col, false)      // Top
		vector.FillRect(screen, x, y+bh-1, bw, 1, col, false) // Bottom
		vector.FillRect(screen, x, y, 1, bh, col, false)      // Left
		vector.FillRect(screen, x+bw-1, y, 1, bh, col, false) // Right
	}
}
