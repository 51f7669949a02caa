package game

import (
	"fmt"

	"github.com/automoto/heaven-and-hell/assets"
	cfg "github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/logger"
	"github.com/automoto/heaven-and-hell/render"
	"github.com/automoto/heaven-and-hell/scenes"
	"github.com/automoto/heaven-and-hell/settings"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game drives the level states from ebiten's frame loop.
type Game struct {
	session  *scenes.Session
	state    scenes.State
	textures *assets.TextureCache
	store    *settings.Store
	prefs    settings.Settings
	logs     *log.Logger
	drawErrs logger.Once
	input    poller
	events   []scenes.Event
}

// New returns a Game that starts by loading level first.
func New(session *scenes.Session, textures *assets.TextureCache, store *settings.Store, prefs settings.Settings, first uint32) *Game {
	g := &Game{
		session:  session,
		textures: textures,
		store:    store,
		prefs:    prefs,
		logs:     session.Logger,
	}
	session.OnLevelChange = g.levelChanged
	g.state = session.Start(first)
	ebiten.SetFullscreen(prefs.Fullscreen)
	return g
}

func (g *Game) levelChanged(id uint32) {
	g.textures.Reset()
	g.drawErrs.Reset()
	ebiten.SetWindowTitle(levelTitle(id))
}

func levelTitle(id uint32) string {
	if id == 0 {
		return cfg.C.Title
	}
	return fmt.Sprintf("%s - Level %d", cfg.C.Title, id)
}

func (g *Game) Update() error {
	g.events = g.input.Poll(g.events[:0])
	for _, ev := range g.events {
		if g.handleGlobal(ev) {
			continue
		}
		if next := scenes.HandleEvent(g.session, g.state, ev); next != nil {
			g.state = next
		}
	}

	next, err := scenes.Update(g.session, g.state)
	if err != nil {
		return err
	}
	if next != nil {
		g.state = next
	}
	return nil
}

// handleGlobal applies the actions that work in every state.
func (g *Game) handleGlobal(ev scenes.Event) bool {
	if ev.Kind != scenes.KeyDown {
		return ev.Action == cfg.ActionToggleDebug || ev.Action == cfg.ActionToggleFullscreen
	}
	switch ev.Action {
	case cfg.ActionToggleDebug:
		g.prefs.ShowDebug = !g.prefs.ShowDebug
	case cfg.ActionToggleFullscreen:
		g.prefs.Fullscreen = !g.prefs.Fullscreen
		ebiten.SetFullscreen(g.prefs.Fullscreen)
	default:
		return false
	}
	if err := g.store.Save(g.prefs); err != nil {
		g.logs.Warn("could not save settings", "error", err)
	}
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch st := g.state.(type) {
	case *scenes.Playing:
		g.drawPlaying(screen, st)
	case *scenes.Loading:
		screen.Fill(cfg.Black)
		if st.Previous != nil {
			g.drawPlaying(screen, st.Previous)
		}
		render.DrawLoading(screen, g.textures.Loading(), st.Alpha())
		st.MarkPresented()
	}
}

func (g *Game) drawPlaying(screen *ebiten.Image, p *scenes.Playing) {
	if err := render.DrawLevel(screen, p.World, g.textures); err != nil {
		g.drawErrs.Error(g.logs, fmt.Sprint(p.ID), "could not draw level", "id", p.ID, "error", err)
	}
	render.DrawPlayer(screen, p.World, g.textures)
	render.DrawHUD(screen, p.ID)
	if g.prefs.ShowDebug || cfg.Debug.ShowColliders {
		render.DrawDebug(screen, p.World)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
