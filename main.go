// heaven-and-hell is a platformer through ever larger generated mazes.
//
// Usage:
//
//	heaven-and-hell [flags]
//
// Flags:
//
//	--seed <value>      - Maze and texture seed (0 = random based on time)
//	--level <id>        - Level to start on (0 is the title level)
//	--config <path>     - YAML config override
//	--debug             - Draw collider outlines
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/heaven-and-hell/assets"
	"github.com/automoto/heaven-and-hell/config"
	"github.com/automoto/heaven-and-hell/fonts"
	"github.com/automoto/heaven-and-hell/game"
	"github.com/automoto/heaven-and-hell/level"
	"github.com/automoto/heaven-and-hell/logger"
	"github.com/automoto/heaven-and-hell/maze"
	"github.com/automoto/heaven-and-hell/scenes"
	"github.com/automoto/heaven-and-hell/settings"
	"github.com/automoto/heaven-and-hell/tileset"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi/features/math"
)

var (
	flagSeed     int64
	flagLevel    uint32
	flagConfig   string
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heaven-and-hell",
	Short: "Climb out of ever larger mazes",
	Long: `Heaven and Hell drops you into a generated maze. Reach the grave
to descend into the next one; every level is a little bigger.

Controls:
  A/D, Left/Right  - Walk
  W/Space/Up       - Jump
  F3               - Toggle collider outlines
  F11              - Toggle fullscreen`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Maze and texture seed (0 = random based on time)")
	rootCmd.Flags().Uint32Var(&flagLevel, "level", 1, "Level to start on (0 is the title level)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Draw collider outlines")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := logger.New(flagLogLevel)
	if err != nil {
		return err
	}

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("loaded config", "path", path)
	}

	if cmd.Flags().Changed("seed") {
		config.Debug.Seed = flagSeed
	}
	if config.Debug.Seed == 0 {
		config.Debug.Seed = time.Now().UnixNano()
	}
	if flagDebug {
		config.Debug.ShowColliders = true
	}
	start := config.Level.FirstLevel
	if cmd.Flags().Changed("level") {
		start = flagLevel
	}
	log.Debug("starting", "seed", config.Debug.Seed, "id", start)

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	var overrides fs.FS
	if config.Assets.Dir != "" {
		overrides = os.DirFS(config.Assets.Dir)
	}
	tiles, err := tileset.New(config.Debug.Seed, overrides)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(config.Debug.Seed))
	levels := level.NewCache(maze.NewLevelSource(rng, level.Embedded))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	session := scenes.NewSession(ctx, levels, log, math.Vec2{X: float64(config.C.Width), Y: float64(config.C.Height)})

	store := settings.Open(log)
	prefs, err := store.Load()
	if err != nil {
		log.Warn("ignoring saved settings", "error", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	g := game.New(session, assets.NewTextureCache(tiles), store, prefs, start)
	return ebiten.RunGame(g)
}
