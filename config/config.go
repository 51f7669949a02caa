package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PhysicsConfig contains simulation constants. Units are pixels and seconds.
type PhysicsConfig struct {
	BlockSize     float64 `yaml:"block_size"`     // Edge length of one grid cell in world space
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration applied to dynamic bodies
	LinearDamping float64 `yaml:"linear_damping"` // Velocity decay per second
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	ContactSlop   float64 `yaml:"contact_slop"` // Max gap at which two boxes still count as touching
	TimeStep      float64 `yaml:"time_step"`    // Fixed tick advanced per frame
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkForce   float64 `yaml:"walk_force"`   // Continuous horizontal force while a direction is held
	JumpImpulse float64 `yaml:"jump_impulse"` // Upward velocity change applied by a jump
	MaxJumps    int     `yaml:"max_jumps"`
	Mass        float64 `yaml:"mass"`

	// Dimensions
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	ColliderShrink  float64 `yaml:"collider_shrink"` // Trimmed from both axes so the box does not snag on seams
}

// LevelConfig controls how level ids map to level geometry
type LevelConfig struct {
	BaseNodeSize   int    `yaml:"base_node_size"`   // Node size of level 0
	NodeSizeGrowth int    `yaml:"node_size_growth"` // Extra nodes per axis for every level id
	FirstLevel     uint32 `yaml:"first_level"`
	TitleLevel     string `yaml:"title_level"` // Embedded TMX used for level 0
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ClampToLevel bool `yaml:"clamp_to_level"`
}

// LoadingConfig contains the loading screen configuration
type LoadingConfig struct {
	Text         string     `yaml:"text"`
	FadeSeconds  float64    `yaml:"fade_seconds"`
	ImageSize    int        `yaml:"image_size"` // Side of the generated radial image before dithering
	TextColor    color.RGBA `yaml:"-"`
	OverlayColor color.RGBA `yaml:"-"`
}

// AssetsConfig points at optional texture overrides on disk
type AssetsConfig struct {
	Dir        string `yaml:"dir"`
	DirtFile   string `yaml:"dirt_file"`
	GraveFile  string `yaml:"grave_file"`
	SourceTile int    `yaml:"source_tile"` // Side of one source tile in pixels before upscaling
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool  `yaml:"show_colliders"`
	Seed          int64 `yaml:"seed"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var Loading LoadingConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky          = color.RGBA{R: 24, G: 20, B: 37, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 640,
		Title:  "Heaven and Hell",
		TPS:    60,
	}

	Physics = PhysicsConfig{
		BlockSize:     32,
		Gravity:       1800,
		LinearDamping: 4,
		MaxFallSpeed:  720,
		ContactSlop:   0.5,
		TimeStep:      1.0 / 60.0,
	}

	Player = PlayerConfig{
		WalkForce:   1400,
		JumpImpulse: 640,
		MaxJumps:    1,
		Mass:        1,

		// Sprites are 8x16 source pixels drawn at twice their size
		FrameWidth:      16,
		FrameHeight:     32,
		CollisionWidth:  16,
		CollisionHeight: 32,
		ColliderShrink:  2,
	}

	Level = LevelConfig{
		BaseNodeSize:   13,
		NodeSizeGrowth: 2,
		FirstLevel:     1,
		TitleLevel:     "levels/title.tmx",
	}

	Camera = CameraConfig{
		ClampToLevel: true,
	}

	Loading = LoadingConfig{
		Text:         "LOADING!",
		FadeSeconds:  0.25,
		ImageSize:    160,
		TextColor:    White,
		OverlayColor: BlackOverlay,
	}

	Assets = AssetsConfig{
		DirtFile:   "blocks/dirt.png",
		GraveFile:  "blocks/grave.png",
		SourceTile: 8,
	}

	Debug = DebugConfig{
		ShowColliders: false,
	}
}
