package config

import (
	"image/color"
	"time"
)

// WorldConfig contains simulation-wide values
type WorldConfig struct {
	TPS       int     `yaml:"tps" toml:"tps"`               // fixed simulation steps per second
	Gravity   float64 `yaml:"gravity" toml:"gravity"`       // downward acceleration, units/s²
	CellSize  int     `yaml:"cell_size" toml:"cell_size"`   // resolv cell size in world units
	Seed      int64   `yaml:"seed" toml:"seed"`             // 0 = time based
	MapMargin float64 `yaml:"map_margin" toml:"map_margin"` // extra space around the map for falling parcels
}

// SpawnerConfig contains the parcel spawn ramp
type SpawnerConfig struct {
	BaseInterval time.Duration `yaml:"base_interval" toml:"base_interval"`
	Decrement    time.Duration `yaml:"decrement" toml:"decrement"`         // removed per completed step
	Step         uint64        `yaml:"step" toml:"step"`                   // spawns per ramp level
	MaxDecrement time.Duration `yaml:"max_decrement" toml:"max_decrement"` // cap on the total reduction
	MinInterval  time.Duration `yaml:"min_interval" toml:"min_interval"`   // floor
	Padding      float64       `yaml:"padding" toml:"padding"`             // kept clear from the ground edge
	SpawnHeight  float64       `yaml:"spawn_height" toml:"spawn_height"`
}

// Interval is the delay between drops once count parcels have spawned:
// the base interval minus one decrement per completed step, with the total
// reduction capped and the result floored.
func (c SpawnerConfig) Interval(count uint64) time.Duration {
	var reduction time.Duration
	if c.Step > 0 && c.Decrement > 0 {
		steps := count / c.Step
		if maxSteps := uint64(c.MaxDecrement / c.Decrement); steps > maxSteps {
			steps = maxSteps + 1
		}
		reduction = time.Duration(steps) * c.Decrement
	}
	if reduction > c.MaxDecrement {
		reduction = c.MaxDecrement
	}

	interval := c.BaseInterval - reduction
	if interval < c.MinInterval {
		interval = c.MinInterval
	}
	return interval
}

// Range is a closed interval sampled per axis.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// ParcelConfig contains parcel body values
type ParcelConfig struct {
	Size           float64 `yaml:"size" toml:"size"`
	VelocityX      Range   `yaml:"velocity_x" toml:"velocity_x"`
	VelocityZ      Range   `yaml:"velocity_z" toml:"velocity_z"`
	GroundFriction float64 `yaml:"ground_friction" toml:"ground_friction"` // deceleration on the floor, units/s²
	Spin           float64 `yaml:"spin" toml:"spin"`                       // cosmetic, radians/s
}

// PlayerConfig contains player movement and pickup values
type PlayerConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	PickupRadius float64 `yaml:"pickup_radius" toml:"pickup_radius"`
	BoundsMargin float64 `yaml:"bounds_margin" toml:"bounds_margin"` // how far past the ground edge the player may walk
	Size         float64 `yaml:"size" toml:"size"`
	PulseScale   float64 `yaml:"pulse_scale" toml:"pulse_scale"`
	PulsePeriod  float64 `yaml:"pulse_period" toml:"pulse_period"` // seconds per half cycle
}

// StackConfig contains the held parcel stack values
type StackConfig struct {
	Capacity     int     `yaml:"capacity" toml:"capacity"`
	Spacing      float64 `yaml:"spacing" toml:"spacing"`
	AnchorHeight float64 `yaml:"anchor_height" toml:"anchor_height"` // stack origin above the player's feet
}

// ThrowConfig contains release velocity values
type ThrowConfig struct {
	Factor float64 `yaml:"factor" toml:"factor"`
	Lift   float64 `yaml:"lift" toml:"lift"`
	Min    float64 `yaml:"min" toml:"min"`
	Max    float64 `yaml:"max" toml:"max"`
	Drop   float64 `yaml:"drop" toml:"drop"` // downward speed when released without an aim point
}

// DeliveryConfig contains scoring values
type DeliveryConfig struct {
	MatchDelay    time.Duration `yaml:"match_delay" toml:"match_delay"`
	MismatchDelay time.Duration `yaml:"mismatch_delay" toml:"mismatch_delay"`
	MatchScore    int           `yaml:"match_score" toml:"match_score"`
	MismatchScore int           `yaml:"mismatch_score" toml:"mismatch_score"`
	ContactHeight float64       `yaml:"contact_height" toml:"contact_height"` // parcel must be this low to touch a zone
}

// TruckConfig contains the departure animation values
type TruckConfig struct {
	Speed    float64       `yaml:"speed" toml:"speed"`
	Duration time.Duration `yaml:"duration" toml:"duration"`
	Length   float64       `yaml:"length" toml:"length"`
	Width    float64       `yaml:"width" toml:"width"`
}

// BoundsConfig contains the fall-out heights
type BoundsConfig struct {
	DisableColliderHeight float64 `yaml:"disable_collider_height" toml:"disable_collider_height"`
	DestroyHeight         float64 `yaml:"destroy_height" toml:"destroy_height"`
}

// MatchConfig contains the session timer
type MatchConfig struct {
	Duration time.Duration `yaml:"duration" toml:"duration"`
}

// CameraConfig contains the oblique top-down projection
type CameraConfig struct {
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit" toml:"pixels_per_unit"`
	Pitch         float64 `yaml:"pitch" toml:"pitch"`   // degrees below the horizon, 90 = straight down
	Follow        float64 `yaml:"follow" toml:"follow"` // share of the distance to the player closed per tick
}

// AutopilotConfig contains the scripted player used by headless runs
type AutopilotConfig struct {
	ReactionTicks int     `yaml:"reaction_ticks" toml:"reaction_ticks"` // ticks between decisions
	ArriveRadius  float64 `yaml:"arrive_radius" toml:"arrive_radius"`
	ThrowRange    float64 `yaml:"throw_range" toml:"throw_range"` // distance to the zone edge before throwing
}

// LoggingConfig selects the zap encoder
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowRadius    bool `yaml:"show_radius" toml:"show_radius"`
	ShowColliders bool `yaml:"show_colliders" toml:"show_colliders"` // outline resolv footprints
}

// Global configuration instances
var World WorldConfig
var Spawner SpawnerConfig
var Parcel ParcelConfig
var Player PlayerConfig
var Stack StackConfig
var Throw ThrowConfig
var Delivery DeliveryConfig
var Truck TruckConfig
var Bounds BoundsConfig
var Match MatchConfig
var Camera CameraConfig
var Autopilot AutopilotConfig
var Logging LoggingConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Highlight    = color.RGBA{R: 255, G: 255, B: 255, A: 204}
	Ground       = color.RGBA{R: 255, G: 128, B: 77, A: 255}
	Background   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 90}
	PlayerColor  = color.RGBA{R: 240, G: 230, B: 200, A: 255}
	TruckColor   = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

// Dt returns the fixed simulation step in seconds.
func Dt() float64 {
	if World.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(World.TPS)
}

func init() {
	Reset()
}

// Reset restores every global to its default. Tests call it to isolate
// changes made by Load or by hand.
func Reset() {
	World = WorldConfig{
		TPS:       60,
		Gravity:   9.81,
		CellSize:  1,
		Seed:      0,
		MapMargin: 4,
	}

	Spawner = SpawnerConfig{
		BaseInterval: 2000 * time.Millisecond,
		Decrement:    150 * time.Millisecond,
		Step:         5,
		MaxDecrement: 1400 * time.Millisecond,
		MinInterval:  500 * time.Millisecond,
		Padding:      1.25,
		SpawnHeight:  8.0,
	}

	Parcel = ParcelConfig{
		Size:           0.5,
		VelocityX:      Range{Min: -1.5, Max: 1.5},
		VelocityZ:      Range{Min: -1.5, Max: 1.5},
		GroundFriction: 6.0,
		Spin:           1.0,
	}

	Player = PlayerConfig{
		Speed:        5.0,
		PickupRadius: 3.0,
		BoundsMargin: 2.0,
		Size:         0.8,
		PulseScale:   0.85,
		PulsePeriod:  0.666,
	}

	Stack = StackConfig{
		Capacity:     3,
		Spacing:      0.475, // parcel size * 0.95
		AnchorHeight: 0.975, // half the player plus one spacing
	}

	Throw = ThrowConfig{
		Factor: 1.5,
		Lift:   7.0,
		Min:    2.0,
		Max:    12.0,
		Drop:   0.05,
	}

	Delivery = DeliveryConfig{
		MatchDelay:    600 * time.Millisecond,
		MismatchDelay: 600 * time.Millisecond,
		MatchScore:    1,
		MismatchScore: -1,
		ContactHeight: 0.3,
	}

	Truck = TruckConfig{
		Speed:    6.0,
		Duration: 2 * time.Second,
		Length:   3.0,
		Width:    1.6,
	}

	Bounds = BoundsConfig{
		DisableColliderHeight: -5.0,
		DestroyHeight:         -30.0,
	}

	Match = MatchConfig{
		Duration: 120 * time.Second,
	}

	Camera = CameraConfig{
		Width:         1280,
		Height:        720,
		PixelsPerUnit: 22,
		Pitch:         55,
		Follow:        0.05,
	}

	Autopilot = AutopilotConfig{
		ReactionTicks: 6,
		ArriveRadius:  0.6,
		ThrowRange:    4.0,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{
		ShowRadius:    false,
		ShowColliders: false,
	}
}
