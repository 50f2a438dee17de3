package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for extensions other than
// .yaml, .yml and .toml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File mirrors every overridable global. Sections missing from a file keep
// the value they had before Load.
type File struct {
	World     WorldConfig     `yaml:"world" toml:"world"`
	Spawner   SpawnerConfig   `yaml:"spawner" toml:"spawner"`
	Parcel    ParcelConfig    `yaml:"parcel" toml:"parcel"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Stack     StackConfig     `yaml:"stack" toml:"stack"`
	Throw     ThrowConfig     `yaml:"throw" toml:"throw"`
	Delivery  DeliveryConfig  `yaml:"delivery" toml:"delivery"`
	Truck     TruckConfig     `yaml:"truck" toml:"truck"`
	Bounds    BoundsConfig    `yaml:"bounds" toml:"bounds"`
	Match     MatchConfig     `yaml:"match" toml:"match"`
	Camera    CameraConfig    `yaml:"camera" toml:"camera"`
	Autopilot AutopilotConfig `yaml:"autopilot" toml:"autopilot"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
	Debug     DebugConfig     `yaml:"debug" toml:"debug"`
}

// Current snapshots the globals.
func Current() File {
	return File{
		World:     World,
		Spawner:   Spawner,
		Parcel:    Parcel,
		Player:    Player,
		Stack:     Stack,
		Throw:     Throw,
		Delivery:  Delivery,
		Truck:     Truck,
		Bounds:    Bounds,
		Match:     Match,
		Camera:    Camera,
		Autopilot: Autopilot,
		Logging:   Logging,
		Debug:     Debug,
	}
}

// Apply writes f back into the globals.
func (f File) Apply() {
	World = f.World
	Spawner = f.Spawner
	Parcel = f.Parcel
	Player = f.Player
	Stack = f.Stack
	Throw = f.Throw
	Delivery = f.Delivery
	Truck = f.Truck
	Bounds = f.Bounds
	Match = f.Match
	Camera = f.Camera
	Autopilot = f.Autopilot
	Logging = f.Logging
	Debug = f.Debug
}

// Validate rejects settings the simulation cannot run with.
func (f File) Validate() error {
	var errs []error
	if f.World.TPS <= 0 {
		errs = append(errs, fmt.Errorf("world.tps must be positive, got %d", f.World.TPS))
	}
	if f.World.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("world.cell_size must be positive, got %d", f.World.CellSize))
	}
	if f.Spawner.MinInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawner.min_interval must be positive, got %s", f.Spawner.MinInterval))
	}
	if f.Spawner.BaseInterval < f.Spawner.MinInterval {
		errs = append(errs, fmt.Errorf("spawner.base_interval %s is below spawner.min_interval %s",
			f.Spawner.BaseInterval, f.Spawner.MinInterval))
	}
	if f.Spawner.Step == 0 {
		errs = append(errs, errors.New("spawner.step must be at least 1"))
	}
	if f.Spawner.Decrement < 0 || f.Spawner.MaxDecrement < 0 {
		errs = append(errs, errors.New("spawner decrements must not be negative"))
	}
	if f.Stack.Capacity < 1 {
		errs = append(errs, fmt.Errorf("stack.capacity must be at least 1, got %d", f.Stack.Capacity))
	}
	if f.Throw.Min < 0 || f.Throw.Min > f.Throw.Max {
		errs = append(errs, fmt.Errorf("throw range [%g, %g] is invalid", f.Throw.Min, f.Throw.Max))
	}
	if f.Parcel.VelocityX.Min > f.Parcel.VelocityX.Max || f.Parcel.VelocityZ.Min > f.Parcel.VelocityZ.Max {
		errs = append(errs, errors.New("parcel velocity ranges must have min <= max"))
	}
	if f.Bounds.DestroyHeight > f.Bounds.DisableColliderHeight {
		errs = append(errs, errors.New("bounds.destroy_height must be below bounds.disable_collider_height"))
	}
	if f.Match.Duration <= 0 {
		errs = append(errs, fmt.Errorf("match.duration must be positive, got %s", f.Match.Duration))
	}
	return errors.Join(errs...)
}

// Load overlays the file at path on the current globals. Nothing is
// applied if decoding or validation fails.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	f := Current()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("decode %s: unknown keys %v", path, undecoded)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	f.Apply()
	return nil
}
