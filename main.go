// blackfriday is a single-screen parcel sorting arcade game.
//
// Usage:
//
//	blackfriday play                 - Open the game window (default)
//	blackfriday sim --seconds 120    - Run a headless autopilot match
//
// Global flags:
//
//	--config <path>     - YAML or TOML file overlaid on the defaults
//	--log-level <lvl>   - debug, info, warn, error
//	--log-format <fmt>  - console or json
//	--seed <value>      - RNG seed (0 = time based)
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/parcelrush/blackfriday/assets"
	"github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/fonts"
	"github.com/parcelrush/blackfriday/scenes"
	"github.com/parcelrush/blackfriday/systems"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagSeed      int64
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()

	switch s := g.scene.(type) {
	case *scenes.WarehouseScene:
		return s.Err()
	case *scenes.GameOverScene:
		if s.Quit() {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Camera.Width, config.Camera.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blackfriday",
	Short: "Catch falling parcels and throw them to the right carrier",
	Long: `Parcels drop onto the warehouse floor faster and faster. Pick them up,
carry up to three, and throw each into the shipping area of its carrier
before the shift ends.

Controls:
  WASD/Arrows  - Move
  E            - Pick up the highlighted parcel
  Mouse/Space  - Throw the top parcel at the cursor`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML or TOML config overlaid on the defaults")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (console, json)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// setup applies the config file and flags, then installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.Logging.Level = flagLogLevel
	}
	if flags.Changed("log-format") {
		config.Logging.Format = flagLogFormat
	}
	if flags.Changed("seed") {
		config.World.Seed = flagSeed
	}

	log, err := newLogger(config.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	systems.SetLogger(log)
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	defer zap.L().Sync() //nolint:errcheck

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	layout, err := assets.LoadWarehouse()
	if err != nil {
		return err
	}

	g := &Game{}
	g.scene = scenes.NewWarehouseScene(g, layout, config.World.Seed)

	ebiten.SetWindowSize(config.Camera.Width, config.Camera.Height)
	ebiten.SetWindowTitle("Black Friday")
	ebiten.SetTPS(config.World.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	zap.L().Info("starting", zap.String("layout", layout.Name), zap.Int64("seed", config.World.Seed))
	return ebiten.RunGame(g)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
