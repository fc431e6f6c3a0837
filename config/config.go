package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate and Load when a tuning value is unusable.
var ErrInvalid = errors.New("invalid config")

// Roll impulse modes.
const (
	// RollImpulseOnce applies the roll impulse on the first fixed tick of the roll.
	RollImpulseOnce = "once"
	// RollImpulseEveryTick re-applies the impulse every fixed tick while rolling.
	// This is the legacy behaviour and keeps zeroing vertical velocity mid-roll.
	RollImpulseEveryTick = "every-tick"
)

// Offset is a 2D offset in world pixels.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type SchedulerConfig struct {
	FixedStep     time.Duration `yaml:"fixedStep"`     // physics cadence
	MaxFixedSteps int           `yaml:"maxFixedSteps"` // cap per frame so a slow frame cannot snowball
}

// PlayerConfig contains all player locomotion tuning. Speeds are pixels per
// second, impulses are mass × pixels per second.
type PlayerConfig struct {
	MoveSpeed    float64 `yaml:"moveSpeed"`
	JumpImpulse  float64 `yaml:"jumpImpulse"`
	Mass         float64 `yaml:"mass"`
	GravityScale float64 `yaml:"gravityScale"`

	// Ground check circle, relative to the body centre
	GroundCheckOffset Offset  `yaml:"groundCheckOffset"`
	GroundCheckRadius float64 `yaml:"groundCheckRadius"`

	WallCheckDistance float64 `yaml:"wallCheckDistance"`

	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

type RollConfig struct {
	Impulse     float64       `yaml:"impulse"`
	Duration    time.Duration `yaml:"duration"`
	Cooldown    time.Duration `yaml:"cooldown"`
	ImpulseMode string        `yaml:"impulseMode"`
}

// AttackConfig holds the melee trigger tuning. A zero cooldown means every
// press fires.
type AttackConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`
}

type InteractionConfig struct {
	RayDistance float64 `yaml:"rayDistance"`
	// ContactMargin is how far apart two boxes may be and still count as touching.
	ContactMargin float64 `yaml:"contactMargin"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	CellSize     int     `yaml:"cellSize"`
	PushableMass float64 `yaml:"pushableMass"`
}

// MasksConfig lists the resolv tags each spatial query filters on.
type MasksConfig struct {
	Ground []string `yaml:"ground"`
	Wall   []string `yaml:"wall"`
	Object []string `yaml:"object"`
}

type CameraConfig struct {
	Offset Offset `yaml:"offset"`
}

type DialogConfig struct {
	FadeDuration time.Duration `yaml:"fadeDuration"`
	BoxPadding   float64       `yaml:"boxPadding"`
	BottomMargin float64       `yaml:"bottomMargin"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

type LevelConfig struct {
	// Path to a TMX file on disk. Empty loads the embedded intro level.
	Path string `yaml:"path"`
}

type UIConfig struct {
	FontPath  string  `yaml:"fontPath"`
	FontSize  float64 `yaml:"fontSize"`
	ShowDebug bool    `yaml:"showDebug"`
}

type InputConfig struct {
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"`
	Player      PlayerConfig      `yaml:"player"`
	Roll        RollConfig        `yaml:"roll"`
	Attack      AttackConfig      `yaml:"attack"`
	Interaction InteractionConfig `yaml:"interaction"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Masks       MasksConfig       `yaml:"masks"`
	Camera      CameraConfig      `yaml:"camera"`
	Dialog      DialogConfig      `yaml:"dialog"`
	Logging     LoggingConfig     `yaml:"logging"`
	Level       LevelConfig       `yaml:"level"`
	UI          UIConfig          `yaml:"ui"`
	Input       InputConfig       `yaml:"input"`
}

// Default returns the tuned values the game ships with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "hollowvale",
			Width:  640,
			Height: 360,
		},
		Scheduler: SchedulerConfig{
			FixedStep:     20 * time.Millisecond,
			MaxFixedSteps: 5,
		},
		Player: PlayerConfig{
			MoveSpeed:    160,
			JumpImpulse:  380,
			Mass:         1,
			GravityScale: 1,

			GroundCheckOffset: Offset{X: 0, Y: 14},
			GroundCheckRadius: 3,

			WallCheckDistance: 12.8,

			CollisionWidth:  14,
			CollisionHeight: 28,
		},
		Roll: RollConfig{
			Impulse:     260,
			Duration:    400 * time.Millisecond,
			Cooldown:    time.Second,
			ImpulseMode: RollImpulseOnce,
		},
		Attack: AttackConfig{
			Cooldown: 0,
		},
		Interaction: InteractionConfig{
			RayDistance:   32,
			ContactMargin: 1,
		},
		Physics: PhysicsConfig{
			Gravity:      1100,
			MaxFallSpeed: 600,
			CellSize:     16,
			PushableMass: 2,
		},
		Masks: MasksConfig{
			Ground: []string{"ground", "pushable"},
			Wall:   []string{"wall"},
			Object: []string{"npc", "item", "pushable"},
		},
		Camera: CameraConfig{
			Offset: Offset{X: 0, Y: -40},
		},
		Dialog: DialogConfig{
			FadeDuration: 400 * time.Millisecond,
			BoxPadding:   8,
			BottomMargin: 16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			FontSize: 12,
		},
		Input: InputConfig{
			AnalogDeadzone: 0.25,
		},
	}
}

// Load reads a YAML file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Scheduler.FixedStep <= 0:
		return fmt.Errorf("%w: scheduler.fixedStep must be positive", ErrInvalid)
	case c.Scheduler.MaxFixedSteps < 1:
		return fmt.Errorf("%w: scheduler.maxFixedSteps must be at least 1", ErrInvalid)
	case c.Player.MoveSpeed <= 0:
		return fmt.Errorf("%w: player.moveSpeed must be positive", ErrInvalid)
	case c.Player.Mass <= 0:
		return fmt.Errorf("%w: player.mass must be positive", ErrInvalid)
	case c.Physics.PushableMass <= 0:
		return fmt.Errorf("%w: physics.pushableMass must be positive", ErrInvalid)
	case c.Physics.CellSize <= 0:
		return fmt.Errorf("%w: physics.cellSize must be positive", ErrInvalid)
	case c.Player.GroundCheckRadius <= 0:
		return fmt.Errorf("%w: player.groundCheckRadius must be positive", ErrInvalid)
	case c.Roll.Duration <= 0:
		return fmt.Errorf("%w: roll.duration must be positive", ErrInvalid)
	case c.Roll.Cooldown < 0, c.Attack.Cooldown < 0:
		return fmt.Errorf("%w: cooldowns cannot be negative", ErrInvalid)
	case c.Roll.ImpulseMode != RollImpulseOnce && c.Roll.ImpulseMode != RollImpulseEveryTick:
		return fmt.Errorf("%w: roll.impulseMode %q (want %q or %q)", ErrInvalid, c.Roll.ImpulseMode, RollImpulseOnce, RollImpulseEveryTick)
	case len(c.Masks.Ground) == 0, len(c.Masks.Wall) == 0, len(c.Masks.Object) == 0:
		return fmt.Errorf("%w: every query mask needs at least one tag", ErrInvalid)
	}
	return nil
}
