package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/templer/constants"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes environment overrides, e.g. TEMPLER_PLAYER_START_HP
const EnvPrefix = "TEMPLER"

// Config is the complete simulation tuning, passed by value into the world
type Config struct {
	// Seed for the simulation RNG, 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	Tick    TickConfig    `mapstructure:"tick"`
	Player  PlayerConfig  `mapstructure:"player"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Spawn   SpawnConfig   `mapstructure:"spawn"`
	Render  RenderConfig  `mapstructure:"render"`
	Input   InputConfig   `mapstructure:"input"`
}

// TickConfig paces the two drivers
type TickConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// PlayerConfig is applied on every reset
type PlayerConfig struct {
	Radius        float64       `mapstructure:"radius"`
	StartHP       float64       `mapstructure:"start_hp"`
	MaxSpeed      float64       `mapstructure:"max_speed"`
	StartX        float64       `mapstructure:"start_x"` // Fraction of canvas width
	StartY        float64       `mapstructure:"start_y"` // Fraction of canvas height
	FlashDuration time.Duration `mapstructure:"flash_duration"`
}

// ScoringConfig holds score-over-time and penalties
type ScoringConfig struct {
	PassiveInterval  time.Duration `mapstructure:"passive_interval"`
	Passive          int           `mapstructure:"passive"`
	CollisionPenalty int           `mapstructure:"collision_penalty"`
}

// SpawnConfig holds the spawner timers, rolls and variant parameters
type SpawnConfig struct {
	SteerChance int                 `mapstructure:"steer_chance"`
	Enemy       EnemySpawnConfig    `mapstructure:"enemy"`
	Obstacle    ObstacleSpawnConfig `mapstructure:"obstacle"`
	Coin        CoinSpawnConfig     `mapstructure:"coin"`
}

// EnemySpawnConfig covers balls and lifesavers
type EnemySpawnConfig struct {
	Initial       time.Duration `mapstructure:"initial"`
	Interval      time.Duration `mapstructure:"interval"`
	RollRange     int           `mapstructure:"roll_range"`
	Threshold     int           `mapstructure:"threshold"`
	BallThreshold int           `mapstructure:"ball_threshold"`
	Radius        float64       `mapstructure:"radius"`
	MaxSpeed      float64       `mapstructure:"max_speed"`
	SpeedMin      int           `mapstructure:"speed_min"`
	SpeedMax      int           `mapstructure:"speed_max"`
}

// ObstacleSpawnConfig covers obstacles and the spiked wall
type ObstacleSpawnConfig struct {
	Initial           time.Duration `mapstructure:"initial"`
	Interval          time.Duration `mapstructure:"interval"`
	RollRange         int           `mapstructure:"roll_range"`
	Threshold         int           `mapstructure:"threshold"`
	BlockThreshold    int           `mapstructure:"block_threshold"`
	Width             float64       `mapstructure:"width"`
	Height            float64       `mapstructure:"height"`
	Speed             float64       `mapstructure:"speed"`
	MaxSpeed          float64       `mapstructure:"max_speed"`
	WallMinWidth      float64       `mapstructure:"wall_min_width"`
	WallWidthFraction float64       `mapstructure:"wall_width_fraction"`
	WallHeight        float64       `mapstructure:"wall_height"`
	WallHP            float64       `mapstructure:"wall_hp"`
	WallSpeed         float64       `mapstructure:"wall_speed"`
	WallMaxSpeedX     float64       `mapstructure:"wall_max_speed_x"`
	WallMaxSpeedY     float64       `mapstructure:"wall_max_speed_y"`
}

// CoinSpawnConfig covers coins
type CoinSpawnConfig struct {
	Initial   time.Duration `mapstructure:"initial"`
	Interval  time.Duration `mapstructure:"interval"`
	RollRange int           `mapstructure:"roll_range"`
	Threshold int           `mapstructure:"threshold"`
	Radius    float64       `mapstructure:"radius"`
	MaxSpeed  float64       `mapstructure:"max_speed"`
	SpeedMin  int           `mapstructure:"speed_min"`
	SpeedMax  int           `mapstructure:"speed_max"`
}

// RenderConfig maps canvas pixels onto terminal cells
type RenderConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
}

// InputConfig tunes key handling
type InputConfig struct {
	HoldWindow time.Duration `mapstructure:"hold_window"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Tick: TickConfig{
			Interval:      constants.GameUpdateInterval,
			FrameInterval: constants.FrameUpdateInterval,
		},
		Player: PlayerConfig{
			Radius:        constants.PlayerRadius,
			StartHP:       constants.PlayerStartHP,
			MaxSpeed:      constants.PlayerMaxSpeed,
			StartX:        constants.PlayerStartX,
			StartY:        constants.PlayerStartY,
			FlashDuration: constants.PlayerFlashDuration,
		},
		Scoring: ScoringConfig{
			PassiveInterval:  constants.PassiveScoreInterval,
			Passive:          constants.PassiveScore,
			CollisionPenalty: constants.CollisionPenalty,
		},
		Spawn: SpawnConfig{
			SteerChance: constants.SteerChance,
			Enemy: EnemySpawnConfig{
				Initial:       constants.EnemySpawnInitial,
				Interval:      constants.EnemySpawnInterval,
				RollRange:     constants.EnemyRollRange,
				Threshold:     constants.EnemySpawnThreshold,
				BallThreshold: constants.BallSpawnThreshold,
				Radius:        constants.EnemyRadius,
				MaxSpeed:      constants.EnemyMaxSpeed,
				SpeedMin:      constants.EnemySpeedMin,
				SpeedMax:      constants.EnemySpeedMax,
			},
			Obstacle: ObstacleSpawnConfig{
				Initial:           constants.ObstacleSpawnInitial,
				Interval:          constants.ObstacleSpawnInterval,
				RollRange:         constants.ObstacleRollRange,
				Threshold:         constants.ObstacleSpawnThreshold,
				BlockThreshold:    constants.BlockSpawnThreshold,
				Width:             constants.ObstacleWidth,
				Height:            constants.ObstacleHeight,
				Speed:             constants.ObstacleSpeed,
				MaxSpeed:          constants.ObstacleMaxSpeed,
				WallMinWidth:      constants.SpikedWallMinWidth,
				WallWidthFraction: constants.SpikedWallWidthFraction,
				WallHeight:        constants.SpikedWallHeight,
				WallHP:            constants.SpikedWallHP,
				WallSpeed:         constants.SpikedWallSpeed,
				WallMaxSpeedX:     constants.SpikedWallMaxSpeedX,
				WallMaxSpeedY:     constants.SpikedWallMaxSpeedY,
			},
			Coin: CoinSpawnConfig{
				Initial:   constants.CoinSpawnInitial,
				Interval:  constants.CoinSpawnInterval,
				RollRange: constants.CoinRollRange,
				Threshold: constants.CoinSpawnThreshold,
				Radius:    constants.CoinRadius,
				MaxSpeed:  constants.CoinMaxSpeed,
				SpeedMin:  constants.CoinSpeedMin,
				SpeedMax:  constants.CoinSpeedMax,
			},
		},
		Render: RenderConfig{
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
		},
		Input: InputConfig{
			HoldWindow: constants.KeyHoldWindow,
		},
	}
}

// LoadConfig layers an optional config file and TEMPLER_* environment
// variables over DefaultConfig. An empty path skips the file
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every key so environment overrides resolve on Unmarshal
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("seed", d.Seed)

	v.SetDefault("tick.interval", d.Tick.Interval)
	v.SetDefault("tick.frame_interval", d.Tick.FrameInterval)

	v.SetDefault("player.radius", d.Player.Radius)
	v.SetDefault("player.start_hp", d.Player.StartHP)
	v.SetDefault("player.max_speed", d.Player.MaxSpeed)
	v.SetDefault("player.start_x", d.Player.StartX)
	v.SetDefault("player.start_y", d.Player.StartY)
	v.SetDefault("player.flash_duration", d.Player.FlashDuration)

	v.SetDefault("scoring.passive_interval", d.Scoring.PassiveInterval)
	v.SetDefault("scoring.passive", d.Scoring.Passive)
	v.SetDefault("scoring.collision_penalty", d.Scoring.CollisionPenalty)

	v.SetDefault("spawn.steer_chance", d.Spawn.SteerChance)

	e := d.Spawn.Enemy
	v.SetDefault("spawn.enemy.initial", e.Initial)
	v.SetDefault("spawn.enemy.interval", e.Interval)
	v.SetDefault("spawn.enemy.roll_range", e.RollRange)
	v.SetDefault("spawn.enemy.threshold", e.Threshold)
	v.SetDefault("spawn.enemy.ball_threshold", e.BallThreshold)
	v.SetDefault("spawn.enemy.radius", e.Radius)
	v.SetDefault("spawn.enemy.max_speed", e.MaxSpeed)
	v.SetDefault("spawn.enemy.speed_min", e.SpeedMin)
	v.SetDefault("spawn.enemy.speed_max", e.SpeedMax)

	o := d.Spawn.Obstacle
	v.SetDefault("spawn.obstacle.initial", o.Initial)
	v.SetDefault("spawn.obstacle.interval", o.Interval)
	v.SetDefault("spawn.obstacle.roll_range", o.RollRange)
	v.SetDefault("spawn.obstacle.threshold", o.Threshold)
	v.SetDefault("spawn.obstacle.block_threshold", o.BlockThreshold)
	v.SetDefault("spawn.obstacle.width", o.Width)
	v.SetDefault("spawn.obstacle.height", o.Height)
	v.SetDefault("spawn.obstacle.speed", o.Speed)
	v.SetDefault("spawn.obstacle.max_speed", o.MaxSpeed)
	v.SetDefault("spawn.obstacle.wall_min_width", o.WallMinWidth)
	v.SetDefault("spawn.obstacle.wall_width_fraction", o.WallWidthFraction)
	v.SetDefault("spawn.obstacle.wall_height", o.WallHeight)
	v.SetDefault("spawn.obstacle.wall_hp", o.WallHP)
	v.SetDefault("spawn.obstacle.wall_speed", o.WallSpeed)
	v.SetDefault("spawn.obstacle.wall_max_speed_x", o.WallMaxSpeedX)
	v.SetDefault("spawn.obstacle.wall_max_speed_y", o.WallMaxSpeedY)

	c := d.Spawn.Coin
	v.SetDefault("spawn.coin.initial", c.Initial)
	v.SetDefault("spawn.coin.interval", c.Interval)
	v.SetDefault("spawn.coin.roll_range", c.RollRange)
	v.SetDefault("spawn.coin.threshold", c.Threshold)
	v.SetDefault("spawn.coin.radius", c.Radius)
	v.SetDefault("spawn.coin.max_speed", c.MaxSpeed)
	v.SetDefault("spawn.coin.speed_min", c.SpeedMin)
	v.SetDefault("spawn.coin.speed_max", c.SpeedMax)

	v.SetDefault("render.cell_width", d.Render.CellWidth)
	v.SetDefault("render.cell_height", d.Render.CellHeight)

	v.SetDefault("input.hold_window", d.Input.HoldWindow)
}

// Validate reports the first field that would break the simulation
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Tick.Interval > 0, "tick.interval"},
		{c.Tick.FrameInterval > 0, "tick.frame_interval"},
		{c.Player.Radius > 0, "player.radius"},
		{c.Player.StartHP > 0, "player.start_hp"},
		{c.Player.MaxSpeed >= 0, "player.max_speed"},
		{c.Player.StartX >= 0 && c.Player.StartX <= 1, "player.start_x"},
		{c.Player.StartY >= 0 && c.Player.StartY <= 1, "player.start_y"},
		{c.Scoring.PassiveInterval > 0, "scoring.passive_interval"},
		{c.Spawn.SteerChance >= 0 && c.Spawn.SteerChance <= 100, "spawn.steer_chance"},
		{c.Spawn.Enemy.Interval > 0, "spawn.enemy.interval"},
		{c.Spawn.Enemy.RollRange > 0, "spawn.enemy.roll_range"},
		{c.Spawn.Enemy.SpeedMin <= c.Spawn.Enemy.SpeedMax, "spawn.enemy.speed_min"},
		{c.Spawn.Enemy.MaxSpeed >= 0, "spawn.enemy.max_speed"},
		{c.Spawn.Obstacle.Interval > 0, "spawn.obstacle.interval"},
		{c.Spawn.Obstacle.RollRange > 0, "spawn.obstacle.roll_range"},
		{c.Spawn.Obstacle.MaxSpeed >= 0, "spawn.obstacle.max_speed"},
		{c.Spawn.Obstacle.WallWidthFraction > 0 && c.Spawn.Obstacle.WallWidthFraction <= 1, "spawn.obstacle.wall_width_fraction"},
		{c.Spawn.Obstacle.WallMaxSpeedX >= 0, "spawn.obstacle.wall_max_speed_x"},
		{c.Spawn.Obstacle.WallMaxSpeedY >= 0, "spawn.obstacle.wall_max_speed_y"},
		{c.Spawn.Coin.Interval > 0, "spawn.coin.interval"},
		{c.Spawn.Coin.RollRange > 0, "spawn.coin.roll_range"},
		{c.Spawn.Coin.SpeedMin <= c.Spawn.Coin.SpeedMax, "spawn.coin.speed_min"},
		{c.Spawn.Coin.MaxSpeed >= 0, "spawn.coin.max_speed"},
		{c.Render.CellWidth > 0, "render.cell_width"},
		{c.Render.CellHeight > 0, "render.cell_height"},
		{c.Input.HoldWindow > 0, "input.hold_window"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.field)
		}
	}
	return nil
}
