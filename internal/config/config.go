// Package config provides YAML-based game configuration loading,
// validation and difficulty management for the runner.
package config

// RunnerConfig contains all configuration for the runner simulation.
type RunnerConfig struct {
	Movement   MovementConfig   `yaml:"movement"`
	Jump       JumpConfig       `yaml:"jump"`
	Ground     GroundConfig     `yaml:"ground"`
	World      WorldConfig      `yaml:"world"`
	Field      FieldConfig      `yaml:"field"`
	Platform   PlatformConfig   `yaml:"platform"`
	Templates  []TemplateConfig `yaml:"templates"`
	Score      ScoreConfig      `yaml:"score"`
	Realm      RealmConfig      `yaml:"realm"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MovementConfig defines the horizontal acceleration model.
type MovementConfig struct {
	MoveSpeed      float64 `yaml:"move_speed"`      // Top horizontal speed
	Acceleration   float64 `yaml:"acceleration"`    // Rate while input is held
	Deceleration   float64 `yaml:"deceleration"`    // Rate once input returns to zero
	VelocityPower  float64 `yaml:"velocity_power"`  // Exponent in (0, 1]
	SlipperyFactor float64 `yaml:"slippery_factor"` // < 1 reduces responsiveness
	Mass           float64 `yaml:"mass"`
}

// JumpConfig defines jump force, timing windows and gravity shaping.
type JumpConfig struct {
	Force             float64 `yaml:"force"`
	Randomness        float64 `yaml:"randomness"` // Symmetric jitter added to Force
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`
	CoyoteTime        float64 `yaml:"coyote_time"`      // Seconds
	JumpBufferTime    float64 `yaml:"jump_buffer_time"` // Seconds
}

// GroundConfig defines the ground probe.
type GroundConfig struct {
	CheckRadius float64 `yaml:"check_radius"`
	FootOffset  float64 `yaml:"foot_offset"` // Foot anchor below body center
	Layer       uint    `yaml:"layer"`       // Collision category bit of ground
}

// WorldConfig defines environment parameters applied around the player.
type WorldConfig struct {
	Gravity        float64 `yaml:"gravity"`          // Baseline vertical acceleration (negative = down)
	RunSpeed       float64 `yaml:"run_speed"`        // Base longitudinal speed
	KillHeight     float64 `yaml:"kill_height"`      // Falling below this is a fall
	PlatformHeight float64 `yaml:"platform_height"`  // Y of every platform top surface
	PlayerHalfWide float64 `yaml:"player_half_wide"` // Lateral half-extent used for support
}

// FieldConfig defines the platform generator and recycler.
type FieldConfig struct {
	SpawnDistance   float64 `yaml:"spawn_distance"`   // Look-ahead in front of the player
	RecycleDistance float64 `yaml:"recycle_distance"` // Trail behind the player
	InitialPoolSize int     `yaml:"initial_pool_size"`
	MinSpacing      float64 `yaml:"min_spacing"`
	MaxSpacing      float64 `yaml:"max_spacing"`
	UnstableChance  float64 `yaml:"unstable_chance"`
	LateralRange    float64 `yaml:"lateral_range"` // Platforms spawn in [-range, range)
}

// PlatformConfig defines per-platform behavior.
type PlatformConfig struct {
	BreakDelay    float64    `yaml:"break_delay"`    // Seconds before a breaking platform disappears
	MoveSpeed     float64    `yaml:"move_speed"`     // Ping-pong frequency multiplier
	MoveDirection [3]float64 `yaml:"move_direction"` // Oscillation offset at the far end
}

// TemplateConfig describes one platform prefab.
type TemplateConfig struct {
	Name  string  `yaml:"name"`
	Width float64 `yaml:"width"` // Lateral extent
	Depth float64 `yaml:"depth"` // Longitudinal extent
}

// ScoreConfig defines score accrual and penalties.
type ScoreConfig struct {
	PerSecond    float64 `yaml:"per_second"`
	Penalty      float64 `yaml:"penalty"`
	SaveInterval float64 `yaml:"save_interval"` // Seconds between high-score writes during a run; 0 disables
}

// RealmConfig defines the realm toggle effect.
type RealmConfig struct {
	TransitionDelay float64 `yaml:"transition_delay"`
	ShakeDuration   float64 `yaml:"shake_duration"`
	ShakeMagnitude  float64 `yaml:"shake_magnitude"`
}

// DifficultyConfig defines the run-speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Distance units or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to run speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
