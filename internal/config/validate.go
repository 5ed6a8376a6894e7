package config

import (
	"errors"
	"fmt"
)

// Validate reports every invalid parameter in the configuration.
// The returned error joins one error per violation.
func (c RunnerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	if len(c.Templates) == 0 {
		add("at least one platform template is required")
	}
	for i, t := range c.Templates {
		if t.Width <= 0 || t.Depth <= 0 {
			add("template %d (%q) must have positive width and depth", i, t.Name)
		}
	}

	m := c.Movement
	if m.MoveSpeed < 0 {
		add("movement.move_speed must be >= 0, got %v", m.MoveSpeed)
	}
	if m.Acceleration < 0 || m.Deceleration < 0 {
		add("movement acceleration/deceleration must be >= 0")
	}
	if m.VelocityPower <= 0 || m.VelocityPower > 1 {
		add("movement.velocity_power must be in (0, 1], got %v", m.VelocityPower)
	}
	if m.SlipperyFactor < 0 {
		add("movement.slippery_factor must be >= 0, got %v", m.SlipperyFactor)
	}
	if m.Mass <= 0 {
		add("movement.mass must be > 0, got %v", m.Mass)
	}

	j := c.Jump
	if j.Randomness < 0 {
		add("jump.randomness must be >= 0, got %v", j.Randomness)
	}
	if j.CoyoteTime < 0 || j.JumpBufferTime < 0 {
		add("jump timers must be >= 0")
	}
	if j.FallMultiplier < 1 || j.LowJumpMultiplier < 1 {
		add("jump gravity multipliers must be >= 1")
	}

	if c.Ground.CheckRadius <= 0 {
		add("ground.check_radius must be > 0, got %v", c.Ground.CheckRadius)
	}
	if c.Ground.Layer == 0 {
		add("ground.layer must be a non-zero category mask")
	}

	w := c.World
	if w.Gravity > 0 {
		add("world.gravity must point down (<= 0), got %v", w.Gravity)
	}
	if w.RunSpeed < 0 {
		add("world.run_speed must be >= 0, got %v", w.RunSpeed)
	}
	if w.KillHeight >= w.PlatformHeight {
		add("world.kill_height must be below world.platform_height")
	}

	f := c.Field
	if f.MinSpacing <= 0 {
		add("field.min_spacing must be > 0, got %v", f.MinSpacing)
	}
	if f.MaxSpacing < f.MinSpacing {
		add("field.max_spacing (%v) must be >= field.min_spacing (%v)", f.MaxSpacing, f.MinSpacing)
	}
	if f.UnstableChance < 0 || f.UnstableChance > 1 {
		add("field.unstable_chance must be in [0, 1], got %v", f.UnstableChance)
	}
	if f.InitialPoolSize < 0 {
		add("field.initial_pool_size must be >= 0, got %d", f.InitialPoolSize)
	}
	if f.SpawnDistance < 0 || f.RecycleDistance < 0 || f.LateralRange < 0 {
		add("field distances must be >= 0")
	}

	if c.Platform.BreakDelay < 0 {
		add("platform.break_delay must be >= 0, got %v", c.Platform.BreakDelay)
	}

	if c.Score.PerSecond < 0 || c.Score.Penalty < 0 {
		add("score rates must be >= 0")
	}
	if c.Score.SaveInterval < 0 {
		add("score.save_interval must be >= 0, got %v", c.Score.SaveInterval)
	}

	r := c.Realm
	if r.TransitionDelay < 0 || r.ShakeDuration < 0 || r.ShakeMagnitude < 0 {
		add("realm parameters must be >= 0")
	}

	switch c.Difficulty.Progression.Type {
	case "distance", "time", "none", "":
	default:
		add("difficulty.progression.type must be distance, time or none, got %q", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
