package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/realm-runner/internal/config"
	"github.com/vovakirdan/realm-runner/internal/core"
)

// targetEpsilon separates the acceleration case from the deceleration case.
const targetEpsilon = 0.01

// GroundProbe answers overlap tests against the ground collision layer.
type GroundProbe interface {
	// OverlapCircle reports whether a circle of the given radius centered at
	// center (lateral, vertical) at longitudinal position z touches any
	// shape on the given layer.
	OverlapCircle(center mgl64.Vec2, z, radius float64, layer uint) bool
}

// Settings collects the configuration sections the controller consumes.
type Settings struct {
	Movement config.MovementConfig
	Jump     config.JumpConfig
	Ground   config.GroundConfig
	Gravity  float64 // Baseline gravity applied by the environment
}

// SettingsFrom extracts controller settings from a runner config.
func SettingsFrom(cfg config.RunnerConfig) Settings {
	return Settings{
		Movement: cfg.Movement,
		Jump:     cfg.Jump,
		Ground:   cfg.Ground,
		Gravity:  cfg.World.Gravity,
	}
}

// Result reports what the controller did during one Update.
type Result struct {
	Jumped    bool
	JumpSpeed float64 // Vertical velocity set by the jump
	ShortHop  bool
}

// Controller drives one Body from per-tick input.
type Controller struct {
	set   Settings
	rng   core.Rand
	probe GroundProbe
	foot  *mgl64.Vec2
	body  Body
}

// NewController creates a controller. probe may be nil, in which case the
// body is never grounded.
func NewController(set Settings, rng core.Rand, probe GroundProbe) *Controller {
	c := &Controller{
		set:   set,
		rng:   rng,
		probe: probe,
	}
	c.SetFootAnchor(&mgl64.Vec2{0, -set.Ground.FootOffset})
	return c
}

// Body returns the controlled body.
func (c *Controller) Body() *Body {
	return &c.body
}

// Settings returns the controller settings.
func (c *Controller) Settings() Settings {
	return c.set
}

// SetFootAnchor sets the ground probe point relative to the body center.
// A nil anchor disables grounding.
func (c *Controller) SetFootAnchor(offset *mgl64.Vec2) {
	if offset == nil {
		c.foot = nil
		return
	}
	o := *offset
	c.foot = &o
}

// SetProbe replaces the ground probe.
func (c *Controller) SetProbe(p GroundProbe) {
	c.probe = p
}

// Place resets the body to rest at the given position with cleared timers.
func (c *Controller) Place(pos mgl64.Vec3) {
	c.body = Body{Position: pos}
}

// FixedUpdate samples the ground once per physics tick.
func (c *Controller) FixedUpdate() {
	c.body.Grounded = c.sampleGround()
}

func (c *Controller) sampleGround() bool {
	if c.foot == nil || c.probe == nil {
		return false
	}
	center := c.body.Foot(*c.foot)
	return c.probe.OverlapCircle(center, c.body.Position.Z(), c.set.Ground.CheckRadius, c.set.Ground.Layer)
}

// Update applies one tick of input: horizontal control, jump timing and
// gravity shaping. Forces are integrated separately by Integrate.
func (c *Controller) Update(in core.InputFrame, dt float64) Result {
	c.applyMovement(in.Axis)
	res := c.applyJump(in.Jump, dt)
	c.applyGravity(in.Jump.Held, dt)
	return res
}

// Integrate runs the environment step for the body.
func (c *Controller) Integrate(dt float64) {
	c.body.Integrate(c.set.Gravity, c.set.Movement.Mass, dt)
}

// HorizontalForce returns the corrective force for the given input axis and
// current horizontal velocity.
func (c *Controller) HorizontalForce(axis, vx float64) float64 {
	m := c.set.Movement
	target := axis * m.MoveSpeed * m.SlipperyFactor
	diff := target - vx

	rate := m.Deceleration
	if math.Abs(target) > targetEpsilon {
		rate = m.Acceleration
	}
	return math.Pow(math.Abs(diff)*rate, m.VelocityPower) * core.Sign(diff)
}

func (c *Controller) applyMovement(axis float64) {
	c.body.AddForce(c.HorizontalForce(axis, c.body.Velocity.X()))
}

func (c *Controller) applyJump(jump core.ButtonState, dt float64) Result {
	var res Result
	b := &c.body
	j := c.set.Jump

	if b.Grounded {
		b.CoyoteTimer = j.CoyoteTime
		if b.Velocity.Y() <= 0 {
			b.Jumping = false
		}
	} else {
		b.CoyoteTimer -= dt
	}

	if jump.Pressed {
		b.JumpBufferTimer = j.JumpBufferTime
	} else {
		b.JumpBufferTimer -= dt
	}

	if b.JumpBufferTimer > 0 && b.CoyoteTimer > 0 {
		speed := j.Force
		if c.rng != nil {
			speed += core.RandRange(c.rng, -j.Randomness, j.Randomness)
		}
		b.Velocity[1] = speed
		b.JumpBufferTimer = 0
		b.CoyoteTimer = 0
		b.Jumping = true
		res.Jumped = true
		res.JumpSpeed = speed
	}

	if jump.Released && b.Jumping && b.Velocity.Y() > 0 {
		b.Velocity[1] *= 0.5
		b.Jumping = false
		res.ShortHop = true
	}
	return res
}

func (c *Controller) applyGravity(jumpHeld bool, dt float64) {
	b := &c.body
	g := c.set.Gravity
	switch {
	case b.Velocity.Y() < 0:
		b.Velocity[1] += g * (c.set.Jump.FallMultiplier - 1) * dt
	case b.Velocity.Y() > 0 && !jumpHeld:
		b.Velocity[1] += g * (c.set.Jump.LowJumpMultiplier - 1) * dt
	}
}
