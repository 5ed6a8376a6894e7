// Package realm implements the light/shadow realm toggle with its delayed
// transition and camera shake.
package realm

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/realm-runner/internal/config"
	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/sched"
)

// Camera is the view whose local offset the shake displaces.
type Camera struct {
	LocalOffset mgl64.Vec3
}

// Manager owns the realm flag and its effects.
type Manager struct {
	cfg    config.RealmConfig
	clock  *sched.Scheduler
	rng    core.Rand
	camera *Camera
	logger *log.Logger

	light bool

	// OnTransition runs when a delayed transition completes. It is the
	// place to update realm-dependent world objects; nil is a no-op.
	OnTransition func(light bool)

	shaking    bool
	shakeHome  mgl64.Vec3
	shakeStart float64
	shakeUntil float64
	magnitude  float64
}

// New creates a manager in the light realm. A nil camera gets a private one.
func New(cfg config.RealmConfig, clock *sched.Scheduler, rng core.Rand, camera *Camera, logger *log.Logger) *Manager {
	if camera == nil {
		camera = &Camera{}
	}
	if clock == nil {
		clock = sched.New()
	}
	if rng == nil {
		rng = core.NewRand(1)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		cfg:    cfg,
		clock:  clock,
		rng:    rng,
		camera: camera,
		logger: logger,
		light:  true,
	}
}

// IsLight reports whether the light realm is active.
func (m *Manager) IsLight() bool { return m.light }

// Camera returns the shaken camera.
func (m *Manager) Camera() *Camera { return m.camera }

// Shaking reports whether a camera shake is in progress.
func (m *Manager) Shaking() bool { return m.shaking }

// Toggle flips the realm, schedules the transition and shakes the camera.
func (m *Manager) Toggle() {
	m.light = !m.light
	m.logger.Debug("realm toggled", "light", m.light)

	target := m.light
	m.clock.After(m.cfg.TransitionDelay, func() {
		m.logger.Debug("realm transition complete", "light", target)
		if m.OnTransition != nil {
			m.OnTransition(target)
		}
	})
	m.Shake(m.cfg.ShakeDuration, m.cfg.ShakeMagnitude)
}

// Shake jitters the camera every tick for duration seconds by up to
// magnitude on X and Y, then restores its original offset exactly. A shake
// started during another extends it and keeps the first original offset.
func (m *Manager) Shake(duration, magnitude float64) {
	now := m.clock.Now()
	m.magnitude = magnitude
	if m.shaking {
		m.shakeUntil = max(m.shakeUntil, now+duration)
		return
	}
	m.shaking = true
	m.shakeHome = m.camera.LocalOffset
	m.shakeStart = now
	m.shakeUntil = now + duration
	m.shakeStep()
}

func (m *Manager) shakeStep() {
	if m.clock.Now() >= m.shakeUntil {
		m.camera.LocalOffset = m.shakeHome
		m.shaking = false
		return
	}
	x := core.RandRange(m.rng, -1, 1) * m.magnitude
	y := core.RandRange(m.rng, -1, 1) * m.magnitude
	m.camera.LocalOffset = mgl64.Vec3{m.shakeHome.X() + x, m.shakeHome.Y() + y, m.shakeHome.Z()}
	m.clock.NextTick(m.shakeStep)
}

// Reset returns to the light realm. A shake in flight finishes naturally.
func (m *Manager) Reset() {
	m.light = true
}
