package field

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/realm-runner/internal/config"
)

// State is the lifecycle state of a platform.
type State int

const (
	StatePooled   State = iota // Inactive, waiting in the pool
	StateActive                // Placed in the world
	StateBreaking              // Active, deactivation pending
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePooled:
		return "pooled"
	case StateActive:
		return "active"
	case StateBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// Material is the visual material of a platform.
type Material int

const (
	MaterialStable Material = iota
	MaterialUnstable
)

// Platform is one pooled platform instance.
type Platform struct {
	slot     int
	template config.TemplateConfig

	active   bool
	unstable bool
	material Material
	breaking bool
	gen      uint64 // Bumped on every activation

	anchor   mgl64.Vec3
	position mgl64.Vec3

	// owner is notified about position and visibility changes.
	owner *Field
}

// Slot returns the pool slot of the platform.
func (p *Platform) Slot() int { return p.slot }

// Template returns the prefab the platform was created from.
func (p *Platform) Template() config.TemplateConfig { return p.template }

// Active reports whether the platform is placed and visible.
func (p *Platform) Active() bool { return p.active }

// Unstable reports whether the platform oscillates and can break.
func (p *Platform) Unstable() bool { return p.unstable }

// Material returns the visual material, which always matches Unstable.
func (p *Platform) Material() Material { return p.material }

// Breaking reports whether a break is pending.
func (p *Platform) Breaking() bool { return p.breaking }

// Anchor returns the start position oscillation is computed from.
func (p *Platform) Anchor() mgl64.Vec3 { return p.anchor }

// Position returns the current position (lateral, height, longitudinal).
func (p *Platform) Position() mgl64.Vec3 { return p.position }

// State returns the lifecycle state.
func (p *Platform) State() State {
	switch {
	case !p.active:
		return StatePooled
	case p.breaking:
		return StateBreaking
	default:
		return StateActive
	}
}

// SetUnstable switches stability and material together. A platform made
// stable snaps back to its anchor.
func (p *Platform) SetUnstable(unstable bool) {
	p.unstable = unstable
	if unstable {
		p.material = MaterialUnstable
	} else {
		p.material = MaterialStable
		p.moveTo(p.anchor)
	}
}

// Break starts the delayed deactivation of an unstable platform. It returns
// false without side effects when the platform is stable, inactive or
// already breaking.
func (p *Platform) Break() bool {
	if !p.active || !p.unstable || p.breaking {
		return false
	}
	p.breaking = true
	if p.owner != nil {
		p.owner.scheduleBreak(p)
	}
	return true
}

// oscillate recomputes the position of an unstable platform from its anchor.
func (p *Platform) oscillate(now, speed float64, dir mgl64.Vec3) {
	if !p.unstable {
		return
	}
	p.moveTo(p.anchor.Add(dir.Mul(PingPong(now*speed, 1))))
}

func (p *Platform) moveTo(pos mgl64.Vec3) {
	p.position = pos
	if p.owner != nil && p.active {
		p.owner.index.move(p)
	}
}

// place activates the platform at pos with fresh state.
func (p *Platform) place(pos mgl64.Vec3, unstable bool) {
	p.gen++
	p.breaking = false
	p.anchor = pos
	p.position = pos
	p.SetUnstable(unstable)
	p.active = true
}

// deactivate hides the platform and returns it to the pool.
func (p *Platform) deactivate() {
	p.active = false
	p.breaking = false
}
