// Package movement implements the player movement controller: an
// acceleration-based horizontal model, forgiving jump timing (coyote time and
// jump buffering), gravity shaping and ground sampling.
package movement

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the controllable player entity.
// Position X is lateral, Y is vertical and Z is the longitudinal travel axis.
// The controller only steers X and Y; Z is advanced by the host world.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec2 // X lateral, Y vertical

	Grounded        bool
	CoyoteTimer     float64 // Seconds left in which a jump is still permitted after leaving ground
	JumpBufferTimer float64 // Seconds left in which a buffered jump press is honored
	Jumping         bool

	force float64 // Horizontal force accumulated since the last integration
}

// AddForce accumulates a horizontal force applied at the next Integrate.
func (b *Body) AddForce(f float64) {
	b.force += f
}

// PendingForce returns the horizontal force waiting to be integrated.
func (b *Body) PendingForce() float64 {
	return b.force
}

// Integrate applies the pending force and baseline gravity, then advances
// the position by the resulting velocity. This is the environment's rigid
// body step; the controller's gravity shaping is added on top of it.
func (b *Body) Integrate(gravity, mass, dt float64) {
	if mass <= 0 {
		mass = 1
	}
	b.Velocity[0] += b.force / mass * dt
	b.force = 0
	b.Velocity[1] += gravity * dt

	b.Position[0] += b.Velocity[0] * dt
	b.Position[1] += b.Velocity[1] * dt
}

// Foot returns the world position of a point offset from the body center,
// projected into the lateral/vertical plane.
func (b *Body) Foot(offset mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{b.Position.X() + offset.X(), b.Position.Y() + offset.Y()}
}
