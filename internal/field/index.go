package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// allCategories matches every collision category.
const allCategories = ^uint(0)

// settleDt is the step used to refresh cached bounds outside a regular tick.
const settleDt = 1e-3

// index keeps the footprints of active platforms in a chipmunk space so
// ground probes and support lookups are spatial queries instead of scans.
// The space's plane is (lateral, longitudinal); heights are checked apart.
type index struct {
	space  *cp.Space
	layer  uint
	bodies map[int]*cp.Body
	shapes map[int]*cp.Shape
	live   map[int]bool
}

func newIndex(layer uint) *index {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &index{
		space:  space,
		layer:  layer,
		bodies: make(map[int]*cp.Body),
		shapes: make(map[int]*cp.Shape),
		live:   make(map[int]bool),
	}
}

func footprint(p *Platform) cp.Vector {
	return cp.Vector{X: p.position.X(), Y: p.position.Z()}
}

// add inserts an activated platform. Bodies and shapes are created once per
// pool slot and reused afterwards.
func (ix *index) add(p *Platform) {
	body, ok := ix.bodies[p.slot]
	if !ok {
		body = cp.NewKinematicBody()
		shape := cp.NewBox(body, p.template.Width, p.template.Depth, 0)
		shape.UserData = p
		shape.SetFilter(cp.ShapeFilter{Group: 0, Categories: ix.layer, Mask: allCategories})
		ix.bodies[p.slot] = body
		ix.shapes[p.slot] = shape
	}
	body.SetPosition(footprint(p))
	if ix.live[p.slot] {
		return
	}
	ix.space.AddBody(body)
	ix.space.AddShape(ix.shapes[p.slot])
	ix.live[p.slot] = true
}

// remove takes a deactivated platform out of the space.
func (ix *index) remove(p *Platform) {
	if !ix.live[p.slot] {
		return
	}
	ix.space.RemoveShape(ix.shapes[p.slot])
	ix.space.RemoveBody(ix.bodies[p.slot])
	ix.live[p.slot] = false
}

// size returns the number of platforms currently in the space.
func (ix *index) size() int {
	n := 0
	for _, ok := range ix.live {
		if ok {
			n++
		}
	}
	return n
}

func (ix *index) move(p *Platform) {
	if body, ok := ix.bodies[p.slot]; ok {
		body.SetPosition(footprint(p))
	}
}

// step refreshes cached bounds after platforms moved.
func (ix *index) step(dt float64) {
	if dt > 0 {
		ix.space.Step(dt)
	}
}

// nearest returns the closest active platform whose footprint lies within
// maxDistance of (x, z) on the given layer mask.
func (ix *index) nearest(x, z, maxDistance float64, mask uint) (*Platform, float64) {
	filter := cp.ShapeFilter{Group: 0, Categories: allCategories, Mask: mask}
	info := ix.space.PointQueryNearest(cp.Vector{X: x, Y: z}, maxDistance, filter)
	if info == nil || info.Shape == nil {
		return nil, math.Inf(1)
	}
	p, ok := info.Shape.UserData.(*Platform)
	if !ok {
		return nil, math.Inf(1)
	}
	return p, info.Distance
}

// overlapCircle reports whether a circle at center (lateral, vertical) and
// longitudinal z touches the top surface of any platform on layer.
func (ix *index) overlapCircle(center mgl64.Vec2, z, radius float64, layer uint) bool {
	if layer&ix.layer == 0 {
		return false
	}
	p, _ := ix.nearest(center.X(), z, radius, layer)
	if p == nil {
		return false
	}
	return math.Abs(center.Y()-p.position.Y()) <= radius
}
