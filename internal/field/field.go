// Package field implements the platform field: a pool of platforms that is
// spawned ahead of the player along the longitudinal axis, recycled once left
// behind, and whose unstable members oscillate and break.
package field

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/realm-runner/internal/config"
	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/sched"
)

// ErrNoTemplates is returned when no platform template is configured.
var ErrNoTemplates = errors.New("field: at least one platform template is required")

// Hooks are optional callbacks for side effects outside the field.
// Nil hooks are skipped.
type Hooks struct {
	OnSpawn      func(p *Platform)
	OnRecycle    func(p *Platform)
	OnBreakStart func(p *Platform) // Break particles and similar effects
	OnBroken     func(p *Platform)
}

// Field owns the platform pool and the spawn cursor.
type Field struct {
	fieldCfg    config.FieldConfig
	platformCfg config.PlatformConfig
	templates   []config.TemplateConfig
	height      float64
	direction   mgl64.Vec3

	rng    core.Rand
	clock  *sched.Scheduler
	logger *log.Logger
	hooks  Hooks

	pool   []*Platform
	cursor float64 // Z of the last spawned platform
	index  *index
}

// New creates an empty field. The scheduler supplies the clock used for
// oscillation and break delays.
func New(cfg config.RunnerConfig, rng core.Rand, clock *sched.Scheduler, logger *log.Logger) (*Field, error) {
	if len(cfg.Templates) == 0 {
		return nil, ErrNoTemplates
	}
	if cfg.Field.MinSpacing <= 0 || cfg.Field.MaxSpacing < cfg.Field.MinSpacing {
		return nil, errors.New("field: spacing range must satisfy 0 < min <= max")
	}
	if rng == nil {
		rng = core.NewRand(1)
	}
	if clock == nil {
		clock = sched.New()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := cfg.Platform.MoveDirection
	return &Field{
		fieldCfg:    cfg.Field,
		platformCfg: cfg.Platform,
		templates:   cfg.Templates,
		height:      cfg.World.PlatformHeight,
		direction:   mgl64.Vec3{d[0], d[1], d[2]},
		rng:         rng,
		clock:       clock,
		logger:      logger,
		index:       newIndex(cfg.Ground.Layer),
	}, nil
}

// SetHooks installs side-effect callbacks.
func (f *Field) SetHooks(h Hooks) {
	f.hooks = h
}

// Init fills the pool with the configured number of inactive platforms and
// spawns that many, starting from startZ.
func (f *Field) Init(startZ float64) {
	f.cursor = startZ
	for i := 0; i < f.fieldCfg.InitialPoolSize; i++ {
		f.instantiate()
	}
	for i := 0; i < f.fieldCfg.InitialPoolSize; i++ {
		f.Spawn()
	}
	f.index.step(settleDt)
	f.logger.Debug("field initialized", "pool", len(f.pool), "cursor", f.cursor)
}

// Update runs one variable tick: recycle what the player left behind, spawn
// until the look-ahead is covered, then move unstable platforms.
func (f *Field) Update(playerZ, dt float64) {
	f.Recycle(playerZ)
	for playerZ+f.fieldCfg.SpawnDistance > f.cursor {
		f.Spawn()
	}

	now := f.clock.Now()
	for _, p := range f.pool {
		if p.active {
			p.oscillate(now, f.platformCfg.MoveSpeed, f.direction)
		}
	}
	f.index.step(dt)
}

// Acquire returns an inactive platform, growing the pool when none is free.
func (f *Field) Acquire() *Platform {
	for _, p := range f.pool {
		if !p.active {
			return p
		}
	}
	p := f.instantiate()
	f.logger.Debug("pool grown", "size", len(f.pool))
	return p
}

func (f *Field) instantiate() *Platform {
	tpl := f.templates[int(f.rng.Float64()*float64(len(f.templates)))%len(f.templates)]
	p := &Platform{
		slot:     len(f.pool),
		template: tpl,
		owner:    f,
	}
	f.pool = append(f.pool, p)
	return p
}

// Spawn places the next platform past the cursor and returns it.
func (f *Field) Spawn() *Platform {
	p := f.Acquire()

	spacing := core.RandRange(f.rng, f.fieldCfg.MinSpacing, f.fieldCfg.MaxSpacing)
	f.cursor += spacing
	lateral := core.RandRange(f.rng, -f.fieldCfg.LateralRange, f.fieldCfg.LateralRange)
	unstable := core.Chance(f.rng, f.fieldCfg.UnstableChance)

	p.place(mgl64.Vec3{lateral, f.height, f.cursor}, unstable)
	f.index.add(p)

	if f.hooks.OnSpawn != nil {
		f.hooks.OnSpawn(p)
	}
	return p
}

// Recycle deactivates every active platform more than the recycle distance
// behind playerZ and returns how many were recycled.
func (f *Field) Recycle(playerZ float64) int {
	limit := playerZ - f.fieldCfg.RecycleDistance
	n := 0
	for _, p := range f.pool {
		if p.active && p.position.Z() < limit {
			f.deactivate(p)
			if f.hooks.OnRecycle != nil {
				f.hooks.OnRecycle(p)
			}
			n++
		}
	}
	return n
}

func (f *Field) deactivate(p *Platform) {
	f.index.remove(p)
	p.deactivate()
}

// scheduleBreak arms the delayed deactivation of a platform that just
// entered the breaking state. A platform recycled and reused before the
// delay elapses is left alone.
func (f *Field) scheduleBreak(p *Platform) {
	gen := p.gen
	if f.hooks.OnBreakStart != nil {
		f.hooks.OnBreakStart(p)
	}
	f.clock.After(f.platformCfg.BreakDelay, func() {
		if p.gen != gen || !p.breaking {
			return
		}
		f.deactivate(p)
		f.logger.Debug("platform broke", "slot", p.slot)
		if f.hooks.OnBroken != nil {
			f.hooks.OnBroken(p)
		}
	})
}

// Cursor returns the Z of the most recent spawn.
func (f *Field) Cursor() float64 {
	return f.cursor
}

// Pool returns every platform ever created, in slot order.
func (f *Field) Pool() []*Platform {
	return f.pool
}

// ActiveCount returns the number of active platforms.
func (f *Field) ActiveCount() int {
	n := 0
	for _, p := range f.pool {
		if p.active {
			n++
		}
	}
	return n
}

// Active returns the active platforms in slot order.
func (f *Field) Active() []*Platform {
	out := make([]*Platform, 0, len(f.pool))
	for _, p := range f.pool {
		if p.active {
			out = append(out, p)
		}
	}
	return out
}

// OverlapCircle implements the ground probe used by the movement controller.
func (f *Field) OverlapCircle(center mgl64.Vec2, z, radius float64, layer uint) bool {
	return f.index.overlapCircle(center, z, radius, layer)
}

// SupportAt returns the platform whose footprint is within halfWide of the
// lateral/longitudinal point, or nil.
func (f *Field) SupportAt(x, z, halfWide float64) *Platform {
	p, _ := f.index.nearest(x, z, halfWide, f.index.layer)
	return p
}

// NearestAhead returns the active platform with the smallest Z that is not
// behind z, or nil.
func (f *Field) NearestAhead(z float64) *Platform {
	var best *Platform
	bestZ := math.Inf(1)
	for _, p := range f.pool {
		pz := p.position.Z()
		if p.active && !p.breaking && pz >= z && pz < bestZ {
			best, bestZ = p, pz
		}
	}
	return best
}
