// Package runner implements Realm Runner: an endless runner in which the
// player auto-runs across procedurally spawned platforms, some of which sway
// and crumble, while toggling between the light and shadow realms.
package runner

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/realm-runner/internal/config"
	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/field"
	"github.com/vovakirdan/realm-runner/internal/movement"
	"github.com/vovakirdan/realm-runner/internal/realm"
	"github.com/vovakirdan/realm-runner/internal/sched"
	"github.com/vovakirdan/realm-runner/internal/score"
)

// landingSlack is how far below a top surface the foot may have been on the
// previous tick and still count as crossing it from above.
const landingSlack = 0.05

// Summary describes a run for the score history.
type Summary struct {
	Score    int
	Distance float64
	Duration float64
	Falls    int
}

// Game is the top-level simulation context. It owns the scheduler clock and
// drives every subsystem in a fixed order each tick.
type Game struct {
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	clock      *sched.Scheduler
	rng        core.Rand
	field      *field.Field
	ctrl       *movement.Controller
	tracker    *score.Tracker
	realm      *realm.Manager
	camera     *realm.Camera
	difficulty *config.DifficultyManager

	standing  *field.Platform // Platform the player last landed on
	standingX float64         // Its lateral position when last seen

	distance  float64
	elapsed   float64
	falls     int
	tickCount int
	paused    bool
	events    []core.Event
}

// New creates a game. The configuration is validated here so that a bad
// document is reported before the first tick. prefs may be nil.
func New(cfg config.RunnerConfig, prefs score.Prefs, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		clock:   sched.New(),
		tracker: score.NewTracker(cfg.Score, prefs, logger),
	}
	if err := g.reset(core.DefaultConfig()); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Realm Runner"
}

// Reset starts a new run. The high score survives. If the new run cannot
// be built the current one is left untouched.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if err := g.reset(runtime); err != nil {
		g.logger.Error("reset failed, keeping current run", "error", err)
	}
}

func (g *Game) reset(runtime core.RuntimeConfig) error {
	rng := core.NewRand(runtime.Seed)
	f, err := field.New(g.cfg, rng, g.clock, g.logger)
	if err != nil {
		return err
	}

	g.runtime = runtime
	g.clock.Reset()
	g.rng = rng
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.field = f
	g.field.SetHooks(field.Hooks{
		OnSpawn: func(p *field.Platform) {
			g.logger.Debug("platform spawned", "slot", p.Slot(), "z", p.Position().Z(), "unstable", p.Unstable())
		},
		OnRecycle: func(p *field.Platform) {
			g.logger.Debug("platform recycled", "slot", p.Slot())
		},
		OnBreakStart: func(p *field.Platform) {
			g.emit(core.EventBreakStarted, p.Slot())
		},
		OnBroken: func(p *field.Platform) {
			g.tracker.Penalize()
			g.emit(core.EventPlatformBroke, p.Slot())
		},
	})
	g.field.Init(0)

	g.ctrl = movement.NewController(movement.SettingsFrom(g.cfg), g.rng, g.field)

	g.camera = &realm.Camera{}
	g.realm = realm.New(g.cfg.Realm, g.clock, g.rng, g.camera, g.logger)
	g.realm.OnTransition = func(light bool) {
		g.emit(core.EventRealmShifted, -1)
	}

	g.tracker.Reset()
	g.distance = 0
	g.elapsed = 0
	g.falls = 0
	g.tickCount = 0
	g.paused = false
	g.events = nil
	g.standing = nil

	g.respawn(0)
	return nil
}

// Step advances the simulation by one tick:
// scheduler, ground sample, field, controller, integration, landing and
// falls, then score.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickDelta()
	g.tickCount++

	if in.Has(core.ActionRealm) {
		g.realm.Toggle()
		g.emit(core.EventRealmToggled, -1)
	}

	g.clock.Advance(dt)
	g.ctrl.FixedUpdate()

	body := g.ctrl.Body()
	speed := g.difficulty.Speed(g.cfg.World.RunSpeed, g.distance, g.elapsed)
	body.Position[2] += speed * dt
	g.distance += speed * dt

	g.field.Update(body.Position.Z(), dt)
	g.carry()

	res := g.ctrl.Update(in, dt)
	if res.Jumped {
		g.standing = nil
		g.emit(core.EventJumped, -1)
		g.logger.Debug("jump", "speed", res.JumpSpeed, "z", body.Position.Z())
	}

	prevFootY := body.Position.Y() - g.cfg.Ground.FootOffset
	g.ctrl.Integrate(dt)
	g.resolveLanding(prevFootY)

	if body.Position.Y() < g.cfg.World.KillHeight {
		g.fall()
	}

	g.tracker.Tick(dt)
	g.elapsed += dt

	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// carry moves the player along with the lateral sway of the platform they
// stand on.
func (g *Game) carry() {
	p := g.standing
	if p == nil {
		return
	}
	if !p.Active() {
		g.standing = nil
		return
	}
	x := p.Position().X()
	g.ctrl.Body().Position[0] += x - g.standingX
	g.standingX = x
}

// resolveLanding snaps a descending player onto a top surface crossed during
// this tick.
func (g *Game) resolveLanding(prevFootY float64) {
	body := g.ctrl.Body()
	if body.Velocity.Y() > 0 {
		return
	}
	top := g.cfg.World.PlatformHeight
	footY := body.Position.Y() - g.cfg.Ground.FootOffset
	if footY > top || prevFootY < top-landingSlack {
		return
	}
	p := g.field.SupportAt(body.Position.X(), body.Position.Z(), g.cfg.World.PlayerHalfWide)
	if p == nil {
		if g.standing != nil {
			g.logger.Debug("left platform", "slot", g.standing.Slot())
		}
		g.standing = nil
		return
	}

	body.Position[1] = p.Position().Y() + g.cfg.Ground.FootOffset
	body.Velocity[1] = 0

	if p == g.standing {
		return
	}
	g.standing = p
	g.standingX = p.Position().X()
	g.emit(core.EventLanded, p.Slot())
	if p.Unstable() {
		p.Break()
	}
}

// fall applies the failure penalty and puts the player back on the field.
// A fall through a broken platform is penalized for both failures.
func (g *Game) fall() {
	g.falls++
	g.tracker.Penalize()
	g.emit(core.EventFell, -1)
	g.logger.Debug("fell", "falls", g.falls, "z", g.ctrl.Body().Position.Z())
	if err := g.tracker.Save(); err != nil {
		g.logger.Warn("could not save high score", "error", err)
	}
	g.respawn(g.ctrl.Body().Position.Z())
}

// respawn places the player at rest on the nearest platform at or ahead of z.
func (g *Game) respawn(z float64) {
	p := g.field.NearestAhead(z)
	if p == nil {
		p = g.field.Spawn()
	}
	pos := p.Position()
	g.ctrl.Place(mgl64.Vec3{pos.X(), pos.Y() + g.cfg.Ground.FootOffset, pos.Z()})
	g.standing = p
	g.standingX = pos.X()
}

func (g *Game) emit(kind core.EventKind, slot int) {
	g.events = append(g.events, core.Event{Kind: kind, Slot: slot})
}

// Finish persists the high score. Call it when the run ends.
func (g *Game) Finish() error {
	return g.tracker.Save()
}

// Summary returns the current run for the score history.
func (g *Game) Summary() Summary {
	return Summary{
		Score:    g.tracker.Display(),
		Distance: g.distance,
		Duration: g.elapsed,
		Falls:    g.falls,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.tracker.Display(),
		HighScore: g.tracker.DisplayHigh(),
		Paused:    g.paused,
	}
}

// Field returns the platform field.
func (g *Game) Field() *field.Field { return g.field }

// Controller returns the player's movement controller.
func (g *Game) Controller() *movement.Controller { return g.ctrl }

// Realm returns the realm manager.
func (g *Game) Realm() *realm.Manager { return g.realm }

// Distance returns how far the player has run.
func (g *Game) Distance() float64 { return g.distance }

// Speed returns the current auto-run speed.
func (g *Game) Speed() float64 {
	return g.difficulty.Speed(g.cfg.World.RunSpeed, g.distance, g.elapsed)
}
