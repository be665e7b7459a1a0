package pagebreak

import "fmt"

// DefaultTimestepMs is the simulated time each frame advances by when Start
// is given a non-positive timestep.
const DefaultTimestepMs = 16.0

// State is the lifecycle state of a Sim.
type State uint8

const (
	StateNotStarted State = iota // Start has not run yet
	StateRunning                 // the frame loop is live
	StateStopped                 // Stop was called; the loop has ended
)

// Scheduler delivers host frame callbacks. Schedule arranges for fn to run
// once on the next frame; it must not invoke fn synchronously. The interval
// between frames is the host's business and carries no timing guarantee
// beyond "approximately periodic".
type Scheduler interface {
	Schedule(fn func())
}

// TickScheduler is a Scheduler drained by an explicit Tick call, adapting any
// host loop (an ebiten Update, a test) into frame callbacks. Callbacks
// scheduled during a Tick run on the following Tick, never the current one.
type TickScheduler struct {
	queue []func()
}

// NewTickScheduler creates an empty scheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// Schedule queues fn for the next Tick.
func (t *TickScheduler) Schedule(fn func()) {
	t.queue = append(t.queue, fn)
}

// Tick runs every callback queued before this call.
func (t *TickScheduler) Tick() {
	pending := t.queue
	t.queue = nil
	for _, fn := range pending {
		fn()
	}
}

// Sim is the lifecycle controller: it owns the single world, composes
// discovery, the pointer constraint, and the frame loop, and guards against
// duplicate starts.
//
// A Sim is single-threaded by construction: Start, Stop, and every scheduled
// step run on the host's frame thread, so the world needs no locking.
type Sim struct {
	tree  VisualTree
	sched Scheduler

	state      State
	world      *World
	mouse      *Mouse
	timestepMs float64
}

// NewSim creates a simulation over the given visual tree, paced by the given
// scheduler. Nothing happens until Start.
func NewSim(tree VisualTree, sched Scheduler) *Sim {
	return &Sim{tree: tree, sched: sched}
}

// Start brings the simulation up: create the world, attach the pointer
// constraint, discover tagged elements into bodies, and schedule the first
// frame. timestepMs is the simulated time per frame; non-positive means
// DefaultTimestepMs.
//
// Start is idempotent: called on a running (or stopped) Sim it does nothing
// and returns nil. A discovery failure aborts setup entirely and leaves the
// Sim in StateNotStarted.
func (s *Sim) Start(timestepMs float64) error {
	if s.state != StateNotStarted {
		return nil
	}
	if timestepMs <= 0 {
		timestepMs = DefaultTimestepMs
	}

	world := NewWorld()
	mouse := AttachMouse(world)

	specs, err := Discover(s.tree)
	if err != nil {
		return fmt.Errorf("start simulation: %w", err)
	}
	world.AddBodies(specs)

	s.world = world
	s.mouse = mouse
	s.timestepMs = timestepMs
	s.state = StateRunning
	s.sched.Schedule(s.step)
	return nil
}

// step is the frame callback: advance, render, reschedule. It re-queues
// itself indefinitely until Stop.
func (s *Sim) step() {
	if s.state != StateRunning {
		return
	}
	s.world.Step(s.timestepMs)
	s.sched.Schedule(s.step)
}

// Stop ends the frame loop. The world and its bodies remain readable but no
// further steps run; Start does not revive a stopped Sim.
func (s *Sim) Stop() {
	if s.state == StateRunning {
		s.state = StateStopped
	}
}

// State returns the Sim's lifecycle state.
func (s *Sim) State() State { return s.state }

// World returns the world, or nil before Start.
func (s *Sim) World() *World { return s.world }

// Mouse returns the pointer constraint, or nil before Start.
func (s *Sim) Mouse() *Mouse { return s.mouse }
