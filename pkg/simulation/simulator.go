package simulation

import (
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjankiewicz/nbody/pkg/physics"
)

// --- Commands ---

// Command is a fire-once request from the control surface, queued and
// consumed at the start of the next tick.
type Command uint8

const (
	CommandReset Command = iota + 1
	CommandClearTraces
)

const commandQueueSize = 16

// --- Stats ---

// Stats is rewritten by the engine every tick and read by copy from the
// outside. LargestPos is the pre-update position of the largest-radius
// non-sun body and keeps its last value while no planet is alive.
type Stats struct {
	Tick            uint64
	Bodies          int
	CenterOnLargest bool
	DrawTraces      bool
	LargestPos      r2.Vec
}

// --- Simulator ---

// Simulator owns the body arena, the trace markers, the stats record and
// the command queue. Step advances all of it by exactly one tick; nothing
// else mutates body state.
type Simulator struct {
	arena    *Arena
	traces   *Tracer
	stats    Stats
	rng      *rand.Rand
	commands chan Command
	clock    float64
	logger   *slog.Logger

	// per-tick scratch, reused between calls
	bodies  []physics.Body
	handles []Handle
	accel   []r2.Vec
}

// New builds an empty simulator. The scene stays empty until a reset
// command is processed.
func New(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		arena:    NewArena(),
		traces:   &Tracer{},
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		commands: make(chan Command, commandQueueSize),
		logger:   logger.With("component", "simulator"),
	}
}

// Reseed makes subsequent scene resets deterministic.
func (s *Simulator) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// RequestReset queues a scene reset for the start of the next tick.
// Multiple requests queued within one tick collapse into a single reset.
func (s *Simulator) RequestReset() { s.request(CommandReset) }

// RequestClearTraces queues removal of every trace marker.
func (s *Simulator) RequestClearTraces() { s.request(CommandClearTraces) }

func (s *Simulator) request(c Command) {
	select {
	case s.commands <- c:
	default:
		// queue full; commands are idempotent one-shots, dropping is safe
	}
}

// SetCenterOnLargest toggles the camera-follow flag surfaced via Stats.
func (s *Simulator) SetCenterOnLargest(v bool) { s.stats.CenterOnLargest = v }

// SetDrawTraces toggles trace recording.
func (s *Simulator) SetDrawTraces(v bool) { s.stats.DrawTraces = v }

// Stats returns a copy of the per-tick stats record.
func (s *Simulator) Stats() Stats { return s.stats }

// Clock returns the simulated time in seconds.
func (s *Simulator) Clock() float64 { return s.clock }

// BodyCount returns the number of bodies alive right now, unlike
// Stats.Bodies which is the count at the start of the last tick.
func (s *Simulator) BodyCount() int { return s.arena.Len() }

// EachBody visits every live body in slot order.
func (s *Simulator) EachBody(fn func(physics.Body)) {
	s.arena.Each(func(_ Handle, b *physics.Body) { fn(*b) })
}

// EachTrace visits every live trace marker position.
func (s *Simulator) EachTrace(fn func(r2.Vec)) { s.traces.Each(fn) }

// Step runs one full simulation tick against the given settings: queued
// commands, bookkeeping over the start-of-tick snapshot, collision merging,
// force accumulation, integration, merge application, trace expiry.
func (s *Simulator) Step(set *Settings) {
	s.drainCommands(set)

	s.stats.Tick++
	dt := set.Dt()
	s.clock += dt

	s.bodies = s.bodies[:0]
	s.handles = s.handles[:0]
	s.bodies, s.handles = s.arena.Snapshot(s.bodies, s.handles)

	// bookkeeping over the pre-update snapshot: bodies that merge away later
	// this tick still count, trace and compete for largest
	s.stats.Bodies = len(s.bodies)
	largest := 0.0
	for i := range s.bodies {
		if !s.bodies[i].Sun && s.bodies[i].Radius > largest {
			largest = s.bodies[i].Radius
			s.stats.LargestPos = s.bodies[i].Pos
		}
	}
	if s.stats.DrawTraces && s.stats.Tick%5 == 0 {
		s.traces.Record(s.bodies, s.clock)
	}

	var events []physics.MergeEvent
	var diedAt []int
	if set.Collisions {
		events, diedAt = physics.FindMerges(s.bodies)
	}

	s.accel = physics.Accelerations(s.accel, s.bodies, diedAt, physics.Params{
		G:          set.G,
		Collisions: set.Collisions,
	})
	physics.IntegrateEulerSymplectic(s.bodies, s.accel, diedAt, dt)

	for i := range s.bodies {
		if !physics.Alive(diedAt, i) {
			continue
		}
		if b, ok := s.arena.Get(s.handles[i]); ok {
			b.Pos = s.bodies[i].Pos
			b.Vel = s.bodies[i].Vel
		}
	}

	// merged pairs leave, their combined bodies enter; a body born here is
	// first integrated on the next tick
	for _, ev := range events {
		s.arena.Remove(s.handles[ev.A])
		s.arena.Remove(s.handles[ev.B])
		s.arena.Insert(ev.Out)
		s.logger.Debug("bodies merged",
			"radius", ev.Out.Radius, "sun", ev.Out.Sun, "live", s.arena.Len())
	}

	s.traces.Expire(s.clock)
}

func (s *Simulator) drainCommands(set *Settings) {
	var doReset, doClear bool
drain:
	for {
		select {
		case c := <-s.commands:
			switch c {
			case CommandReset:
				doReset = true
			case CommandClearTraces:
				doClear = true
			}
		default:
			break drain
		}
	}
	if doClear {
		s.traces.Clear()
	}
	if doReset {
		s.resetScene(set)
	}
}
