package simulation

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pjankiewicz/nbody/pkg/physics"
)

// TraceLifetime is how long a marker stays alive, in simulated seconds.
const TraceLifetime = 10.0

// Marker is a detached snapshot of a body position. It is never updated
// after creation and holds no reference to the body that spawned it.
type Marker struct {
	Pos       r2.Vec
	LiveUntil float64
}

// Tracer keeps the short-lived position markers behind the motion trails.
// Markers never affect physics.
type Tracer struct {
	markers []Marker
}

// Record snapshots every body at simulated time now.
func (t *Tracer) Record(bodies []physics.Body, now float64) {
	for i := range bodies {
		t.markers = append(t.markers, Marker{Pos: bodies[i].Pos, LiveUntil: now + TraceLifetime})
	}
}

// Expire drops every marker whose lifetime has passed.
func (t *Tracer) Expire(now float64) {
	kept := t.markers[:0]
	for _, m := range t.markers {
		if m.LiveUntil >= now {
			kept = append(kept, m)
		}
	}
	t.markers = kept
}

// Clear drops all markers at once.
func (t *Tracer) Clear() { t.markers = t.markers[:0] }

// Len returns the number of live markers.
func (t *Tracer) Len() int { return len(t.markers) }

// Each visits every live marker position.
func (t *Tracer) Each(fn func(r2.Vec)) {
	for i := range t.markers {
		fn(t.markers[i].Pos)
	}
}
