package physics

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// softPull is the expected softened pull of a body of mass m at to, acting
// on a body at from.
func softPull(from, to r2.Vec, g, m float64) r2.Vec {
	r := from.Sub(to)
	d := r2.Norm(r)
	reff := math.Sqrt(d*d + Softening*Softening)
	return r.Scale(-g * m / (reff * reff * reff))
}

func TestAccelerationsTwoBody(t *testing.T) {
	bodies := []Body{
		{Pos: r2.Vec{}, Radius: 1, Density: 1},
		{Pos: r2.Vec{X: 200}, Radius: 1, Density: 2},
	}
	p := Params{G: 3.5, Collisions: true, Workers: 1}
	acc := Accelerations(nil, bodies, nil, p)

	mj := bodies[1].Mass()
	want := p.G * mj * 200 / math.Pow(200*200+1, 1.5)
	if got := r2.Norm(acc[0]); math.Abs(got-want) > 1e-12*want {
		t.Errorf("|a0| = %v, want %v", got, want)
	}

	// At d >> softening the magnitude approaches the bare inverse square law.
	bare := p.G * mj / (200 * 200)
	if got := r2.Norm(acc[0]); math.Abs(got-bare) > 1e-3*bare {
		t.Errorf("|a0| = %v, too far from G*m/d^2 = %v", got, bare)
	}

	if acc[0].X <= 0 || acc[0].Y != 0 {
		t.Errorf("a0 = %v, want pull toward +x", acc[0])
	}
	if acc[1].X >= 0 || acc[1].Y != 0 {
		t.Errorf("a1 = %v, want pull toward -x", acc[1])
	}

	// Newton's third law: equal and opposite forces.
	f0 := r2.Norm(acc[0]) * bodies[0].Mass()
	f1 := r2.Norm(acc[1]) * bodies[1].Mass()
	if math.Abs(f0-f1) > 1e-9*f0 {
		t.Errorf("forces differ: %v vs %v", f0, f1)
	}
}

func TestAccelerationsOverlapClamp(t *testing.T) {
	bodies := []Body{
		{Pos: r2.Vec{}, Radius: 2, Density: 1},
		{Pos: r2.Vec{X: 1}, Radius: 3, Density: 1},
	}
	g := 3.5
	mj := bodies[1].Mass()

	// Collisions disabled: separation clamps to the touching distance, so
	// overlapping bodies cannot produce a runaway pull.
	acc := Accelerations(nil, bodies, nil, Params{G: g, Collisions: false, Workers: 1})
	want := g * mj * 1 / (5 * 5 * 5)
	if got := r2.Norm(acc[0]); math.Abs(got-want) > 1e-12*want {
		t.Errorf("clamped |a0| = %v, want %v", got, want)
	}

	// With collisions on the same pair uses the softened separation instead.
	soft := Accelerations(nil, bodies, nil, Params{G: g, Collisions: true, Workers: 1})
	if r2.Norm(soft[0]) <= r2.Norm(acc[0]) {
		t.Errorf("softened pull %v should exceed clamped pull %v", r2.Norm(soft[0]), r2.Norm(acc[0]))
	}
}

func TestAccelerationsCoincidentBodies(t *testing.T) {
	bodies := []Body{
		{Pos: r2.Vec{X: 4, Y: -2}, Radius: 1, Density: 1},
		{Pos: r2.Vec{X: 4, Y: -2}, Radius: 2, Density: 1},
	}
	for _, collisions := range []bool{true, false} {
		acc := Accelerations(nil, bodies, nil, Params{G: 3.5, Collisions: collisions, Workers: 1})
		for i, a := range acc {
			if math.IsNaN(a.X) || math.IsNaN(a.Y) || a.X != 0 || a.Y != 0 {
				t.Errorf("collisions=%v: a%d = %v, want zero", collisions, i, a)
			}
		}
	}
}

func TestAccelerationsMergeOrderVisibility(t *testing.T) {
	g := 3.5

	// The overlapping pair sits at indexes 1 and 2, after the probe at 0.
	// A body absorbed at that pair still pulls on earlier indexes this tick.
	bodies := []Body{
		{Pos: r2.Vec{}, Radius: 0.5, Density: 1},
		{Pos: r2.Vec{X: 100}, Radius: 2, Density: 1},
		{Pos: r2.Vec{X: 100.5}, Radius: 2, Density: 1},
	}
	events, diedAt := FindMerges(bodies)
	if len(events) != 1 || events[0].A != 1 || events[0].B != 2 {
		t.Fatalf("unexpected merges: %+v", events)
	}
	acc := Accelerations(nil, bodies, diedAt, Params{G: g, Collisions: true, Workers: 1})
	want := softPull(bodies[0].Pos, bodies[1].Pos, g, bodies[1].Mass()).
		Add(softPull(bodies[0].Pos, bodies[2].Pos, g, bodies[2].Mass()))
	if math.Abs(acc[0].X-want.X) > 1e-12*math.Abs(want.X) || acc[0].Y != want.Y {
		t.Errorf("a0 = %v, want both pair members included: %v", acc[0], want)
	}

	// Mirrored scene: the pair now precedes the probe, so by the time the
	// probe is processed both members are gone and exert nothing.
	bodies = []Body{
		{Pos: r2.Vec{X: 100}, Radius: 2, Density: 1},
		{Pos: r2.Vec{X: 100.5}, Radius: 2, Density: 1},
		{Pos: r2.Vec{}, Radius: 0.5, Density: 1},
	}
	events, diedAt = FindMerges(bodies)
	if len(events) != 1 || events[0].A != 0 || events[0].B != 1 {
		t.Fatalf("unexpected merges: %+v", events)
	}
	acc = Accelerations(nil, bodies, diedAt, Params{G: g, Collisions: true, Workers: 1})
	if acc[2].X != 0 || acc[2].Y != 0 {
		t.Errorf("a2 = %v, want zero after earlier merge", acc[2])
	}
}

func TestAccelerationsParallelDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bodies := make([]Body, 64)
	for i := range bodies {
		bodies[i] = Body{
			Pos:     r2.Vec{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000},
			Radius:  0.5 + 3*rng.Float64(),
			Density: 0.5 + 1.5*rng.Float64(),
		}
	}
	_, diedAt := FindMerges(bodies)

	serial := Accelerations(nil, bodies, diedAt, Params{G: 3.5, Collisions: true, Workers: 1})
	wide := Accelerations(nil, bodies, diedAt, Params{G: 3.5, Collisions: true, Workers: 7})
	for i := range serial {
		if serial[i] != wide[i] {
			t.Fatalf("worker count changed a%d: %v vs %v", i, serial[i], wide[i])
		}
	}
}

func TestAccelerationsReusesDst(t *testing.T) {
	bodies := []Body{
		{Pos: r2.Vec{}, Radius: 1, Density: 1},
		{Pos: r2.Vec{X: 50}, Radius: 1, Density: 1},
	}
	dst := make([]r2.Vec, 0, 8)
	out := Accelerations(dst, bodies, nil, Params{G: 3.5, Collisions: true, Workers: 1})
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if &out[:cap(out)][0] != &dst[:cap(dst)][0] {
		t.Error("dst with spare capacity was not reused")
	}
}
