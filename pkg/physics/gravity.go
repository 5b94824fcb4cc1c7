package physics

import (
	"math"
	"runtime"

	"github.com/dgravesa/go-parallel/parallel"
	"gonum.org/v1/gonum/spatial/r2"
)

// Softening keeps accelerations finite when two bodies nearly coincide.
const Softening = 1.0

// Params carries the per-tick physics inputs.
type Params struct {
	G          float64
	Collisions bool
	Workers    int // goroutines for the acceleration loop; <=0 means GOMAXPROCS
}

// Accelerations computes the gravitational acceleration acting on every body
// of the snapshot and stores it into dst (grown as needed). diedAt is the
// merge-scan result from FindMerges (nil when no scan ran): a body merged
// away earlier in the pair order no longer attracts the bodies evaluated
// after it, and merged bodies themselves get a zero acceleration.
//
// The loop is partitioned over the receiving body with go-parallel. Each
// inner sum still runs in ascending index order, so the result is identical
// for any worker count.
func Accelerations(dst []r2.Vec, bodies []Body, diedAt []int, p Params) []r2.Vec {
	n := len(bodies)
	if cap(dst) < n {
		dst = make([]r2.Vec, n)
	}
	dst = dst[:n]
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	parallel.WithNumGoroutines(workers).For(n, func(i, _ int) {
		dst[i] = r2.Vec{}
		if !Alive(diedAt, i) {
			return
		}
		var acc r2.Vec
		base := i * n
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if diedAt != nil && diedAt[j] >= 0 && diedAt[j] <= base+j {
				continue
			}
			r := bodies[i].Pos.Sub(bodies[j].Pos)
			d := r2.Norm(r)
			reff := math.Sqrt(d*d + Softening*Softening)
			if !p.Collisions {
				// without merging, deep overlap would blow the force up
				if sum := bodies[i].Radius + bodies[j].Radius; d < sum {
					reff = sum
				}
			}
			acc = acc.Add(r.Scale(-p.G * bodies[j].Mass() / (reff * reff * reff)))
		}
		dst[i] = acc
	})
	return dst
}

// Alive reports whether snapshot body i survived the merge scan. A nil
// diedAt means no scan ran this tick.
func Alive(diedAt []int, i int) bool {
	return diedAt == nil || diedAt[i] < 0
}
