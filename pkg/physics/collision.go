package physics

import "gonum.org/v1/gonum/spatial/r2"

// MergeEvent records one realized merge: the snapshot indices of the two
// source bodies (A < B) and the combined body replacing them.
type MergeEvent struct {
	A, B int
	Out  Body
}

// FindMerges scans the snapshot for colliding pairs (center distance below
// the radius sum) in ascending pair order and resolves them first come,
// first served: a body that merges is excluded from every later pair test,
// so each body merges at most once per tick and chained candidates are
// dropped. The ordering is a documented artifact of pair iteration, not a
// physical priority.
//
// The returned diedAt slice holds, per body, the full-scan pair index
// i*n + j at which it merged away, or -1 if it survived; Accelerations uses
// it to reproduce the same iteration-order visibility.
func FindMerges(bodies []Body) ([]MergeEvent, []int) {
	n := len(bodies)
	diedAt := make([]int, n)
	for i := range diedAt {
		diedAt[i] = -1
	}
	var events []MergeEvent
	for i := 0; i < n; i++ {
		if diedAt[i] >= 0 {
			continue
		}
		for j := i + 1; j < n; j++ {
			if diedAt[j] >= 0 {
				continue
			}
			d := r2.Norm(bodies[i].Pos.Sub(bodies[j].Pos))
			if d < bodies[i].Radius+bodies[j].Radius {
				events = append(events, MergeEvent{A: i, B: j, Out: Merge(bodies[i], bodies[j])})
				diedAt[i] = i*n + j
				diedAt[j] = i*n + j
				break
			}
		}
	}
	return events, diedAt
}
