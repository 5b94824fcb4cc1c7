package physics

import "gonum.org/v1/gonum/spatial/r2"

// IntegrateEulerSymplectic advances every surviving body by one step of
// semi-implicit Euler: velocity first, then position from the new velocity.
// Bodies merged away this tick keep their snapshot state untouched.
func IntegrateEulerSymplectic(bodies []Body, accel []r2.Vec, diedAt []int, dt float64) {
	for i := range bodies {
		if !Alive(diedAt, i) {
			continue
		}
		bodies[i].Vel = bodies[i].Vel.Add(accel[i].Scale(dt))
		bodies[i].Pos = bodies[i].Pos.Add(bodies[i].Vel.Scale(dt))
	}
}
